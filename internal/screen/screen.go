package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cloudquest/internal/ui/layout"
)

// Screen is one page of the TUI. Screens render from the state they are
// given and report user intent back through commands.
type Screen interface {
	// Init returns the command to run when the screen is shown.
	Init() tea.Cmd

	// Update handles a message and returns the screen to keep.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area, excluding header and footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider is implemented by screens with their own footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
