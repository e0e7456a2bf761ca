package components

import (
	"github.com/abhisek/cloudquest/internal/ui/theme"
)

// Button is a styled action label. It has no behavior of its own; the
// owning screen decides what Enter does.
type Button struct {
	Label    string
	Active   bool
	Disabled bool
}

// NewButton creates an active button.
func NewButton(label string) Button {
	return Button{Label: label, Active: true}
}

// View renders the button.
func (b Button) View() string {
	switch {
	case b.Disabled:
		return theme.ButtonDisabled.Render(b.Label)
	case b.Active:
		return theme.ButtonActive.Render("▸ " + b.Label)
	default:
		return theme.ButtonInactive.Render(b.Label)
	}
}
