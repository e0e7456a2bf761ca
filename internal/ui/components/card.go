package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/cloudquest/internal/ui/theme"
)

// ContentWidth returns the inner width for a column inside a frame of
// frameWidth, clamped to [20, limit].
func ContentWidth(frameWidth, limit int) int {
	// frame border (2) + padding (4)
	w := frameWidth - 6
	if w > limit {
		w = limit
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded border at the given outer width. The
// active card is outlined in the primary color.
func Card(content string, width int, active bool) string {
	style := theme.Card
	if active {
		style = theme.ActiveCard
	}
	return style.Width(width - 2).Render(content)
}

// TitledCard is a Card whose first line is a section heading.
func TitledCard(title, content string, width int, active bool) string {
	return Card(theme.Section.Render(title)+"\n"+content, width, active)
}

// Divider renders a horizontal rule of the given width.
func Divider(width int) string {
	if width < 0 {
		width = 0
	}
	return lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width))
}
