package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cloudquest/internal/notify"
	"github.com/abhisek/cloudquest/internal/ui/theme"
)

// Toast renders a notification as a single highlighted line centered in width.
func Toast(n notify.Notification, width int) string {
	style := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Primary).
		Padding(0, 2)
	if n.Kind == notify.KindLevel {
		style = style.Background(theme.Accent)
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(n.Message))
}
