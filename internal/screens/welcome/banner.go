package welcome

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/cloudquest/internal/ui/theme"
)

var bannerArt = []string{
	" ▄▀▀ █   ▄▀▄ █ █ █▀▄   ▄▀▄ █ █ ██▀ ▄▀▀ ▀█▀",
	" ▀▄▄ █▄▄ ▀▄▀ ▀▄█ █▄▀   ▀▄█ ▀▄█ █▄▄ ▄██  █ ",
	"                          ▀               ",
}

// bannerSplit is the rune column where "QUEST" starts.
const bannerSplit = 22

const bannerCompact = "C L O U D Q U E S T"

// RenderBanner draws CLOUD in orange and QUEST in teal. Terminals narrower
// than the art get the compact spelling.
func RenderBanner(width int) string {
	cloud := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	quest := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	if width < lipgloss.Width(bannerArt[0])+4 {
		return cloud.Render(bannerCompact)
	}

	lines := make([]string, len(bannerArt))
	for i, line := range bannerArt {
		runes := []rune(line)
		lines[i] = cloud.Render(string(runes[:bannerSplit])) + quest.Render(string(runes[bannerSplit:]))
	}
	return strings.Join(lines, "\n")
}
