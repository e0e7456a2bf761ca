package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/cloudquest/internal/ui/theme"
)

// MultiChoice renders a question with lettered options. It is a pure view:
// the quiz session owns selection and grading.
type MultiChoice struct {
	Question     string
	Options      []string
	Cursor       int
	Chosen       int // -1 when nothing is selected
	CorrectIndex int
	Revealed     bool
}

// View renders the question and its options at the given width.
func (m MultiChoice) View(width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Foreground(theme.Text).
		Bold(true).
		Render(m.Question))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Cursor && !m.Revealed {
			prefix = "▸ "
		}
		marker := " "
		if i == m.Chosen {
			marker = "●"
		}
		line := fmt.Sprintf("%s%s %c)  %s", prefix, marker, 'A'+rune(i), opt)

		style := theme.Unselected
		switch {
		case m.Revealed && i == m.CorrectIndex:
			style = theme.Correct
		case m.Revealed && i == m.Chosen:
			style = theme.Incorrect
		case m.Revealed:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Chosen, i == m.Cursor:
			style = theme.Selected
		}
		b.WriteString(style.Width(width).Render(line))
		b.WriteString("\n")
	}

	return b.String()
}
