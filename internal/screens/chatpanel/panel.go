// Package chatpanel renders a tutor conversation with its composer and
// quick actions. The module chat tab and the standalone tutor share it.
package chatpanel

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cloudquest/internal/chat"
	"github.com/abhisek/cloudquest/internal/i18n"
	"github.com/abhisek/cloudquest/internal/tasks"
	"github.com/abhisek/cloudquest/internal/ui/components"
	"github.com/abhisek/cloudquest/internal/ui/layout"
	"github.com/abhisek/cloudquest/internal/ui/theme"
)

const charLimit = 500

// Panel is the composer state for one on-screen conversation.
type Panel struct {
	tutor tasks.Tutor
	p     *i18n.Printer
	input components.TextInput
}

// New creates a panel with a focused, empty composer.
func New(tutor tasks.Tutor, p *i18n.Printer) *Panel {
	return &Panel{
		tutor: tutor,
		p:     p,
		input: components.NewTextInput(p.T(i18n.ChatPlaceholder), charLimit),
	}
}

// Update handles composer input for conv. Enter sends the draft; alt+1..3
// fire the quick actions. Everything else goes to the text input.
func (pn *Panel) Update(conv *chat.Conversation, msg tea.Msg) tea.Cmd {
	if conv == nil {
		return nil
	}
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter":
			req, ok := conv.Send(pn.input.Value())
			if !ok {
				return nil
			}
			pn.input.Reset()
			return tasks.SendChat(pn.tutor, req)
		case "alt+1", "alt+2", "alt+3":
			i := int(kmsg.String()[len("alt+")] - '1')
			req, ok := conv.SendQuickAction(i)
			if !ok {
				return nil
			}
			return tasks.SendChat(pn.tutor, req)
		}
	}

	var cmd tea.Cmd
	pn.input, cmd = pn.input.Update(msg)
	return cmd
}

// Draft returns the composer contents.
func (pn *Panel) Draft() string {
	return pn.input.Value()
}

// KeyHints returns the footer hints for a chat view.
func (pn *Panel) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Alt+1-3", Description: "Quick action"},
		{Key: "Esc", Description: "Back"},
	}
}

// View renders the transcript tail, quick actions and composer.
func (pn *Panel) View(conv *chat.Conversation, width, height int) string {
	if conv == nil {
		return ""
	}

	pn.input.SetWidth(width - 4)
	composer := components.Card(pn.input.View(), width, !conv.Loading())
	actions := pn.renderActions(conv, width)

	transcriptHeight := height - lipgloss.Height(composer) - lipgloss.Height(actions)
	transcript := pn.renderTranscript(conv, width, transcriptHeight)

	return lipgloss.JoinVertical(lipgloss.Left, transcript, actions, composer)
}

func (pn *Panel) renderActions(conv *chat.Conversation, width int) string {
	var chips []string
	for i, a := range conv.QuickActions() {
		chip := theme.Hint.Render(string(rune('1'+i))+" ") + theme.ButtonInactive.Render(a.Label)
		chips = append(chips, chip)
	}
	return lipgloss.NewStyle().Width(width).Render(lipgloss.JoinHorizontal(lipgloss.Center, joinWithGap(chips, "  ")...))
}

func joinWithGap(items []string, gap string) []string {
	out := make([]string, 0, len(items)*2)
	for i, it := range items {
		if i > 0 {
			out = append(out, gap)
		}
		out = append(out, it)
	}
	return out
}

// renderTranscript renders every message and keeps the last height lines,
// so the newest message is always visible.
func (pn *Panel) renderTranscript(conv *chat.Conversation, width, height int) string {
	if height <= 0 {
		return ""
	}

	bubbleWidth := width * 3 / 4
	var blocks []string
	for _, m := range conv.Messages() {
		blocks = append(blocks, pn.renderMessage(m, width, bubbleWidth))
	}
	if conv.Loading() {
		blocks = append(blocks, theme.Hint.Render("☁ "+pn.p.T(i18n.ChatThinking)))
	}

	lines := strings.Split(strings.Join(blocks, "\n"), "\n")
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	for len(lines) < height {
		lines = append([]string{""}, lines...)
	}
	return strings.Join(lines, "\n")
}

func (pn *Panel) renderMessage(m chat.Message, width, bubbleWidth int) string {
	stamp := m.Time.Format("15:04")
	if m.Role == chat.RoleUser {
		name := theme.Subtitle.Render(pn.p.T(i18n.ChatYou) + " · " + stamp)
		body := theme.UserBubble.Width(bubbleWidth).Render(m.Text)
		return lipgloss.PlaceHorizontal(width, lipgloss.Right, lipgloss.JoinVertical(lipgloss.Right, name, body))
	}

	style := theme.TutorBubble
	if m.IsError {
		style = theme.ErrorBubble
	}
	name := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("☁ "+pn.p.T(i18n.ChatTutorName)) +
		theme.Subtitle.Render(" · "+stamp)
	return lipgloss.JoinVertical(lipgloss.Left, name, style.Width(bubbleWidth).Render(m.Text))
}
