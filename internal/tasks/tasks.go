// Package tasks runs tutor calls as Bubble Tea commands. Each command
// carries the ticket issued by nav.Controller so that Apply can drop
// results the learner has already moved past.
package tasks

import (
	"context"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cloudquest/internal/chat"
	"github.com/abhisek/cloudquest/internal/curriculum"
	"github.com/abhisek/cloudquest/internal/nav"
	"github.com/abhisek/cloudquest/internal/quiz"
)

// Tutor is the AI backend. tutor.Service implements it.
type Tutor interface {
	Explain(ctx context.Context, topic curriculum.Topic, moduleTitle string) (string, error)
	GenerateQuiz(ctx context.Context, moduleTitle string) ([]quiz.Question, error)
	Chat(ctx context.Context, prompt string, history []chat.Turn) (string, error)
}

// ExplanationMsg carries a finished explanation.
type ExplanationMsg struct {
	Ticket nav.ExplanationTicket
	Text   string
	Err    error
}

// QuizMsg carries a finished quiz load.
type QuizMsg struct {
	Ticket    quiz.Ticket
	Questions []quiz.Question
	Err       error
}

// ChatMsg carries a tutor reply.
type ChatMsg struct {
	Ticket chat.Ticket
	Text   string
	Err    error
}

// Explain requests an explanation of topic.
func Explain(t Tutor, ticket nav.ExplanationTicket, topic curriculum.Topic, moduleTitle string) tea.Cmd {
	return func() tea.Msg {
		text, err := t.Explain(context.Background(), topic, moduleTitle)
		return ExplanationMsg{Ticket: ticket, Text: text, Err: err}
	}
}

// LoadQuiz requests the questions for a quiz session.
func LoadQuiz(t Tutor, ticket quiz.Ticket, moduleTitle string) tea.Cmd {
	return func() tea.Msg {
		qs, err := t.GenerateQuiz(context.Background(), moduleTitle)
		return QuizMsg{Ticket: ticket, Questions: qs, Err: err}
	}
}

// SendChat sends a prepared chat request.
func SendChat(t Tutor, req chat.Request) tea.Cmd {
	return func() tea.Msg {
		reply, err := t.Chat(context.Background(), req.Prompt, req.History)
		return ChatMsg{Ticket: req.Ticket, Text: reply, Err: err}
	}
}

// Apply hands a task result to the controller. It reports whether msg was
// a task result at all; stale results are consumed and dropped.
func Apply(c *nav.Controller, msg tea.Msg) bool {
	switch msg := msg.(type) {
	case ExplanationMsg:
		if msg.Err != nil {
			slog.Warn("explanation failed", "topic", msg.Ticket.TopicID, "error", msg.Err)
		}
		c.ResolveExplanation(msg.Ticket, msg.Text)
		return true
	case QuizMsg:
		if msg.Err != nil {
			slog.Warn("quiz load failed", "session", msg.Ticket.SessionID, "error", msg.Err)
		}
		c.ResolveQuiz(msg.Ticket, msg.Questions, msg.Err)
		return true
	case ChatMsg:
		if msg.Err != nil {
			slog.Warn("chat reply failed", "conversation", msg.Ticket.ConversationID, "error", msg.Err)
		}
		c.ResolveChat(msg.Ticket, msg.Text, msg.Err)
		return true
	}
	return false
}
