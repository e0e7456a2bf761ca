// Package chat holds one tutoring conversation: its transcript, the loading
// gate and the quick actions offered under the composer.
package chat

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/cloudquest/internal/i18n"
)

// Role identifies who wrote a message.
type Role string

const (
	RoleUser  Role = "user"
	RoleTutor Role = "model"
)

// Message is one bubble in the transcript.
type Message struct {
	ID      string
	Role    Role
	Text    string
	Time    time.Time
	IsError bool
}

// Turn is a message as replayed to the model.
type Turn struct {
	Role Role
	Text string
}

// Localizer formats user-visible text. *i18n.Printer implements it.
type Localizer interface {
	T(key string, args ...any) string
}

// Ticket identifies one outstanding reply.
type Ticket struct {
	ConversationID string
	Seq            uint64
}

// Request is what the caller sends to the tutor for one user message.
type Request struct {
	Ticket  Ticket
	Prompt  string
	History []Turn
}

// Conversation is a single chat thread, optionally scoped to a module.
type Conversation struct {
	id      string
	topic   string
	loc     Localizer
	now     func() time.Time
	msgs    []Message
	loading bool
	seq     uint64
}

// Option configures a Conversation.
type Option func(*Conversation)

// WithClock overrides the message timestamp source.
func WithClock(now func() time.Time) Option {
	return func(c *Conversation) {
		if now != nil {
			c.now = now
		}
	}
}

// NewConversation starts a conversation with the welcome message. topic is
// the module title, or empty for the general tutor.
func NewConversation(topic string, loc Localizer, opts ...Option) *Conversation {
	c := &Conversation{
		id:    uuid.NewString(),
		topic: topic,
		loc:   loc,
		now:   time.Now,
	}
	for _, o := range opts {
		o(c)
	}

	welcome := loc.T(i18n.WelcomeGeneric)
	if topic != "" {
		welcome = loc.T(i18n.WelcomeContext, topic)
	}
	c.msgs = []Message{{ID: "welcome", Role: RoleTutor, Text: welcome, Time: c.now()}}
	return c
}

// ID returns the conversation identifier.
func (c *Conversation) ID() string { return c.id }

// Topic returns the module title this conversation is about.
func (c *Conversation) Topic() string { return c.topic }

// Loading reports whether a reply is outstanding.
func (c *Conversation) Loading() bool { return c.loading }

// Messages returns a copy of the transcript.
func (c *Conversation) Messages() []Message {
	out := make([]Message, len(c.msgs))
	copy(out, c.msgs)
	return out
}

// Send appends a user message and returns the request to forward to the
// tutor. It refuses blank input and sends while a reply is outstanding.
func (c *Conversation) Send(text string) (Request, bool) {
	if strings.TrimSpace(text) == "" || c.loading {
		return Request{}, false
	}

	history := c.history()
	prompt := text
	if c.topic != "" && len(c.msgs) == 1 {
		prompt = fmt.Sprintf("[Context: User is studying %s] %s", c.topic, text)
	}

	c.msgs = append(c.msgs, Message{ID: uuid.NewString(), Role: RoleUser, Text: text, Time: c.now()})
	c.loading = true
	c.seq++
	return Request{
		Ticket:  Ticket{ConversationID: c.id, Seq: c.seq},
		Prompt:  prompt,
		History: history,
	}, true
}

// Resolve appends the tutor's reply for t. A non-nil err turns the reply
// into an error bubble. Stale tickets are ignored.
func (c *Conversation) Resolve(t Ticket, reply string, err error) bool {
	if t.ConversationID != c.id || t.Seq != c.seq || !c.loading {
		slog.Debug("chat reply discarded", "conversation", c.id, "seq", t.Seq, "current", c.seq)
		return false
	}
	c.loading = false

	msg := Message{ID: uuid.NewString(), Role: RoleTutor, Text: reply, Time: c.now()}
	if err != nil {
		msg.Text = c.loc.T(i18n.ChatError)
		msg.IsError = true
	}
	c.msgs = append(c.msgs, msg)
	return true
}

// history is the transcript replayed to the model. The welcome bubble is
// local UI text, and a failed exchange is dropped whole, so turns always
// alternate starting with the user.
func (c *Conversation) history() []Turn {
	var out []Turn
	for _, m := range c.msgs {
		if m.ID == "welcome" {
			continue
		}
		if m.IsError {
			if n := len(out); n > 0 && out[n-1].Role == RoleUser {
				out = out[:n-1]
			}
			continue
		}
		out = append(out, Turn{Role: m.Role, Text: m.Text})
	}
	return out
}
