// Package nav owns the application state behind the screens: the current
// view and module, the learn/chat/quiz tabs, the topic explanation and the
// per-module quiz and chat.
package nav

import (
	"log/slog"

	"github.com/abhisek/cloudquest/internal/celebrate"
	"github.com/abhisek/cloudquest/internal/chat"
	"github.com/abhisek/cloudquest/internal/curriculum"
	"github.com/abhisek/cloudquest/internal/progress"
	"github.com/abhisek/cloudquest/internal/quiz"
	"github.com/abhisek/cloudquest/internal/xp"
)

// View is a top-level destination.
type View int

const (
	ViewDashboard View = iota
	ViewModule
	ViewEcosystem
	ViewTutor
)

func (v View) String() string {
	switch v {
	case ViewDashboard:
		return "dashboard"
	case ViewModule:
		return "module"
	case ViewEcosystem:
		return "ecosystem"
	case ViewTutor:
		return "tutor"
	default:
		return "unknown"
	}
}

// Tab is a section of the module view.
type Tab int

const (
	TabLearn Tab = iota
	TabChat
	TabQuiz
)

func (t Tab) String() string {
	switch t {
	case TabLearn:
		return "learn"
	case TabChat:
		return "chat"
	case TabQuiz:
		return "quiz"
	default:
		return "unknown"
	}
}

// Explanation is the topic explanation shown on the learn tab.
type Explanation struct {
	TopicID string
	Text    string
	Loading bool
}

// ExplanationTicket identifies one explanation request.
type ExplanationTicket struct {
	Seq     uint64
	TopicID string
}

// Controller is the single owner of learner and navigation state. It is
// not safe for concurrent use; the TUI calls it from its update loop.
type Controller struct {
	catalog *curriculum.Catalog
	ledger  *progress.Ledger
	engine  *xp.Engine
	loc     chat.Localizer
	effect  celebrate.Effect

	view     View
	moduleID string
	tab      Tab

	explanation Explanation
	explainSeq  uint64

	quiz      *quiz.Session
	chat      *chat.Conversation
	tutorChat *chat.Conversation
}

// Option configures a Controller.
type Option func(*Controller)

// WithEffect sets the celebration port used by quizzes.
func WithEffect(e celebrate.Effect) Option {
	return func(c *Controller) { c.effect = celebrate.Safe(e) }
}

// WithLedger supplies an existing ledger.
func WithLedger(l *progress.Ledger) Option {
	return func(c *Controller) {
		if l != nil {
			c.ledger = l
		}
	}
}

// New returns a controller on the dashboard.
func New(catalog *curriculum.Catalog, engine *xp.Engine, loc chat.Localizer, opts ...Option) *Controller {
	c := &Controller{
		catalog: catalog,
		ledger:  progress.NewLedger(),
		engine:  engine,
		loc:     loc,
		effect:  celebrate.Nop{},
		view:    ViewDashboard,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Catalog returns the curriculum.
func (c *Controller) Catalog() *curriculum.Catalog { return c.catalog }

// Stats returns the learner's level and XP.
func (c *Controller) Stats() xp.Stats { return c.engine.Stats() }

// View returns the current view.
func (c *Controller) View() View { return c.view }

// Tab returns the current module tab.
func (c *Controller) Tab() Tab { return c.tab }

// Module returns the selected module. ok is false outside the module view.
func (c *Controller) Module() (curriculum.Module, bool) {
	if c.moduleID == "" {
		return curriculum.Module{}, false
	}
	return c.catalog.Module(c.moduleID)
}

// GoDashboard shows the dashboard and drops the module's transient state.
func (c *Controller) GoDashboard() { c.leaveModule(ViewDashboard) }

// GoEcosystem shows the resource directory.
func (c *Controller) GoEcosystem() { c.leaveModule(ViewEcosystem) }

// GoTutor shows the standalone tutor. Its conversation lives as long as
// the controller.
func (c *Controller) GoTutor() {
	c.leaveModule(ViewTutor)
	if c.tutorChat == nil {
		c.tutorChat = chat.NewConversation("", c.loc)
	}
}

func (c *Controller) leaveModule(v View) {
	c.view = v
	c.moduleID = ""
	c.tab = TabLearn
	c.resetModuleState()
}

func (c *Controller) resetModuleState() {
	c.clearExplanation()
	c.quiz = nil
	c.chat = nil
}

// clearExplanation also advances the sequence so in-flight results for
// the old topic are dropped.
func (c *Controller) clearExplanation() {
	c.explainSeq++
	c.explanation = Explanation{}
}

// SelectModule opens id on the learn tab. The previous module's quiz,
// chat and explanation are discarded, even when id is the same module.
func (c *Controller) SelectModule(id string) bool {
	if _, ok := c.catalog.Module(id); !ok {
		slog.Warn("unknown module selected", "module", id)
		return false
	}
	c.view = ViewModule
	c.moduleID = id
	c.tab = TabLearn
	c.resetModuleState()
	return true
}

// SetTab switches the module tab. Entering the quiz tab for the first time
// creates the session; the returned ticket must then be loaded.
func (c *Controller) SetTab(t Tab) (quiz.Ticket, bool) {
	if c.view != ViewModule {
		return quiz.Ticket{}, false
	}
	c.tab = t
	switch t {
	case TabChat:
		c.ensureChat()
	case TabQuiz:
		if c.quiz == nil {
			c.quiz = quiz.NewSession(c.engine, quiz.WithEffect(c.effect))
			return c.quiz.Begin(), true
		}
	}
	return quiz.Ticket{}, false
}

func (c *Controller) ensureChat() {
	if c.chat != nil {
		return
	}
	title := ""
	if m, ok := c.Module(); ok {
		title = m.Title
	}
	c.chat = chat.NewConversation(title, c.loc)
}

// Quiz returns the module's quiz session, nil until the quiz tab is entered.
func (c *Controller) Quiz() *quiz.Session { return c.quiz }

// RetryQuiz restarts the module quiz.
func (c *Controller) RetryQuiz() (quiz.Ticket, bool) {
	if c.quiz == nil {
		return quiz.Ticket{}, false
	}
	return c.quiz.Retry()
}

// ResolveQuiz applies a quiz load result. Results for a discarded session
// are ignored.
func (c *Controller) ResolveQuiz(t quiz.Ticket, qs []quiz.Question, err error) bool {
	if c.quiz == nil || c.quiz.ID() != t.SessionID {
		slog.Debug("quiz result for discarded session dropped", "session", t.SessionID)
		return false
	}
	return c.quiz.Resolve(t, qs, err)
}

// ModuleChat returns the module conversation, nil until the chat tab is
// entered.
func (c *Controller) ModuleChat() *chat.Conversation { return c.chat }

// TutorChat returns the standalone conversation, nil until the tutor view
// is first opened.
func (c *Controller) TutorChat() *chat.Conversation { return c.tutorChat }

// ResolveChat routes a tutor reply to the conversation it belongs to.
func (c *Controller) ResolveChat(t chat.Ticket, reply string, err error) bool {
	for _, conv := range []*chat.Conversation{c.chat, c.tutorChat} {
		if conv != nil && conv.ID() == t.ConversationID {
			return conv.Resolve(t, reply, err)
		}
	}
	slog.Debug("chat reply for discarded conversation dropped", "conversation", t.ConversationID)
	return false
}

// CompleteTopic marks topicID done and awards XP by topic type. It returns
// false, without awarding, when the topic is unknown or already done.
func (c *Controller) CompleteTopic(topicID string) bool {
	topic, _, ok := c.catalog.Topic(topicID)
	if !ok {
		return false
	}
	if c.ledger.IsCompleted(topicID) {
		return false
	}
	c.ledger.MarkCompleted(topicID)
	c.engine.Award(xp.TopicReward(topic.Type))
	return true
}

// IsCompleted reports whether topicID is done.
func (c *Controller) IsCompleted(topicID string) bool { return c.ledger.IsCompleted(topicID) }

// ModuleProgress returns completed/total for a module.
func (c *Controller) ModuleProgress(moduleID string) progress.ModuleProgress {
	m, ok := c.catalog.Module(moduleID)
	if !ok {
		return progress.ModuleProgress{}
	}
	return c.ledger.Progress(m.TopicIDs())
}

// CompletedCount returns how many topics are done overall.
func (c *Controller) CompletedCount() int { return c.ledger.Len() }

// RequestExplanation starts loading an explanation for topicID. Only the
// latest ticket can resolve.
func (c *Controller) RequestExplanation(topicID string) (ExplanationTicket, bool) {
	if _, _, ok := c.catalog.Topic(topicID); !ok {
		return ExplanationTicket{}, false
	}
	c.explainSeq++
	c.explanation = Explanation{TopicID: topicID, Loading: true}
	return ExplanationTicket{Seq: c.explainSeq, TopicID: topicID}, true
}

// OpenTopic completes topicID, awarding XP only the first time, and starts
// loading its explanation.
func (c *Controller) OpenTopic(topicID string) (ExplanationTicket, bool) {
	c.CompleteTopic(topicID)
	return c.RequestExplanation(topicID)
}

// ResolveExplanation applies text if t is still the latest request.
func (c *Controller) ResolveExplanation(t ExplanationTicket, text string) bool {
	if t.Seq != c.explainSeq {
		slog.Debug("stale explanation dropped", "topic", t.TopicID, "seq", t.Seq, "current", c.explainSeq)
		return false
	}
	c.explanation = Explanation{TopicID: t.TopicID, Text: text}
	return true
}

// Explanation returns the current explanation state.
func (c *Controller) Explanation() Explanation { return c.explanation }
