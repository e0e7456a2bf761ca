package quiz

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/abhisek/cloudquest/internal/celebrate"
	"github.com/abhisek/cloudquest/internal/xp"
)

// DefaultSize is the number of questions requested per quiz.
const DefaultSize = 3

// Phase is the coarse state of a quiz session.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseError
	PhaseReady
	PhaseCompleted
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseError:
		return "error"
	case PhaseReady:
		return "ready"
	case PhaseCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// LoadError distinguishes the two ways a load can fail.
type LoadError int

const (
	LoadOK LoadError = iota
	// LoadEmpty means the generator returned no usable questions.
	LoadEmpty
	// LoadFailed means the request itself failed.
	LoadFailed
)

// Feedback is the message shown after Submit.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackCorrect
	FeedbackIncorrect
)

// Rewarder receives XP awards. xp.Engine implements it.
type Rewarder interface {
	Award(amount int) bool
}

// Ticket identifies one load request. Results carrying an older ticket are
// discarded.
type Ticket struct {
	SessionID string
	Seq       uint64
}

// Session is the state machine for one quiz attempt. Invalid transitions
// are ignored and reported as false.
type Session struct {
	id       string
	rewarder Rewarder
	effect   celebrate.Effect
	anchor   func(index, count int) celebrate.Origin

	seq     uint64
	phase   Phase
	loadErr LoadError

	questions []Question
	index     int
	selected  int
	hasSel    bool
	answered  bool
	score     int
	feedback  Feedback
	bonus     int
}

// Option configures a Session.
type Option func(*Session)

// WithEffect sets the celebration port.
func WithEffect(e celebrate.Effect) Option {
	return func(s *Session) { s.effect = celebrate.Safe(e) }
}

// WithAnchor overrides how an option index maps to a viewport position.
func WithAnchor(fn func(index, count int) celebrate.Origin) Option {
	return func(s *Session) {
		if fn != nil {
			s.anchor = fn
		}
	}
}

// NewSession creates a session in the Loading phase. Call Begin to obtain
// the ticket for the first load.
func NewSession(rewarder Rewarder, opts ...Option) *Session {
	s := &Session{
		id:       uuid.NewString(),
		rewarder: rewarder,
		effect:   celebrate.Nop{},
		anchor:   celebrate.OptionAnchor,
		phase:    PhaseLoading,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Begin resets the session into Loading and issues a new ticket.
func (s *Session) Begin() Ticket {
	s.seq++
	s.phase = PhaseLoading
	s.loadErr = LoadOK
	s.questions = nil
	s.index = 0
	s.score = 0
	s.bonus = 0
	s.clearAnswer()
	return Ticket{SessionID: s.id, Seq: s.seq}
}

// Resolve applies the outcome of the load identified by t. It returns false
// when the ticket is stale or the session is not loading.
func (s *Session) Resolve(t Ticket, qs []Question, err error) bool {
	if t.SessionID != s.id || t.Seq != s.seq || s.phase != PhaseLoading {
		slog.Debug("quiz result discarded", "session", s.id, "seq", t.Seq, "current", s.seq)
		return false
	}
	if err != nil {
		s.phase = PhaseError
		s.loadErr = LoadFailed
		return true
	}
	valid := Sanitize(qs)
	if len(valid) == 0 {
		s.phase = PhaseError
		s.loadErr = LoadEmpty
		return true
	}
	s.questions = valid
	s.phase = PhaseReady
	s.loadErr = LoadOK
	s.index = 0
	s.score = 0
	return true
}

// Select stores index as the pending answer.
func (s *Session) Select(index int) bool {
	if s.phase != PhaseReady || s.answered {
		return false
	}
	if index < 0 || index >= len(s.questions[s.index].Options) {
		return false
	}
	s.selected = index
	s.hasSel = true
	return true
}

// Submit grades the pending answer.
func (s *Session) Submit() bool {
	if s.phase != PhaseReady || s.answered || !s.hasSel {
		return false
	}
	s.answered = true
	q := s.questions[s.index]
	if s.selected == q.CorrectIndex {
		s.score++
		s.feedback = FeedbackCorrect
		if s.rewarder != nil {
			s.rewarder.Award(xp.CorrectAnswerReward)
		}
		s.effect.Burst(celebrate.CorrectAnswer(s.anchor(s.selected, len(q.Options))))
	} else {
		s.feedback = FeedbackIncorrect
	}
	return true
}

// Next advances past an answered question, completing the session after
// the last one.
func (s *Session) Next() bool {
	if s.phase != PhaseReady || !s.answered {
		return false
	}
	s.clearAnswer()
	if s.index >= len(s.questions)-1 {
		s.complete()
		return true
	}
	s.index++
	return true
}

// Retry restarts the session from Error or Completed.
func (s *Session) Retry() (Ticket, bool) {
	if s.phase != PhaseError && s.phase != PhaseCompleted {
		return Ticket{}, false
	}
	return s.Begin(), true
}

func (s *Session) complete() {
	s.phase = PhaseCompleted
	s.bonus = xp.CompletionBonus(s.score, len(s.questions))
	slog.Info("quiz completed", "session", s.id, "score", s.score, "total", len(s.questions), "bonus", s.bonus)
	if s.bonus > 0 {
		if s.rewarder != nil {
			s.rewarder.Award(s.bonus)
		}
		s.effect.Burst(celebrate.QuizPassed())
	}
}

func (s *Session) clearAnswer() {
	s.selected = 0
	s.hasSel = false
	s.answered = false
	s.feedback = FeedbackNone
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// LoadError returns why the last load failed.
func (s *Session) LoadError() LoadError { return s.loadErr }

// Current returns the question being asked. ok is false outside Ready.
func (s *Session) Current() (q Question, ok bool) {
	if s.phase != PhaseReady {
		return Question{}, false
	}
	return s.questions[s.index], true
}

// Index returns the zero-based index of the current question.
func (s *Session) Index() int { return s.index }

// Total returns the number of questions in the session.
func (s *Session) Total() int { return len(s.questions) }

// Selected returns the pending selection.
func (s *Session) Selected() (int, bool) { return s.selected, s.hasSel }

// Answered reports whether the current question has been submitted. The
// explanation is only shown once this is true.
func (s *Session) Answered() bool { return s.answered }

// Score returns the number of correct answers so far.
func (s *Session) Score() int { return s.score }

// Feedback returns the feedback for the last submission.
func (s *Session) Feedback() Feedback { return s.feedback }

// Bonus returns the completion bonus, zero until the session completes.
func (s *Session) Bonus() int { return s.bonus }

// Passed reports whether the completed session met the pass mark.
func (s *Session) Passed() bool {
	return s.phase == PhaseCompleted && xp.Passed(s.score, len(s.questions))
}

// Percent returns the rounded score percentage.
func (s *Session) Percent() int {
	if len(s.questions) == 0 {
		return 0
	}
	return (s.score*200 + len(s.questions)) / (2 * len(s.questions))
}

// DisplayReward is the total XP earned in this session.
func (s *Session) DisplayReward() int {
	return s.score*xp.CorrectAnswerReward + s.bonus
}
