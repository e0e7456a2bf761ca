package xp

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/abhisek/cloudquest/internal/celebrate"
	"github.com/abhisek/cloudquest/internal/notify"
)

// Notifier receives the single notification produced by each award.
type Notifier interface {
	Notify(n notify.Notification)
}

// Messages formats notification text. The i18n printer implements it.
type Messages interface {
	LevelUp(level int) string
	XPGained(amount int) string
}

type englishMessages struct{}

func (englishMessages) LevelUp(level int) string {
	return fmt.Sprintf("LEVEL UP! Welcome to Level %d! 🎉", level)
}

func (englishMessages) XPGained(amount int) string {
	return fmt.Sprintf("+%d XP", amount)
}

// Engine owns the learner's Stats and applies awards to them.
type Engine struct {
	stats    Stats
	notifier Notifier
	effect   celebrate.Effect
	messages Messages
}

// Option configures an Engine.
type Option func(*Engine)

// WithEffect sets the celebration port fired on level-up.
func WithEffect(e celebrate.Effect) Option {
	return func(en *Engine) { en.effect = celebrate.Safe(e) }
}

// WithMessages sets the notification formatter.
func WithMessages(m Messages) Option {
	return func(en *Engine) {
		if m != nil {
			en.messages = m
		}
	}
}

// WithStats starts the engine from the given stats instead of the defaults.
func WithStats(s Stats) Option {
	return func(en *Engine) { en.stats = s }
}

// NewEngine creates an engine starting from DefaultStats.
func NewEngine(notifier Notifier, opts ...Option) *Engine {
	en := &Engine{
		stats:    DefaultStats(),
		notifier: notifier,
		effect:   celebrate.Nop{},
		messages: englishMessages{},
	}
	for _, o := range opts {
		o(en)
	}
	return en
}

// Stats returns a copy of the current stats.
func (e *Engine) Stats() Stats {
	return e.stats
}

// Award adds amount XP, rolling over as many levels as needed, and emits
// exactly one notification. Non-positive amounts are ignored.
func (e *Engine) Award(amount int) (leveledUp bool) {
	if amount <= 0 {
		return false
	}

	s := e.stats
	newXP := s.XP + amount
	for newXP >= s.NextLevelXP {
		newXP -= s.NextLevelXP
		s.Level++
		s.NextLevelXP = int(math.Round(float64(s.NextLevelXP) * levelGrowth))
		leveledUp = true
	}
	s.XP = newXP
	s.Title = Title(s.Level)
	e.stats = s

	if leveledUp {
		slog.Info("level up", "level", s.Level, "title", s.Title)
		e.notify(notify.Notification{Message: e.messages.LevelUp(s.Level), Kind: notify.KindLevel})
		e.effect.Burst(celebrate.LevelUp())
		return true
	}

	e.notify(notify.Notification{Message: e.messages.XPGained(amount), Kind: notify.KindXP})
	return false
}

func (e *Engine) notify(n notify.Notification) {
	if e.notifier != nil {
		e.notifier.Notify(n)
	}
}
