// Package celebrate defines the visual-feedback port used to fire particle
// bursts when the learner levels up or answers correctly.
package celebrate

import "log/slog"

// Origin is a viewport-relative position. X and Y are fractions in [0, 1].
type Origin struct {
	X float64
	Y float64
}

// Burst describes a single particle effect.
type Burst struct {
	Particles int
	Spread    int
	Origin    Origin
	Colors    []string
}

// Effect triggers a celebration. Implementations are best-effort.
type Effect interface {
	Burst(b Burst)
}

// Nop is an Effect that does nothing.
type Nop struct{}

func (Nop) Burst(Burst) {}

// EffectFunc adapts a function to the Effect interface.
type EffectFunc func(Burst)

func (f EffectFunc) Burst(b Burst) { f(b) }

type safeEffect struct {
	inner Effect
}

// Safe wraps e so that a nil effect is tolerated and a panicking effect
// never reaches the caller.
func Safe(e Effect) Effect {
	if e == nil {
		return Nop{}
	}
	if s, ok := e.(safeEffect); ok {
		return s
	}
	return safeEffect{inner: e}
}

func (s safeEffect) Burst(b Burst) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("celebration effect failed", "panic", r)
		}
	}()
	s.inner.Burst(b)
}
