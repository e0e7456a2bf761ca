// Package notify holds the single ephemeral notification shown to the
// learner after an XP award.
package notify

import "time"

// DefaultWindow is how long a notification stays visible.
const DefaultWindow = 3 * time.Second

// Kind classifies a notification.
type Kind string

const (
	KindXP    Kind = "xp"
	KindLevel Kind = "level"
)

// Notification is a short user-facing message.
type Notification struct {
	Message string
	Kind    Kind
}

// Generation identifies one Set call. Expire only clears the slot when the
// generation it receives is still current.
type Generation uint64

// Channel is a single-slot holder for the latest notification. Setting a new
// notification replaces the previous one and restarts the window.
type Channel struct {
	window time.Duration
	now    func() time.Time

	current Notification
	setAt   time.Time
	gen     Generation
	live    bool
}

// Option configures a Channel.
type Option func(*Channel)

// WithWindow overrides the display window.
func WithWindow(d time.Duration) Option {
	return func(c *Channel) { c.window = d }
}

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Channel) { c.now = now }
}

// NewChannel returns an empty channel.
func NewChannel(opts ...Option) *Channel {
	c := &Channel{window: DefaultWindow, now: time.Now}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Notify implements the xp.Notifier interface.
func (c *Channel) Notify(n Notification) {
	c.Set(n)
}

// Set replaces the current notification and returns its generation.
func (c *Channel) Set(n Notification) Generation {
	c.gen++
	c.current = n
	c.setAt = c.now()
	c.live = true
	return c.gen
}

// Current returns the live notification, if any. A notification older than
// the window is treated as cleared even if Expire has not run yet.
func (c *Channel) Current() (Notification, bool) {
	if !c.live {
		return Notification{}, false
	}
	if c.now().Sub(c.setAt) >= c.window {
		c.live = false
		return Notification{}, false
	}
	return c.current, true
}

// Expire clears the slot if gen is still the current generation. It reports
// whether anything was cleared.
func (c *Channel) Expire(gen Generation) bool {
	if gen != c.gen || !c.live {
		return false
	}
	c.live = false
	return true
}

// Generation returns the generation of the most recent Set.
func (c *Channel) Generation() Generation {
	return c.gen
}

// Window returns the display window.
func (c *Channel) Window() time.Duration {
	return c.window
}
