package components

import (
	"image/color"
	"math"
	"math/rand/v2"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cloudquest/internal/celebrate"
	"github.com/abhisek/cloudquest/internal/ui/theme"
)

const (
	confettiFrame = 50 * time.Millisecond
	maxParticles  = 120
	gravity       = 0.004
)

var confettiGlyphs = []string{"✦", "•", "▪", "*", "◆", "▴"}

// ConfettiFrameMsg advances the confetti animation by one frame.
type ConfettiFrameMsg time.Time

// ConfettiTick schedules the next animation frame.
func ConfettiTick() tea.Cmd {
	return tea.Tick(confettiFrame, func(t time.Time) tea.Msg {
		return ConfettiFrameMsg(t)
	})
}

type particle struct {
	x, y   float64 // viewport fractions
	vx, vy float64
	glyph  string
	color  color.Color
	life   int
}

// Confetti is a terminal particle overlay. It implements celebrate.Effect so
// the XP engine and quiz sessions can fire bursts into it.
type Confetti struct {
	particles []particle
	rng       *rand.Rand
}

var _ celebrate.Effect = (*Confetti)(nil)

// NewConfetti creates an overlay with a deterministic random source.
func NewConfetti(seed uint64) *Confetti {
	return &Confetti{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Burst spawns particles around b.Origin. Terminal cells are coarse, so the
// requested particle count is scaled down and the total is capped.
func (c *Confetti) Burst(b celebrate.Burst) {
	n := b.Particles / 3
	if n < 1 {
		n = 1
	}
	if room := maxParticles - len(c.particles); n > room {
		n = room
	}

	colors := make([]color.Color, 0, len(b.Colors))
	for _, hex := range b.Colors {
		colors = append(colors, lipgloss.Color(hex))
	}
	if len(colors) == 0 {
		colors = []color.Color{theme.Primary, theme.Accent, theme.Secondary, theme.Success}
	}

	spread := float64(b.Spread) * math.Pi / 180
	for i := 0; i < n; i++ {
		angle := -math.Pi/2 + (c.rng.Float64()-0.5)*spread
		speed := 0.015 + c.rng.Float64()*0.035
		c.particles = append(c.particles, particle{
			x:     b.Origin.X,
			y:     b.Origin.Y,
			vx:    math.Cos(angle) * speed,
			vy:    math.Sin(angle) * speed,
			glyph: confettiGlyphs[c.rng.IntN(len(confettiGlyphs))],
			color: colors[c.rng.IntN(len(colors))],
			life:  20 + c.rng.IntN(20),
		})
	}
}

// Step advances every particle by one frame and drops the expired ones. It
// reports whether any particles remain.
func (c *Confetti) Step() bool {
	alive := c.particles[:0]
	for _, p := range c.particles {
		p.x += p.vx
		p.y += p.vy
		p.vy += gravity
		p.life--
		if p.life > 0 && p.y <= 1.05 {
			alive = append(alive, p)
		}
	}
	c.particles = alive
	return len(c.particles) > 0
}

// Active reports whether there is anything to draw.
func (c *Confetti) Active() bool {
	return len(c.particles) > 0
}

// Len returns the number of live particles.
func (c *Confetti) Len() int {
	return len(c.particles)
}

// Overlay draws the live particles on top of base, which is expected to be
// width x height cells.
func (c *Confetti) Overlay(base string, width, height int) string {
	if !c.Active() || width <= 0 || height <= 0 {
		return base
	}

	layers := []*lipgloss.Layer{lipgloss.NewLayer(base)}
	for _, p := range c.particles {
		x := int(p.x * float64(width))
		y := int(p.y * float64(height))
		if x < 0 || x >= width || y < 0 || y >= height {
			continue
		}
		glyph := lipgloss.NewStyle().Foreground(p.color).Bold(true).Render(p.glyph)
		layers = append(layers, lipgloss.NewLayer(glyph).X(x).Y(y).Z(1))
	}
	return lipgloss.NewCanvas(layers...).Render()
}
