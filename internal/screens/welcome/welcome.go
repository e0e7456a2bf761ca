package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cloudquest/internal/router"
	"github.com/abhisek/cloudquest/internal/screen"
	"github.com/abhisek/cloudquest/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	driftEnd     = 800 * time.Millisecond
	bannerAt     = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

const cloudArt = `      .--.
   .-(    ).
  (___.__)__)`

// rain frames fall under the cloud while the splash plays
var rainFrames = []string{"  ' ' ' ' '", "   ' ' ' ' "}

type tickMsg time.Time

// WelcomeScreen shows a short splash, then replaces itself with the screen
// built by next.
type WelcomeScreen struct {
	next         func() screen.Screen
	tagline      string
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen.
func New(tagline string, next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next, tagline: tagline}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		// Any key skips the splash.
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	cloud := lipgloss.NewStyle().Foreground(theme.Text).Render(cloudArt)

	// The cloud drifts in from the left during the first phase.
	if w.elapsed < driftEnd {
		shift := int((driftEnd - w.elapsed) / tickInterval)
		lines := strings.Split(cloud, "\n")
		for i := range lines {
			lines[i] = strings.Repeat(" ", shift) + lines[i]
		}
		cloud = strings.Join(lines, "\n")
	} else {
		rain := lipgloss.NewStyle().Foreground(theme.Secondary).
			Render(rainFrames[w.tickCount%len(rainFrames)])
		cloud += "\n" + rain
	}

	sections := []string{cloud}

	if w.elapsed >= bannerAt {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(w.tagline),
			"",
			theme.Hint.Render("press any key to continue"),
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, sections...))
}
