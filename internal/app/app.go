package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cloudquest/internal/i18n"
	"github.com/abhisek/cloudquest/internal/nav"
	"github.com/abhisek/cloudquest/internal/notify"
	"github.com/abhisek/cloudquest/internal/router"
	"github.com/abhisek/cloudquest/internal/screen"
	"github.com/abhisek/cloudquest/internal/screens/dashboard"
	"github.com/abhisek/cloudquest/internal/screens/welcome"
	"github.com/abhisek/cloudquest/internal/tasks"
	"github.com/abhisek/cloudquest/internal/ui/components"
	"github.com/abhisek/cloudquest/internal/ui/layout"
)

// Options holds the dependencies wired by the CLI.
type Options struct {
	Controller    *nav.Controller
	Tutor         tasks.Tutor
	Printer       *i18n.Printer
	Notifications *notify.Channel
	Confetti      *components.Confetti

	// SkipSplash starts on the dashboard.
	SkipSplash bool
}

type notificationExpiredMsg struct {
	gen notify.Generation
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	ctrl     *nav.Controller
	p        *i18n.Printer
	notes    *notify.Channel
	confetti *components.Confetti

	router *router.Router
	width  int
	height int

	seenGen         notify.Generation
	confettiRunning bool
}

// newAppModel creates an AppModel that opens on the splash screen.
func newAppModel(opts Options) AppModel {
	if opts.Confetti == nil {
		opts.Confetti = components.NewConfetti(uint64(time.Now().UnixNano()))
	}
	if opts.Notifications == nil {
		opts.Notifications = notify.NewChannel()
	}

	home := func() screen.Screen { return dashboard.New(opts.Controller, opts.Tutor, opts.Printer) }
	initial := home()
	if !opts.SkipSplash {
		initial = welcome.New(opts.Printer.T(i18n.DashboardIntro), home)
	}

	return AppModel{
		ctrl:     opts.Controller,
		p:        opts.Printer,
		notes:    opts.Notifications,
		confetti: opts.Confetti,
		router:   router.New(initial),
		seenGen:  opts.Notifications.Generation(),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				m.ctrl.GoDashboard()
				return m, func() tea.Msg { return router.HomeMsg{} }
			}
			return m, nil
		}

	case components.ConfettiFrameMsg:
		if m.confetti.Step() {
			return m, components.ConfettiTick()
		}
		m.confettiRunning = false
		return m, nil

	case notificationExpiredMsg:
		m.notes.Expire(msg.gen)
		return m, nil
	}

	// AI results land in the controller before the screen sees them.
	tasks.Apply(m.ctrl, msg)

	cmds := []tea.Cmd{m.router.Update(msg)}
	cmds = append(cmds, m.watchEffects()...)
	return m, tea.Batch(cmds...)
}

// watchEffects schedules the expiry of a new notification and starts the
// confetti animation when a burst was fired during this update.
func (m *AppModel) watchEffects() []tea.Cmd {
	var cmds []tea.Cmd
	if gen := m.notes.Generation(); gen != m.seenGen {
		m.seenGen = gen
		cmds = append(cmds, tea.Tick(m.notes.Window(), func(time.Time) tea.Msg {
			return notificationExpiredMsg{gen: gen}
		}))
	}
	if m.confetti.Active() && !m.confettiRunning {
		m.confettiRunning = true
		cmds = append(cmds, components.ConfettiTick())
	}
	return cmds
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the full frame for the current terminal size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	if _, splash := active.(*welcome.WelcomeScreen); splash {
		return active.View(m.width, m.height)
	}

	stats := m.ctrl.Stats()
	header := layout.RenderHeader(strings.Join(m.router.Trail(), " › "), layout.HeaderStats{
		Level:     m.p.T(i18n.HeaderLevel, stats.Level),
		Title:     stats.Title,
		XPPercent: stats.Percent(),
		Streak:    m.p.T(i18n.HeaderStreak, stats.Streak),
	}, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)
	if n, ok := m.notes.Current(); ok {
		footer = components.Toast(n, m.width) + "\n" + footer
	}

	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)
	if m.confetti.Active() {
		frame = m.confetti.Overlay(frame, m.width, m.height)
	}
	return frame
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
