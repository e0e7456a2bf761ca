// Package dashboard is the home screen: every track and module with its
// progress, next to the learner's level card.
package dashboard

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cloudquest/internal/curriculum"
	"github.com/abhisek/cloudquest/internal/i18n"
	"github.com/abhisek/cloudquest/internal/nav"
	"github.com/abhisek/cloudquest/internal/router"
	"github.com/abhisek/cloudquest/internal/screen"
	"github.com/abhisek/cloudquest/internal/screens/ecosystem"
	"github.com/abhisek/cloudquest/internal/screens/module"
	"github.com/abhisek/cloudquest/internal/screens/tutorchat"
	"github.com/abhisek/cloudquest/internal/tasks"
	"github.com/abhisek/cloudquest/internal/ui/layout"
)

type rowKind int

const (
	rowTrackHeader rowKind = iota
	rowModule
)

type row struct {
	kind   rowKind
	track  curriculum.Track
	module curriculum.Module
}

// DashboardScreen lists the curriculum.
type DashboardScreen struct {
	ctrl  *nav.Controller
	tutor tasks.Tutor
	p     *i18n.Printer

	rows         []row
	cursor       int
	scrollOffset int
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates the dashboard.
func New(ctrl *nav.Controller, tutor tasks.Tutor, p *i18n.Printer) *DashboardScreen {
	var rows []row
	for _, tr := range ctrl.Catalog().Tracks() {
		rows = append(rows, row{kind: rowTrackHeader, track: tr})
		for _, m := range tr.Modules {
			rows = append(rows, row{kind: rowModule, track: tr, module: m})
		}
	}

	d := &DashboardScreen{ctrl: ctrl, tutor: tutor, p: p, rows: rows}
	d.moveCursor(1)
	return d
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) Title() string {
	return d.p.T(i18n.ViewDashboard)
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Track"},
		{Key: "Enter", Description: "Open"},
		{Key: "E", Description: d.p.T(i18n.ViewEcosystem)},
		{Key: "T", Description: d.p.T(i18n.ViewTutor)},
		{Key: "Q", Description: "Quit"},
	}
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return d, nil
	}

	switch kmsg.String() {
	case "up", "k":
		d.moveCursor(-1)
	case "down", "j":
		d.moveCursor(1)
	case "tab":
		d.nextTrack()
	case "shift+tab":
		d.prevTrack()
	case "enter":
		return d, d.openModule()
	case "e":
		d.ctrl.GoEcosystem()
		return d, push(ecosystem.New(d.ctrl, d.p))
	case "t":
		d.ctrl.GoTutor()
		return d, push(tutorchat.New(d.ctrl, d.tutor, d.p))
	case "q":
		return d, tea.Quit
	}
	return d, nil
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

// Selected returns the module under the cursor.
func (d *DashboardScreen) Selected() (curriculum.Module, bool) {
	if d.cursor < 0 || d.cursor >= len(d.rows) || d.rows[d.cursor].kind != rowModule {
		return curriculum.Module{}, false
	}
	return d.rows[d.cursor].module, true
}

func (d *DashboardScreen) openModule() tea.Cmd {
	m, ok := d.Selected()
	if !ok || !d.ctrl.SelectModule(m.ID) {
		return nil
	}
	return push(module.New(d.ctrl, d.tutor, d.p))
}

// moveCursor moves the cursor by delta, skipping track headers.
func (d *DashboardScreen) moveCursor(delta int) {
	next := d.cursor + delta
	for next >= 0 && next < len(d.rows) {
		if d.rows[next].kind == rowModule {
			d.cursor = next
			return
		}
		next += delta
	}
}

// nextTrack jumps to the first module of the next track.
func (d *DashboardScreen) nextTrack() {
	current := d.rows[d.cursor].track.ID
	for i := d.cursor + 1; i < len(d.rows); i++ {
		if d.rows[i].kind == rowModule && d.rows[i].track.ID != current {
			d.cursor = i
			return
		}
	}
}

// prevTrack jumps to the first module of the previous track.
func (d *DashboardScreen) prevTrack() {
	current := d.rows[d.cursor].track.ID
	target := ""
	for i := d.cursor - 1; i >= 0; i-- {
		if d.rows[i].kind == rowModule && d.rows[i].track.ID != current {
			target = d.rows[i].track.ID
			break
		}
	}
	if target == "" {
		return
	}
	for i, r := range d.rows {
		if r.kind == rowModule && r.track.ID == target {
			d.cursor = i
			return
		}
	}
}

// adjustScroll keeps the cursor, and its track header when possible, visible.
func (d *DashboardScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	headerRow := d.cursor
	if headerRow > 0 && d.rows[headerRow-1].kind == rowTrackHeader {
		headerRow--
	}

	if headerRow < d.scrollOffset {
		d.scrollOffset = headerRow
	}
	if d.cursor >= d.scrollOffset+height {
		d.scrollOffset = d.cursor - height + 1
	}
}

func (d *DashboardScreen) mascotVariant() MascotVariant {
	if d.ctrl.CompletedCount() == 0 {
		return MascotIdle
	}
	for _, m := range d.ctrl.Catalog().AllModules() {
		p := d.ctrl.ModuleProgress(m.ID)
		if p.Total > 0 && p.Completed == p.Total {
			return MascotCelebrating
		}
	}
	return MascotHappy
}
