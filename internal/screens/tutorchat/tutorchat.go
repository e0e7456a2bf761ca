// Package tutorchat is the standalone AI tutor screen.
package tutorchat

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cloudquest/internal/i18n"
	"github.com/abhisek/cloudquest/internal/nav"
	"github.com/abhisek/cloudquest/internal/screen"
	"github.com/abhisek/cloudquest/internal/screens/chatpanel"
	"github.com/abhisek/cloudquest/internal/tasks"
	"github.com/abhisek/cloudquest/internal/ui/layout"
)

// TutorScreen chats with Cloudy without a module context.
type TutorScreen struct {
	ctrl  *nav.Controller
	p     *i18n.Printer
	panel *chatpanel.Panel
}

var _ screen.Screen = (*TutorScreen)(nil)
var _ screen.KeyHintProvider = (*TutorScreen)(nil)

// New creates the tutor screen. The controller must already be on the
// tutor view so that its conversation exists.
func New(ctrl *nav.Controller, tutor tasks.Tutor, p *i18n.Printer) *TutorScreen {
	return &TutorScreen{ctrl: ctrl, p: p, panel: chatpanel.New(tutor, p)}
}

func (s *TutorScreen) Init() tea.Cmd {
	return nil
}

func (s *TutorScreen) Title() string {
	return s.p.T(i18n.ViewTutor)
}

func (s *TutorScreen) KeyHints() []layout.KeyHint {
	return s.panel.KeyHints()
}

func (s *TutorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, s.panel.Update(s.ctrl.TutorChat(), msg)
}

func (s *TutorScreen) View(width, height int) string {
	return s.panel.View(s.ctrl.TutorChat(), width, height)
}
