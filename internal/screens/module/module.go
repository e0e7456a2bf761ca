// Package module is the module detail screen with its learn, chat and
// quiz tabs.
package module

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cloudquest/internal/curriculum"
	"github.com/abhisek/cloudquest/internal/i18n"
	"github.com/abhisek/cloudquest/internal/nav"
	"github.com/abhisek/cloudquest/internal/quiz"
	"github.com/abhisek/cloudquest/internal/screen"
	"github.com/abhisek/cloudquest/internal/screens/chatpanel"
	"github.com/abhisek/cloudquest/internal/tasks"
	"github.com/abhisek/cloudquest/internal/ui/components"
	"github.com/abhisek/cloudquest/internal/ui/layout"
)

var tabs = []nav.Tab{nav.TabLearn, nav.TabChat, nav.TabQuiz}

// ModuleScreen shows one module. The controller must already have the
// module selected.
type ModuleScreen struct {
	ctrl   *nav.Controller
	tutor  tasks.Tutor
	p      *i18n.Printer
	module curriculum.Module

	topics components.Menu
	panel  *chatpanel.Panel

	// cursor is the highlighted quiz option; it resets per question.
	cursor     int
	cursorFor  int
	cursorSess string
}

var _ screen.Screen = (*ModuleScreen)(nil)
var _ screen.KeyHintProvider = (*ModuleScreen)(nil)

// New creates the screen for the controller's selected module.
func New(ctrl *nav.Controller, tutor tasks.Tutor, p *i18n.Printer) *ModuleScreen {
	m, _ := ctrl.Module()
	s := &ModuleScreen{
		ctrl:      ctrl,
		tutor:     tutor,
		p:         p,
		module:    m,
		panel:     chatpanel.New(tutor, p),
		cursorFor: -1,
	}
	s.topics = components.NewMenu(s.topicItems())
	return s
}

func (s *ModuleScreen) Init() tea.Cmd {
	return nil
}

func (s *ModuleScreen) Title() string {
	return s.module.Title
}

func (s *ModuleScreen) KeyHints() []layout.KeyHint {
	tabHint := layout.KeyHint{Key: "Tab", Description: "Switch tab"}
	switch s.ctrl.Tab() {
	case nav.TabChat:
		return append([]layout.KeyHint{tabHint}, s.panel.KeyHints()...)
	case nav.TabQuiz:
		return []layout.KeyHint{
			tabHint,
			{Key: "↑↓/A-D", Description: "Choose"},
			{Key: "Enter", Description: "Submit"},
			{Key: "R", Description: "Retry"},
			{Key: "Esc", Description: "Back"},
		}
	default:
		return []layout.KeyHint{
			tabHint,
			{Key: "↑↓", Description: "Topic"},
			{Key: "Enter", Description: "Study"},
			{Key: "C", Description: "Mark done"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

func (s *ModuleScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "tab":
			return s, s.switchTab(1)
		case "shift+tab":
			return s, s.switchTab(-1)
		}
	}

	switch s.ctrl.Tab() {
	case nav.TabChat:
		return s, s.panel.Update(s.ctrl.ModuleChat(), msg)
	case nav.TabQuiz:
		return s, s.updateQuiz(msg)
	default:
		return s, s.updateLearn(msg)
	}
}

func (s *ModuleScreen) switchTab(delta int) tea.Cmd {
	current := 0
	for i, t := range tabs {
		if t == s.ctrl.Tab() {
			current = i
		}
	}
	next := tabs[(current+delta+len(tabs))%len(tabs)]
	tk, load := s.ctrl.SetTab(next)
	if !load {
		return nil
	}
	return tasks.LoadQuiz(s.tutor, tk, s.module.Title)
}

func (s *ModuleScreen) topicItems() []components.MenuItem {
	items := make([]components.MenuItem, len(s.module.Topics))
	for i, t := range s.module.Topics {
		kind := s.p.T(i18n.TopicTheory)
		if t.Type == curriculum.TopicLab {
			kind = s.p.T(i18n.TopicLab)
		}
		topic := t
		items[i] = components.MenuItem{
			Label:   t.Title,
			Detail:  kind,
			Checked: s.ctrl.IsCompleted(t.ID),
			Action:  func() tea.Cmd { return s.explain(topic) },
		}
	}
	return items
}

func (s *ModuleScreen) explain(t curriculum.Topic) tea.Cmd {
	tk, ok := s.ctrl.OpenTopic(t.ID)
	if !ok {
		return nil
	}
	return tasks.Explain(s.tutor, tk, t, s.module.Title)
}

func (s *ModuleScreen) updateLearn(msg tea.Msg) tea.Cmd {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "c" {
		if t, ok := s.selectedTopic(); ok && s.ctrl.CompleteTopic(t.ID) {
			s.topics.SetItems(s.topicItems())
		}
		return nil
	}
	var cmd tea.Cmd
	s.topics, cmd = s.topics.Update(msg)
	if cmd != nil {
		s.topics.SetItems(s.topicItems())
	}
	return cmd
}

func (s *ModuleScreen) selectedTopic() (curriculum.Topic, bool) {
	if s.topics.Selected < 0 || s.topics.Selected >= len(s.module.Topics) {
		return curriculum.Topic{}, false
	}
	return s.module.Topics[s.topics.Selected], true
}

func (s *ModuleScreen) updateQuiz(msg tea.Msg) tea.Cmd {
	kmsg, ok := msg.(tea.KeyPressMsg)
	sess := s.ctrl.Quiz()
	if !ok || sess == nil {
		return nil
	}
	key := kmsg.String()

	switch sess.Phase() {
	case quiz.PhaseError, quiz.PhaseCompleted:
		if key == "r" || key == "enter" {
			return s.retry()
		}
	case quiz.PhaseReady:
		s.syncCursor(sess)
		if sess.Answered() {
			if key == "enter" {
				sess.Next()
			}
			return nil
		}
		q, _ := sess.Current()
		switch key {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
			sess.Select(s.cursor)
		case "down", "j":
			if s.cursor < len(q.Options)-1 {
				s.cursor++
			}
			sess.Select(s.cursor)
		case "enter":
			if _, chosen := sess.Selected(); !chosen {
				sess.Select(s.cursor)
			}
			sess.Submit()
		default:
			if i, ok := optionKey(key); ok && sess.Select(i) {
				s.cursor = i
			}
		}
	}
	return nil
}

func (s *ModuleScreen) retry() tea.Cmd {
	tk, ok := s.ctrl.RetryQuiz()
	if !ok {
		return nil
	}
	return tasks.LoadQuiz(s.tutor, tk, s.module.Title)
}

// syncCursor resets the option cursor when the question changes.
func (s *ModuleScreen) syncCursor(sess *quiz.Session) {
	if sess.ID() == s.cursorSess && sess.Index() == s.cursorFor {
		return
	}
	s.cursorSess = sess.ID()
	s.cursorFor = sess.Index()
	s.cursor = 0
}

// optionKey maps 1-9 and a-i to an option index.
func optionKey(key string) (int, bool) {
	if len(key) != 1 {
		return 0, false
	}
	c := key[0]
	switch {
	case c >= '1' && c <= '9':
		return int(c - '1'), true
	case c >= 'a' && c <= 'i':
		return int(c - 'a'), true
	}
	return 0, false
}
