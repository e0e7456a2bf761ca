package tutorchat

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cloudquest/internal/chat"
	"github.com/abhisek/cloudquest/internal/curriculum"
	"github.com/abhisek/cloudquest/internal/i18n"
	"github.com/abhisek/cloudquest/internal/nav"
	"github.com/abhisek/cloudquest/internal/notify"
	"github.com/abhisek/cloudquest/internal/quiz"
	"github.com/abhisek/cloudquest/internal/tasks"
	"github.com/abhisek/cloudquest/internal/xp"
)

type factTutor struct{}

func (factTutor) Explain(context.Context, curriculum.Topic, string) (string, error) { return "", nil }
func (factTutor) GenerateQuiz(context.Context, string) ([]quiz.Question, error)    { return nil, nil }
func (factTutor) Chat(context.Context, string, []chat.Turn) (string, error) {
	return "Lambda was launched in 2014!", nil
}

func TestQuickActionWithoutContextAsksForFunFact(t *testing.T) {
	p := i18n.New("en")
	ctrl := nav.New(curriculum.Default(), xp.NewEngine(notify.NewChannel()), p)
	ctrl.GoTutor()
	s := New(ctrl, factTutor{}, p)

	_, cmd := s.Update(tea.KeyPressMsg{Code: '1', Mod: tea.ModAlt})
	if cmd == nil {
		t.Fatal("expected a chat command")
	}
	msgs := ctrl.TutorChat().Messages()
	if got := msgs[len(msgs)-1].Text; got != i18n.ActionFunFact {
		t.Fatalf("sent %q, want the fun-fact prompt", got)
	}

	tasks.Apply(ctrl, cmd())
	msgs = ctrl.TutorChat().Messages()
	if got := msgs[len(msgs)-1].Text; got != "Lambda was launched in 2014!" {
		t.Fatalf("last message = %q", got)
	}
}

func TestTitle(t *testing.T) {
	p := i18n.New("zh-CN")
	ctrl := nav.New(curriculum.Default(), xp.NewEngine(notify.NewChannel()), p)
	ctrl.GoTutor()
	if got := New(ctrl, factTutor{}, p).Title(); got == i18n.ViewTutor {
		t.Errorf("expected a localized title, got %q", got)
	}
}
