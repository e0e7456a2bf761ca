package module

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/cloudquest/internal/chat"
	"github.com/abhisek/cloudquest/internal/curriculum"
	"github.com/abhisek/cloudquest/internal/i18n"
	"github.com/abhisek/cloudquest/internal/nav"
	"github.com/abhisek/cloudquest/internal/notify"
	"github.com/abhisek/cloudquest/internal/quiz"
	"github.com/abhisek/cloudquest/internal/tasks"
	"github.com/abhisek/cloudquest/internal/xp"
)

type fakeTutor struct {
	explain   string
	questions []quiz.Question
	quizErr   error
}

func (f *fakeTutor) Explain(context.Context, curriculum.Topic, string) (string, error) {
	return f.explain, nil
}

func (f *fakeTutor) GenerateQuiz(context.Context, string) ([]quiz.Question, error) {
	return f.questions, f.quizErr
}

func (f *fakeTutor) Chat(context.Context, string, []chat.Turn) (string, error) {
	return "ok", nil
}

var (
	keyTab   = tea.KeyPressMsg{Code: tea.KeyTab}
	keyEnter = tea.KeyPressMsg{Code: tea.KeyEnter}
)

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func newScreen(t *testing.T, tutor *fakeTutor) (*ModuleScreen, *nav.Controller) {
	t.Helper()
	ctrl := nav.New(curriculum.Default(), xp.NewEngine(notify.NewChannel()), i18n.New("en"))
	require.True(t, ctrl.SelectModule("net_core"))
	return New(ctrl, tutor, i18n.New("en")), ctrl
}

// run executes cmd and feeds its result back through the controller.
func run(t *testing.T, ctrl *nav.Controller, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	require.True(t, tasks.Apply(ctrl, cmd()))
}

func threeQuestions() []quiz.Question {
	q := quiz.Question{Question: "Which?", Options: []string{"one", "two", "three"}, CorrectIndex: 1, Explanation: "Two is right."}
	return []quiz.Question{q, q, q}
}

func TestLearnTab_EnterStudiesTopic(t *testing.T) {
	s, ctrl := newScreen(t, &fakeTutor{explain: "VPC rocks"})

	_, cmd := s.Update(keyEnter)
	assert.True(t, ctrl.Explanation().Loading)
	assert.Contains(t, s.View(120, 40), i18n.Explaining)
	assert.True(t, ctrl.IsCompleted("vpc_theory"))
	assert.True(t, s.topics.Items[0].Checked)
	assert.Equal(t, xp.TheoryReward, ctrl.Stats().XP)

	run(t, ctrl, cmd)
	assert.Equal(t, "vpc_theory", ctrl.Explanation().TopicID)
	assert.Contains(t, s.View(120, 40), "VPC rocks")

	// Studying it again only reloads the explanation.
	_, cmd = s.Update(keyEnter)
	require.NotNil(t, cmd)
	assert.Equal(t, xp.TheoryReward, ctrl.Stats().XP)

	s.Update(key('c'))
	assert.Equal(t, xp.TheoryReward, ctrl.Stats().XP)
}

func TestLearnTab_LabAwardsMore(t *testing.T) {
	s, ctrl := newScreen(t, &fakeTutor{explain: "Build it"})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	_, cmd := s.Update(keyEnter)
	run(t, ctrl, cmd)
	assert.True(t, ctrl.IsCompleted("lab_vpc_build"))
	assert.Equal(t, xp.LabReward, ctrl.Stats().XP)
	assert.Equal(t, 1, ctrl.CompletedCount())
}

func TestLearnTab_MarkDoneAlias(t *testing.T) {
	s, ctrl := newScreen(t, &fakeTutor{})

	_, cmd := s.Update(key('c'))
	assert.Nil(t, cmd)
	assert.True(t, ctrl.IsCompleted("vpc_theory"))
	assert.False(t, ctrl.Explanation().Loading)
	assert.Equal(t, xp.TheoryReward, ctrl.Stats().XP)
}

func TestTabsCycle(t *testing.T) {
	s, ctrl := newScreen(t, &fakeTutor{questions: threeQuestions()})

	_, cmd := s.Update(keyTab)
	assert.Equal(t, nav.TabChat, ctrl.Tab())
	assert.Nil(t, cmd)
	require.NotNil(t, ctrl.ModuleChat())

	_, cmd = s.Update(keyTab)
	assert.Equal(t, nav.TabQuiz, ctrl.Tab())
	require.NotNil(t, cmd, "first visit loads the quiz")

	_, cmd = s.Update(keyTab)
	assert.Equal(t, nav.TabLearn, ctrl.Tab())
	assert.Nil(t, cmd)

	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	assert.Equal(t, nav.TabQuiz, ctrl.Tab())
	assert.Nil(t, cmd, "returning keeps the existing session")
}

func TestQuizTab_PlayThrough(t *testing.T) {
	s, ctrl := newScreen(t, &fakeTutor{questions: threeQuestions()})
	s.Update(keyTab)
	_, cmd := s.Update(keyTab)
	assert.Contains(t, s.View(120, 40), i18n.QuizLoading)
	run(t, ctrl, cmd)

	sess := ctrl.Quiz()
	require.Equal(t, quiz.PhaseReady, sess.Phase())
	assert.Contains(t, s.View(120, 40), "Question 1 of 3")

	// Letter selection, then submit.
	s.Update(key('b'))
	s.Update(keyEnter)
	assert.True(t, sess.Answered())
	assert.Equal(t, quiz.FeedbackCorrect, sess.Feedback())
	assert.Contains(t, s.View(120, 40), "Two is right.")
	s.Update(keyEnter)
	assert.Equal(t, 1, sess.Index())

	// Cursor selection.
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(keyEnter)
	assert.Equal(t, quiz.FeedbackCorrect, sess.Feedback())
	s.Update(keyEnter)

	// Enter with the cursor at the top answers option A.
	s.Update(keyEnter)
	assert.Equal(t, quiz.FeedbackIncorrect, sess.Feedback())
	s.Update(keyEnter)

	require.Equal(t, quiz.PhaseCompleted, sess.Phase())
	out := s.View(120, 40)
	assert.Contains(t, out, "Score: 2/3 (67%)")
	assert.Contains(t, out, i18n.QuizKeepGoing, "2 of 3 is below the pass mark")

	_, cmd = s.Update(key('r'))
	require.NotNil(t, cmd)
	assert.Equal(t, quiz.PhaseLoading, sess.Phase())
	run(t, ctrl, cmd)
	assert.Equal(t, quiz.PhaseReady, sess.Phase())
}

func TestQuizTab_ErrorAndRetry(t *testing.T) {
	tutor := &fakeTutor{quizErr: errors.New("offline")}
	s, ctrl := newScreen(t, tutor)
	s.Update(keyTab)
	_, cmd := s.Update(keyTab)
	run(t, ctrl, cmd)

	require.Equal(t, quiz.PhaseError, ctrl.Quiz().Phase())
	assert.True(t, strings.Contains(s.View(120, 40), "Something went wrong"))

	tutor.quizErr = nil
	tutor.questions = threeQuestions()
	_, cmd = s.Update(keyEnter)
	run(t, ctrl, cmd)
	assert.Equal(t, quiz.PhaseReady, ctrl.Quiz().Phase())
}

func TestQuizTab_EmptyGeneration(t *testing.T) {
	s, ctrl := newScreen(t, &fakeTutor{questions: []quiz.Question{}})
	s.Update(keyTab)
	_, cmd := s.Update(keyTab)
	run(t, ctrl, cmd)

	require.Equal(t, quiz.PhaseError, ctrl.Quiz().Phase())
	assert.Equal(t, quiz.LoadEmpty, ctrl.Quiz().LoadError())
	assert.Contains(t, s.View(140, 40), "napping")
}

func TestOptionKey(t *testing.T) {
	tests := []struct {
		key  string
		want int
		ok   bool
	}{
		{"1", 0, true},
		{"4", 3, true},
		{"a", 0, true},
		{"d", 3, true},
		{"z", 0, false},
		{"enter", 0, false},
	}
	for _, tt := range tests {
		got, ok := optionKey(tt.key)
		if got != tt.want || ok != tt.ok {
			t.Errorf("optionKey(%q) = %d, %v; want %d, %v", tt.key, got, ok, tt.want, tt.ok)
		}
	}
}
