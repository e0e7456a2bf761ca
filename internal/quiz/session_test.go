package quiz

import (
	"errors"
	"testing"

	"github.com/abhisek/cloudquest/internal/celebrate"
)

type recordingRewarder struct {
	awards []int
}

func (r *recordingRewarder) Award(amount int) bool {
	r.awards = append(r.awards, amount)
	return false
}

type recordingEffect struct {
	bursts []celebrate.Burst
}

func (r *recordingEffect) Burst(b celebrate.Burst) { r.bursts = append(r.bursts, b) }

func threeQuestions() []Question {
	return []Question{
		{Question: "Q1", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 0, Explanation: "e1"},
		{Question: "Q2", Options: []string{"a", "b", "c", "d"}, CorrectIndex: 1, Explanation: "e2"},
		{Question: "Q3", Options: []string{"a", "b"}, CorrectIndex: 1, Explanation: "e3"},
	}
}

func readySession(t *testing.T) (*Session, *recordingRewarder, *recordingEffect) {
	t.Helper()
	r := &recordingRewarder{}
	fx := &recordingEffect{}
	s := NewSession(r, WithEffect(fx))
	tk := s.Begin()
	if !s.Resolve(tk, threeQuestions(), nil) {
		t.Fatal("resolve rejected")
	}
	if s.Phase() != PhaseReady {
		t.Fatalf("phase = %v, want ready", s.Phase())
	}
	return s, r, fx
}

func answer(t *testing.T, s *Session, idx int) {
	t.Helper()
	if !s.Select(idx) {
		t.Fatalf("select %d rejected", idx)
	}
	if !s.Submit() {
		t.Fatal("submit rejected")
	}
	if !s.Next() {
		t.Fatal("next rejected")
	}
}

func TestResolve_Success(t *testing.T) {
	s, _, _ := readySession(t)
	q, ok := s.Current()
	if !ok || q.Question != "Q1" {
		t.Fatalf("unexpected current %+v ok=%v", q, ok)
	}
	if s.Index() != 0 || s.Score() != 0 || s.Total() != 3 {
		t.Fatalf("index=%d score=%d total=%d", s.Index(), s.Score(), s.Total())
	}
}

func TestResolve_Empty(t *testing.T) {
	s := NewSession(nil)
	s.Resolve(s.Begin(), nil, nil)
	if s.Phase() != PhaseError || s.LoadError() != LoadEmpty {
		t.Fatalf("phase=%v loadErr=%v, want error/empty", s.Phase(), s.LoadError())
	}
}

func TestResolve_Failure(t *testing.T) {
	s := NewSession(nil)
	s.Resolve(s.Begin(), threeQuestions(), errors.New("network down"))
	if s.Phase() != PhaseError || s.LoadError() != LoadFailed {
		t.Fatalf("phase=%v loadErr=%v, want error/failed", s.Phase(), s.LoadError())
	}
}

func TestResolve_DropsMalformedQuestions(t *testing.T) {
	s := NewSession(nil)
	qs := []Question{
		{Question: "one option", Options: []string{"a"}, CorrectIndex: 0},
		{Question: "bad index", Options: []string{"a", "b"}, CorrectIndex: 5},
	}
	s.Resolve(s.Begin(), qs, nil)
	if s.Phase() != PhaseError || s.LoadError() != LoadEmpty {
		t.Fatalf("phase=%v, want error for all-malformed set", s.Phase())
	}
}

func TestResolve_StaleTicketIgnored(t *testing.T) {
	s := NewSession(nil)
	old := s.Begin()
	fresh := s.Begin()

	if s.Resolve(old, threeQuestions(), nil) {
		t.Fatal("expected stale ticket to be rejected")
	}
	if s.Phase() != PhaseLoading {
		t.Fatalf("phase = %v, want loading", s.Phase())
	}
	if !s.Resolve(fresh, threeQuestions(), nil) {
		t.Fatal("expected fresh ticket to be accepted")
	}
}

func TestResolve_OtherSessionTicketIgnored(t *testing.T) {
	a := NewSession(nil)
	b := NewSession(nil)
	tk := a.Begin()
	b.Begin()
	if b.Resolve(tk, threeQuestions(), nil) {
		t.Fatal("expected ticket from another session to be rejected")
	}
}

func TestSubmit_WithoutSelectionRejected(t *testing.T) {
	s, r, _ := readySession(t)
	if s.Submit() {
		t.Fatal("expected submit without selection to be rejected")
	}
	if s.Answered() || s.Score() != 0 || len(r.awards) != 0 {
		t.Fatal("state changed on rejected submit")
	}
}

func TestSelect_Overwrites(t *testing.T) {
	s, _, _ := readySession(t)
	s.Select(2)
	s.Select(0)
	if sel, ok := s.Selected(); !ok || sel != 0 {
		t.Fatalf("selected = %d ok=%v, want 0", sel, ok)
	}
	if s.Select(9) {
		t.Fatal("expected out-of-range select to be rejected")
	}
}

func TestSelect_AfterAnsweredIgnored(t *testing.T) {
	s, _, _ := readySession(t)
	s.Select(1)
	s.Submit()
	if s.Select(0) {
		t.Fatal("expected select after answer to be rejected")
	}
	if sel, _ := s.Selected(); sel != 1 {
		t.Fatalf("selected = %d, want 1", sel)
	}
}

func TestSubmit_CorrectAwardsAndCelebrates(t *testing.T) {
	s, r, fx := readySession(t)
	s.Select(0)
	s.Submit()

	if s.Score() != 1 {
		t.Fatalf("score = %d, want 1", s.Score())
	}
	if s.Feedback() != FeedbackCorrect {
		t.Fatalf("feedback = %v, want correct", s.Feedback())
	}
	if len(r.awards) != 1 || r.awards[0] != 10 {
		t.Fatalf("awards = %v, want [10]", r.awards)
	}
	if len(fx.bursts) != 1 || fx.bursts[0].Particles != 30 {
		t.Fatalf("bursts = %+v", fx.bursts)
	}
	if fx.bursts[0].Origin != celebrate.OptionAnchor(0, 4) {
		t.Fatalf("burst origin = %+v", fx.bursts[0].Origin)
	}
}

func TestSubmit_Incorrect(t *testing.T) {
	s, r, fx := readySession(t)
	s.Select(3)
	s.Submit()

	if s.Score() != 0 || s.Feedback() != FeedbackIncorrect {
		t.Fatalf("score=%d feedback=%v", s.Score(), s.Feedback())
	}
	if len(r.awards) != 0 || len(fx.bursts) != 0 {
		t.Fatal("expected no award or celebration on wrong answer")
	}
}

func TestNext_RequiresAnswer(t *testing.T) {
	s, _, _ := readySession(t)
	if s.Next() {
		t.Fatal("expected next before answer to be rejected")
	}
	s.Select(1)
	if s.Next() {
		t.Fatal("expected next with only a selection to be rejected")
	}
}

func TestNext_ClearsAnswerState(t *testing.T) {
	s, _, _ := readySession(t)
	s.Select(0)
	s.Submit()
	s.Next()

	if s.Index() != 1 {
		t.Fatalf("index = %d, want 1", s.Index())
	}
	if _, ok := s.Selected(); ok {
		t.Fatal("expected selection cleared")
	}
	if s.Answered() || s.Feedback() != FeedbackNone {
		t.Fatal("expected answered flag and feedback cleared")
	}
}

func TestComplete_TwoOfThreeNoBonus(t *testing.T) {
	s, r, fx := readySession(t)
	answer(t, s, 0) // correct
	answer(t, s, 1) // correct
	answer(t, s, 0) // wrong

	if s.Phase() != PhaseCompleted {
		t.Fatalf("phase = %v, want completed", s.Phase())
	}
	if s.Score() != 2 {
		t.Fatalf("score = %d, want 2", s.Score())
	}
	if s.Bonus() != 0 || s.Passed() {
		t.Fatalf("bonus=%d passed=%v, want no bonus at 2/3", s.Bonus(), s.Passed())
	}
	if s.DisplayReward() != 20 {
		t.Fatalf("display reward = %d, want 20", s.DisplayReward())
	}
	if len(r.awards) != 2 {
		t.Fatalf("awards = %v, want two correct-answer awards", r.awards)
	}
	for _, b := range fx.bursts {
		if b.Particles == 150 {
			t.Fatal("unexpected completion burst below pass mark")
		}
	}
	if s.Percent() != 67 {
		t.Fatalf("percent = %d, want 67", s.Percent())
	}
}

func TestComplete_PerfectScoreBonus(t *testing.T) {
	s, r, fx := readySession(t)
	answer(t, s, 0)
	answer(t, s, 1)
	answer(t, s, 1)

	if s.Bonus() != 15 {
		t.Fatalf("bonus = %d, want 15", s.Bonus())
	}
	if s.DisplayReward() != 45 {
		t.Fatalf("display reward = %d, want 45", s.DisplayReward())
	}
	want := []int{10, 10, 10, 15}
	if len(r.awards) != len(want) {
		t.Fatalf("awards = %v, want %v", r.awards, want)
	}
	for i := range want {
		if r.awards[i] != want[i] {
			t.Fatalf("awards = %v, want %v", r.awards, want)
		}
	}
	last := fx.bursts[len(fx.bursts)-1]
	if last.Particles != 150 {
		t.Fatalf("last burst = %+v, want completion burst", last)
	}
}

func TestIndexNeverExceedsTotal(t *testing.T) {
	s, _, _ := readySession(t)
	for i := 0; i < 10; i++ {
		s.Select(0)
		s.Submit()
		s.Next()
		if s.Index() > s.Total()-1 {
			t.Fatalf("index %d exceeds %d", s.Index(), s.Total()-1)
		}
	}
	if s.Phase() != PhaseCompleted {
		t.Fatalf("phase = %v, want completed", s.Phase())
	}
}

func TestRetry_AfterCompletion(t *testing.T) {
	s, _, _ := readySession(t)
	answer(t, s, 0)
	answer(t, s, 1)
	answer(t, s, 1)

	tk, ok := s.Retry()
	if !ok {
		t.Fatal("expected retry from completed")
	}
	if s.Phase() != PhaseLoading || s.Score() != 0 || s.Index() != 0 || s.Total() != 0 {
		t.Fatalf("retry did not reset: phase=%v score=%d index=%d total=%d", s.Phase(), s.Score(), s.Index(), s.Total())
	}
	if !s.Resolve(tk, threeQuestions(), nil) {
		t.Fatal("expected retry ticket to resolve")
	}
	if s.Phase() != PhaseReady {
		t.Fatalf("phase = %v, want ready", s.Phase())
	}
}

func TestRetry_FromError(t *testing.T) {
	s := NewSession(nil)
	s.Resolve(s.Begin(), nil, errors.New("boom"))
	if _, ok := s.Retry(); !ok {
		t.Fatal("expected retry from error")
	}
}

func TestRetry_InvalidWhileReady(t *testing.T) {
	s, _, _ := readySession(t)
	if _, ok := s.Retry(); ok {
		t.Fatal("expected retry to be rejected while ready")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		q       Question
		wantErr bool
	}{
		{"valid", Question{Question: "q", Options: []string{"a", "b"}, CorrectIndex: 1}, false},
		{"no text", Question{Options: []string{"a", "b"}}, true},
		{"one option", Question{Question: "q", Options: []string{"a"}}, true},
		{"negative index", Question{Question: "q", Options: []string{"a", "b"}, CorrectIndex: -1}, true},
		{"blank option", Question{Question: "q", Options: []string{"a", " "}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.q.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
