package chatpanel

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cloudquest/internal/chat"
	"github.com/abhisek/cloudquest/internal/curriculum"
	"github.com/abhisek/cloudquest/internal/i18n"
	"github.com/abhisek/cloudquest/internal/quiz"
	"github.com/abhisek/cloudquest/internal/tasks"
)

type echoTutor struct{ prompts []string }

func (e *echoTutor) Explain(context.Context, curriculum.Topic, string) (string, error) {
	return "", nil
}

func (e *echoTutor) GenerateQuiz(context.Context, string) ([]quiz.Question, error) {
	return nil, nil
}

func (e *echoTutor) Chat(_ context.Context, prompt string, _ []chat.Turn) (string, error) {
	e.prompts = append(e.prompts, prompt)
	return "echo: " + prompt, nil
}

func typeText(pn *Panel, conv *chat.Conversation, s string) {
	for _, r := range s {
		pn.Update(conv, tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestEnterSendsDraft(t *testing.T) {
	p := i18n.New("en")
	tutor := &echoTutor{}
	pn := New(tutor, p)
	conv := chat.NewConversation("Amazon S3", p)

	typeText(pn, conv, "hi")
	if pn.Draft() != "hi" {
		t.Fatalf("draft = %q", pn.Draft())
	}

	cmd := pn.Update(conv, tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a send command")
	}
	if pn.Draft() != "" {
		t.Errorf("draft should be cleared after sending, got %q", pn.Draft())
	}
	if !conv.Loading() {
		t.Error("conversation should be loading")
	}

	msg, ok := cmd().(tasks.ChatMsg)
	if !ok {
		t.Fatalf("expected tasks.ChatMsg, got %T", cmd())
	}
	if !strings.HasPrefix(tutor.prompts[0], "[Context: User is studying Amazon S3]") {
		t.Errorf("first prompt should carry the module context: %q", tutor.prompts[0])
	}
	conv.Resolve(msg.Ticket, msg.Text, msg.Err)
	if conv.Loading() {
		t.Error("conversation should be idle after the reply")
	}
}

func TestBlankAndLoadingAreIgnored(t *testing.T) {
	p := i18n.New("en")
	pn := New(&echoTutor{}, p)
	conv := chat.NewConversation("", p)

	typeText(pn, conv, "   ")
	if cmd := pn.Update(conv, tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Error("blank draft must not send")
	}

	pn = New(&echoTutor{}, p)
	typeText(pn, conv, "first")
	pn.Update(conv, tea.KeyPressMsg{Code: tea.KeyEnter})
	typeText(pn, conv, "second")
	if cmd := pn.Update(conv, tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Error("must not send while a reply is pending")
	}
	if pn.Draft() != "second" {
		t.Errorf("draft should be kept while loading, got %q", pn.Draft())
	}
}

func TestQuickActionKeys(t *testing.T) {
	p := i18n.New("en")
	tutor := &echoTutor{}
	pn := New(tutor, p)
	conv := chat.NewConversation("AWS Lambda", p)

	cmd := pn.Update(conv, tea.KeyPressMsg{Code: '2', Mod: tea.ModAlt})
	if cmd == nil {
		t.Fatal("alt+2 should send the second quick action")
	}
	cmd()
	if !strings.Contains(tutor.prompts[0], "like I'm five") {
		t.Errorf("unexpected quick action prompt %q", tutor.prompts[0])
	}
}

func TestViewShowsTranscript(t *testing.T) {
	p := i18n.New("en")
	pn := New(&echoTutor{}, p)
	conv := chat.NewConversation("", p)

	out := pn.View(conv, 90, 20)
	if !strings.Contains(out, "Cloudy") {
		t.Errorf("expected tutor name in view:\n%s", out)
	}
	if !strings.Contains(out, "Analogy") {
		t.Errorf("expected quick actions in view:\n%s", out)
	}
}
