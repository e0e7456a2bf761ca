package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/cloudquest/internal/chat"
	"github.com/abhisek/cloudquest/internal/curriculum"
	"github.com/abhisek/cloudquest/internal/i18n"
	"github.com/abhisek/cloudquest/internal/llm"
)

func newTestService(mock *llm.MockProvider, lang string) *Service {
	return NewService(mock, DefaultConfig(), i18n.New(lang))
}

func quizJSON(n int) json.RawMessage {
	type q struct {
		Question     string   `json:"question"`
		Options      []string `json:"options"`
		CorrectIndex int      `json:"correctIndex"`
		Explanation  string   `json:"explanation"`
	}
	out := struct {
		Questions []q `json:"questions"`
	}{}
	for i := 0; i < n; i++ {
		out.Questions = append(out.Questions, q{
			Question:     "Your S3 bill doubled overnight. What do you check first?",
			Options:      []string{"Storage class", "Request metrics", "Bucket region", "IAM users"},
			CorrectIndex: 1,
			Explanation:  "Request spikes are the usual cause.",
		})
	}
	b, _ := json.Marshal(out)
	return b
}

func TestExplain_TheoryPrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("**The Problem 🛑** ...")})
	svc := newTestService(mock, "en")

	topic := curriculum.Topic{ID: "s3-basics", Title: "S3 Storage Classes", Type: curriculum.TopicTheory}
	text, err := svc.Explain(context.Background(), topic, "Amazon S3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "**The Problem 🛑** ..." {
		t.Fatalf("text = %q", text)
	}

	req := mock.Calls[0]
	if req.Schema != nil {
		t.Fatal("explanations are free text")
	}
	if !strings.Contains(req.Messages[0].Content, "Theory Mode") || !strings.Contains(req.Messages[0].Content, `"S3 Storage Classes"`) {
		t.Fatalf("unexpected prompt: %s", req.Messages[0].Content)
	}
	if !strings.HasSuffix(req.System, "Language: English.") {
		t.Fatalf("system prompt should end with the answer language: %q", req.System[len(req.System)-40:])
	}
	if req.MaxTokens != 2048 {
		t.Fatalf("max tokens = %d", req.MaxTokens)
	}
}

func TestExplain_LabPromptAndLanguage(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("lab")})
	svc := newTestService(mock, "zh-CN")

	topic := curriculum.Topic{ID: "lambda-lab", Title: "Deploy a function", Type: curriculum.TopicLab}
	if _, err := svc.Explain(context.Background(), topic, "AWS Lambda"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	req := mock.Calls[0]
	if !strings.Contains(req.Messages[0].Content, "Lab Mode") || !strings.Contains(req.Messages[0].Content, "Cleanup") {
		t.Fatalf("unexpected prompt: %s", req.Messages[0].Content)
	}
	if !strings.HasSuffix(req.System, "Language: Chinese (Simplified).") {
		t.Fatal("expected Chinese answer language")
	}
}

func TestExplain_Fallbacks(t *testing.T) {
	topic := curriculum.Topic{ID: "t", Title: "T", Type: curriculum.TopicTheory}

	empty := newTestService(llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("  \n")}), "en")
	text, err := empty.Explain(context.Background(), topic, "M")
	if err != nil || text != i18n.ExplainEmpty {
		t.Fatalf("empty reply: text=%q err=%v", text, err)
	}

	failing := newTestService(llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("dns")}}), "zh")
	text, err = failing.Explain(context.Background(), topic, "M")
	if err == nil {
		t.Fatal("expected error")
	}
	if text != "生成内容时出错，请检查网络。" {
		t.Fatalf("fallback = %q", text)
	}
}

func TestGenerateQuiz_TruncatesToThree(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: quizJSON(5)})
	svc := newTestService(mock, "en")

	qs, err := svc.GenerateQuiz(context.Background(), "Amazon S3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 3 {
		t.Fatalf("got %d questions, want 3", len(qs))
	}
	if qs[0].CorrectIndex != 1 || len(qs[0].Options) != 4 {
		t.Fatalf("unexpected question %+v", qs[0])
	}

	req := mock.Calls[0]
	if req.Schema != QuizSchema {
		t.Fatal("expected quiz schema on request")
	}
	if req.MaxTokens != 1536 {
		t.Fatalf("max tokens = %d", req.MaxTokens)
	}
	if !strings.Contains(req.Messages[0].Content, "Generate 3 tough scenario/troubleshooting questions about Amazon S3") {
		t.Fatalf("unexpected prompt: %s", req.Messages[0].Content)
	}
}

func TestGenerateQuiz_Malformed(t *testing.T) {
	tests := []struct {
		name string
		resp llm.MockResponse
	}{
		{"invalid against schema", llm.MockResponse{Err: &llm.ErrInvalidResponse{Err: errors.New("missing correctIndex")}}},
		{"not json", llm.MockResponse{Content: json.RawMessage("sorry, no quiz today")}},
		{"empty list", llm.MockResponse{Content: json.RawMessage(`{"questions":[]}`)}},
		{"bad index dropped", llm.MockResponse{Content: json.RawMessage(`{"questions":[{"question":"q","options":["a","b"],"correctIndex":7,"explanation":""}]}`)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(llm.NewMockProvider(tt.resp), "en")
			qs, err := svc.GenerateQuiz(context.Background(), "VPC")
			if err != nil {
				t.Fatalf("malformed output must not be an error: %v", err)
			}
			if qs == nil || len(qs) != 0 {
				t.Fatalf("expected empty non-nil slice, got %#v", qs)
			}
		})
	}
}

func TestGenerateQuiz_TransportError(t *testing.T) {
	svc := newTestService(llm.NewMockProvider(), "en")
	qs, err := svc.GenerateQuiz(context.Background(), "VPC")
	if err == nil {
		t.Fatal("expected error")
	}
	if len(qs) != 0 {
		t.Fatalf("expected no questions, got %d", len(qs))
	}
}

func TestChat_ReplaysHistory(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("Versioning keeps old copies.")})
	svc := newTestService(mock, "en")

	history := []chat.Turn{
		{Role: chat.RoleUser, Text: "What is a bucket?"},
		{Role: chat.RoleTutor, Text: "A container for objects."},
	}
	reply, err := svc.Chat(context.Background(), "And versioning?", history)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != "Versioning keeps old copies." {
		t.Fatalf("reply = %q", reply)
	}

	msgs := mock.Calls[0].Messages
	if len(msgs) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(msgs))
	}
	if msgs[1].Role != llm.RoleAssistant || msgs[2].Role != llm.RoleUser || msgs[2].Content != "And versioning?" {
		t.Fatalf("unexpected messages %+v", msgs)
	}
}

func TestChat_Fallbacks(t *testing.T) {
	empty := newTestService(llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("")}), "en")
	reply, err := empty.Chat(context.Background(), "hi", nil)
	if err != nil || reply != i18n.ChatEmpty {
		t.Fatalf("reply=%q err=%v", reply, err)
	}

	failing := newTestService(llm.NewMockProvider(), "en")
	reply, err = failing.Chat(context.Background(), "hi", nil)
	if err == nil || reply != i18n.ChatUnavailable {
		t.Fatalf("reply=%q err=%v", reply, err)
	}
}

func TestPurposes(t *testing.T) {
	repo := &purposeRecorder{}
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("x")},
		llm.MockResponse{Content: quizJSON(3)},
		llm.MockResponse{Content: json.RawMessage("y")},
	)
	svc := NewService(llm.WithLogging(mock, repo), DefaultConfig(), i18n.New("en"))

	ctx := context.Background()
	svc.Explain(ctx, curriculum.Topic{ID: "t", Title: "T"}, "M")
	svc.GenerateQuiz(ctx, "M")
	svc.Chat(ctx, "hi", nil)

	want := []string{"explain", "quiz", "chat"}
	if strings.Join(repo.purposes, ",") != strings.Join(want, ",") {
		t.Fatalf("purposes = %v, want %v", repo.purposes, want)
	}
}
