// Package tutor is the AI tutor "Cloudy": topic explanations, module
// quizzes and free-form chat over an llm.Provider.
package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/abhisek/cloudquest/internal/chat"
	"github.com/abhisek/cloudquest/internal/curriculum"
	"github.com/abhisek/cloudquest/internal/i18n"
	"github.com/abhisek/cloudquest/internal/llm"
	"github.com/abhisek/cloudquest/internal/quiz"
)

// Localizer provides fallback texts and the answer language.
// *i18n.Printer implements it.
type Localizer interface {
	T(key string, args ...any) string
	LanguageName() string
}

// Service calls the model for the three tutoring features. It holds no
// conversation state; chat history is passed in on every call.
type Service struct {
	provider llm.Provider
	cfg      Config
	loc      Localizer
}

// NewService creates a tutor service.
func NewService(provider llm.Provider, cfg Config, loc Localizer) *Service {
	if cfg.QuizSize <= 0 {
		cfg.QuizSize = quiz.DefaultSize
	}
	return &Service{provider: provider, cfg: cfg, loc: loc}
}

// Explain writes a theory or lab explanation of topic. It always returns
// displayable text: on failure the text is a localized fallback and err
// carries the cause.
func (s *Service) Explain(ctx context.Context, topic curriculum.Topic, moduleTitle string) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeExplain)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      systemPrompt(s.loc.LanguageName()),
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildExplainMessage(topic, moduleTitle)}},
		MaxTokens:   s.cfg.ExplainMaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return s.loc.T(i18n.ExplainFailed), fmt.Errorf("explain %s: %w", topic.ID, err)
	}

	text := resp.Text()
	if text == "" {
		return s.loc.T(i18n.ExplainEmpty), nil
	}
	return text, nil
}

type quizOutput struct {
	Questions []quiz.Question `json:"questions"`
}

// GenerateQuiz asks for scenario questions about a module. Malformed model
// output yields an empty slice and no error; a failed request yields an
// empty slice and the error.
func (s *Service) GenerateQuiz(ctx context.Context, moduleTitle string) ([]quiz.Question, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuiz)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      systemPrompt(s.loc.LanguageName()),
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildQuizMessage(moduleTitle, s.cfg.QuizSize)}},
		Schema:      QuizSchema,
		MaxTokens:   s.cfg.QuizMaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		var invalid *llm.ErrInvalidResponse
		if errors.As(err, &invalid) {
			slog.Warn("quiz response rejected", "module", moduleTitle, "error", err)
			return []quiz.Question{}, nil
		}
		return []quiz.Question{}, fmt.Errorf("generate quiz: %w", err)
	}

	var out quizOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		slog.Warn("quiz response unparseable", "module", moduleTitle, "error", err)
		return []quiz.Question{}, nil
	}

	qs := quiz.Sanitize(out.Questions)
	if len(qs) > s.cfg.QuizSize {
		qs = qs[:s.cfg.QuizSize]
	}
	return qs, nil
}

// Chat answers prompt given the prior turns of the conversation.
func (s *Service) Chat(ctx context.Context, prompt string, history []chat.Turn) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeChat)

	msgs := make([]llm.Message, 0, len(history)+1)
	for _, h := range history {
		role := llm.RoleUser
		if h.Role == chat.RoleTutor {
			role = llm.RoleAssistant
		}
		msgs = append(msgs, llm.Message{Role: role, Content: h.Text})
	}
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: prompt})

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      systemPrompt(s.loc.LanguageName()),
		Messages:    msgs,
		MaxTokens:   s.cfg.ChatMaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return s.loc.T(i18n.ChatUnavailable), fmt.Errorf("chat: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return s.loc.T(i18n.ChatEmpty), nil
	}
	return text, nil
}
