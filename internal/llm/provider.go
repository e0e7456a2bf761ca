package llm

import (
	"context"
	"encoding/json"
	"strings"
)

// Provider generates tutor content from a language model.
type Provider interface {
	// Generate sends the request and returns the model's reply. When the
	// request carries a Schema the reply Content is JSON that has already
	// been validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// Name is the backend family, e.g. "anthropic" or "openrouter".
	Name() string

	// ModelID is the model the provider was configured with.
	ModelID() string
}

// Request describes one model call.
type Request struct {
	System string

	// Messages is the conversation so far. Explanations and quizzes send a
	// single user message; chat replays the visible history.
	Messages []Message

	// Schema switches the provider to its native structured output mode.
	// Nil means free text.
	Schema *Schema

	MaxTokens   int
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema. The name doubles as the OpenAI schema name
// and the validation cache key, so it must be unique per definition.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// StopReason is the normalized reason generation ended.
type StopReason string

const (
	StopEnd       StopReason = "end"
	StopMaxTokens StopReason = "max_tokens"
)

// Response holds the model's output.
type Response struct {
	// Content is validated JSON for schema requests and raw text bytes
	// otherwise. Use Text for the latter.
	Content    json.RawMessage
	Usage      Usage
	Model      string
	StopReason StopReason
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Text returns the content of a schema-less response as trimmed text.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	return strings.TrimSpace(string(r.Content))
}

// generation is a backend reply before the shared checks run.
type generation struct {
	content json.RawMessage
	usage   Usage
	model   string
	stop    StopReason
}

// finish turns a backend reply into a Response. Structured replies are
// validated, and a structured reply cut off by the token limit is rejected
// because its JSON cannot be complete.
func (g generation) finish(req Request) (*Response, error) {
	if req.Schema != nil {
		if g.stop == StopMaxTokens {
			return nil, &ErrMaxTokensExceeded{Content: g.content}
		}
		if err := validateResponse(req.Schema, g.content); err != nil {
			return nil, err
		}
	}
	if g.usage.TotalTokens == 0 {
		g.usage.TotalTokens = g.usage.InputTokens + g.usage.OutputTokens
	}
	return &Response{
		Content:    g.content,
		Usage:      g.usage,
		Model:      g.model,
		StopReason: g.stop,
	}, nil
}

// resolveModel maps a friendly model name to a provider model ID. Unknown
// names pass through so full model IDs work too.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
