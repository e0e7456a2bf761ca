package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/abhisek/cloudquest/internal/store"
)

// LoggingProvider records every call in the event log so the llm CLI
// commands can show what the tutor asked and what it cost.
type LoggingProvider struct {
	inner Provider
	repo  store.EventRepo
}

// WithLogging wraps p so each call is appended to repo.
func WithLogging(p Provider, repo store.EventRepo) Provider {
	return &LoggingProvider{inner: p, repo: repo}
}

func (l *LoggingProvider) Name() string    { return l.inner.Name() }
func (l *LoggingProvider) ModelID() string { return l.inner.ModelID() }

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	purpose := PurposeFrom(ctx)
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)
	elapsed := time.Since(start)

	event := store.LLMRequestEventData{
		Provider:    l.inner.Name(),
		Model:       l.inner.ModelID(),
		Purpose:     string(purpose),
		LatencyMs:   elapsed.Milliseconds(),
		Success:     err == nil,
		RequestBody: transcript(req),
	}
	if resp != nil {
		if resp.Model != "" {
			event.Model = resp.Model
		}
		event.InputTokens = resp.Usage.InputTokens
		event.OutputTokens = resp.Usage.OutputTokens
		event.ResponseBody = string(resp.Content)
	}

	attrs := []any{"provider", event.Provider, "model", event.Model, "purpose", purpose, "latency", elapsed}
	if err != nil {
		event.ErrorMessage = err.Error()
		slog.Warn("llm request failed", append(attrs, "error", err)...)
	} else {
		slog.Debug("llm request", append(attrs, "input_tokens", event.InputTokens, "output_tokens", event.OutputTokens)...)
	}

	// The learner's call goes through even when the log write fails.
	if logErr := l.repo.AppendLLMRequest(ctx, event); logErr != nil {
		slog.Warn("recording llm request", "error", logErr)
	}
	return resp, err
}

// transcript renders a request as labelled blocks, one per message.
func transcript(req Request) string {
	var b strings.Builder
	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}
	return b.String()
}
