package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockProvider_PlaysScriptInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"a":1}`), Usage: Usage{InputTokens: 10, OutputTokens: 5}},
		MockText("second"),
		MockResponse{Err: &ErrRateLimit{}},
	)
	ctx := context.Background()

	first, err := mock.Generate(ctx, Request{System: "sys"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(first.Content))
	assert.Equal(t, 10, first.Usage.InputTokens)
	assert.Equal(t, StopEnd, first.StopReason)

	second, err := mock.Generate(ctx, Request{})
	require.NoError(t, err)
	assert.Equal(t, "second", second.Text())

	_, err = mock.Generate(ctx, Request{})
	var rl *ErrRateLimit
	assert.ErrorAs(t, err, &rl)

	_, err = mock.Generate(ctx, Request{})
	var unavail *ErrProviderUnavailable
	require.ErrorAs(t, err, &unavail, "an exhausted script fails as unavailable")
	assert.ErrorIs(t, err, errMockExhausted)

	assert.Equal(t, 4, mock.CallCount())
	assert.Equal(t, "sys", mock.Calls[0].System)
	assert.Equal(t, "mock", mock.Name())
	assert.Equal(t, "mock", mock.ModelID())

	mock.AddResponse(MockText("again"))
	resp, err := mock.Generate(ctx, Request{})
	require.NoError(t, err)
	assert.Equal(t, "again", resp.Text())
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, PurposeUnknown, PurposeFrom(ctx))
	assert.Equal(t, PurposeQuiz, PurposeFrom(WithPurpose(ctx, PurposeQuiz)))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errorClass
	}{
		{"cancelled", context.Canceled, classFatal},
		{"deadline", context.DeadlineExceeded, classFatal},
		{"truncated", &ErrMaxTokensExceeded{}, classFatal},
		{"invalid", &ErrInvalidResponse{Err: errors.New("bad")}, classMalformed},
		{"rate limit", &ErrRateLimit{}, classTransient},
		{"unavailable", &ErrProviderUnavailable{}, classTransient},
		{"anything else", errors.New("connection reset"), classTransient},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.err))
		})
	}
}

func TestFinish(t *testing.T) {
	g := generation{content: json.RawMessage("plain"), usage: Usage{InputTokens: 3, OutputTokens: 4}, model: "m", stop: StopEnd}
	resp, err := g.finish(Request{})
	require.NoError(t, err)
	assert.Equal(t, 7, resp.Usage.TotalTokens, "total is derived when the backend omits it")

	g.stop = StopMaxTokens
	resp, err = g.finish(Request{})
	require.NoError(t, err, "truncated text is still usable")
	assert.Equal(t, StopMaxTokens, resp.StopReason)

	_, err = g.finish(Request{Schema: testQuizSchema()})
	var maxTok *ErrMaxTokensExceeded
	assert.ErrorAs(t, err, &maxTok)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "anthropic without key",
			cfg:     Config{Provider: "anthropic"},
			wantErr: true,
		},
		{
			name:    "anthropic with key",
			cfg:     Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "openai without key",
			cfg:     Config{Provider: "openai"},
			wantErr: true,
		},
		{
			name:    "openai with key",
			cfg:     Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "gemini without key",
			cfg:     Config{Provider: "gemini"},
			wantErr: true,
		},
		{
			name:    "gemini with key",
			cfg:     Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "g-test"}},
			wantErr: false,
		},
		{
			name:    "openrouter without key",
			cfg:     Config{Provider: "openrouter"},
			wantErr: true,
		},
		{
			name:    "mock needs no key",
			cfg:     Config{Provider: "mock"},
			wantErr: false,
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: "unknown"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestResponseText(t *testing.T) {
	resp := &Response{Content: json.RawMessage("  Amazon S3 stores objects.\n")}
	if got := resp.Text(); got != "Amazon S3 stores objects." {
		t.Fatalf("Text() = %q", got)
	}
	var nilResp *Response
	if nilResp.Text() != "" {
		t.Fatal("expected empty text for nil response")
	}
}

func TestLookupCost(t *testing.T) {
	c := LookupCost("gemini-2.5-flash")
	if c == nil {
		t.Fatal("expected pricing for gemini-2.5-flash")
	}
	got := c.Cost(1_000_000, 1_000_000)
	if got < 2.79 || got > 2.81 {
		t.Fatalf("cost = %f, want 2.80", got)
	}
	if LookupCost("no-such-model") != nil {
		t.Fatal("expected nil for unknown model")
	}
}
