package llm

import "fmt"

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenRouterProvider routes Chat Completions calls through OpenRouter.
// Models are addressed by their OpenRouter slug, e.g. "google/gemini-2.5-flash",
// without friendly-name mapping.
type OpenRouterProvider struct {
	*OpenAIProvider
}

// NewOpenRouterProvider creates a provider from cfg. The API key is required.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenRouterProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}
	return &OpenRouterProvider{newChatCompletionsProvider(cfg.APIKey, baseURL, cfg.Model)}, nil
}

func (p *OpenRouterProvider) Name() string { return "openrouter" }
