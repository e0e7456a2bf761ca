package llm

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ErrNoCredentials is returned when no provider API key can be found.
var ErrNoCredentials = errors.New("no LLM API key found: set GEMINI_API_KEY (or API_KEY), OPENAI_API_KEY, ANTHROPIC_API_KEY or OPENROUTER_API_KEY")

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "gemini", "anthropic", "openai", "openrouter", "mock"
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds a single Generate call including retries.
	// Zero disables the bound.
	Timeout time.Duration
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional. Override for compatible APIs.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "google/gemini-2.5-flash"
	BaseURL string // Default: "https://openrouter.ai/api/v1"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults. A request is tried
// once; failures surface to the user, who can retry from the UI.
func DefaultConfig() Config {
	return Config{
		Provider: "gemini",
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		OpenRouter: OpenRouterConfig{
			Model: "google/gemini-2.5-flash",
		},
		Retry: RetryConfig{
			MaxAttempts: 1,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
	}
}

// backend ties a provider name to the environment variables that
// configure it and the Config fields they fill.
type backend struct {
	name string
	// discovery lists the conventional key variables, in priority order.
	discovery []string
	key       func(*Config) *string
	model     func(*Config) *string
}

// backends is ordered by discovery priority.
var backends = []backend{
	{
		name:      "gemini",
		discovery: []string{"GEMINI_API_KEY", "API_KEY"},
		key:       func(c *Config) *string { return &c.Gemini.APIKey },
		model:     func(c *Config) *string { return &c.Gemini.Model },
	},
	{
		name:      "openai",
		discovery: []string{"OPENAI_API_KEY"},
		key:       func(c *Config) *string { return &c.OpenAI.APIKey },
		model:     func(c *Config) *string { return &c.OpenAI.Model },
	},
	{
		name:      "anthropic",
		discovery: []string{"ANTHROPIC_API_KEY"},
		key:       func(c *Config) *string { return &c.Anthropic.APIKey },
		model:     func(c *Config) *string { return &c.Anthropic.Model },
	},
	{
		name:      "openrouter",
		discovery: []string{"OPENROUTER_API_KEY"},
		key:       func(c *Config) *string { return &c.OpenRouter.APIKey },
		model:     func(c *Config) *string { return &c.OpenRouter.Model },
	},
}

func (b backend) envPrefix() string {
	return "CLOUDQUEST_" + strings.ToUpper(b.name) + "_"
}

func lookupBackend(name string) (backend, bool) {
	for _, b := range backends {
		if b.name == name {
			return b, true
		}
	}
	return backend{}, false
}

func setFromEnv(dst *string, name string) {
	if v := os.Getenv(name); v != "" {
		*dst = v
	}
}

// ConfigFromEnv builds a Config from the CLOUDQUEST_* variables, e.g.
// CLOUDQUEST_LLM_PROVIDER, CLOUDQUEST_GEMINI_API_KEY and
// CLOUDQUEST_GEMINI_MODEL. Unset values keep their defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	setFromEnv(&cfg.Provider, "CLOUDQUEST_LLM_PROVIDER")
	for _, b := range backends {
		setFromEnv(b.key(&cfg), b.envPrefix()+"API_KEY")
		setFromEnv(b.model(&cfg), b.envPrefix()+"MODEL")
	}
	setFromEnv(&cfg.OpenAI.BaseURL, "CLOUDQUEST_OPENAI_BASE_URL")
	setFromEnv(&cfg.OpenRouter.BaseURL, "CLOUDQUEST_OPENROUTER_BASE_URL")
	applyTuningEnv(&cfg)
	return cfg
}

// DiscoverConfig picks the first backend whose conventional key variable is
// set: Gemini (GEMINI_API_KEY or API_KEY), then OpenAI, Anthropic and
// OpenRouter. It reports false when none is set.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()
	applyTuningEnv(&cfg)
	for _, b := range backends {
		for _, name := range b.discovery {
			if k := os.Getenv(name); k != "" {
				cfg.Provider = b.name
				*b.key(&cfg) = k
				return cfg, true
			}
		}
	}
	return Config{}, false
}

// LoadConfig resolves the configuration used at startup. An explicit
// CLOUDQUEST_LLM_PROVIDER wins; otherwise standard key variables are probed.
func LoadConfig() (Config, error) {
	if os.Getenv("CLOUDQUEST_LLM_PROVIDER") != "" {
		cfg := ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			return Config{}, err
		}
		return cfg, nil
	}
	cfg, ok := DiscoverConfig()
	if !ok {
		return Config{}, ErrNoCredentials
	}
	return cfg, nil
}

func applyTuningEnv(cfg *Config) {
	if v := os.Getenv("CLOUDQUEST_LLM_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d >= 0 {
			cfg.Timeout = d
		}
	}
	if v := os.Getenv("CLOUDQUEST_LLM_MAX_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Retry.MaxAttempts = n
		}
	}
}

// Validate checks that the selected provider has its API key.
func (c Config) Validate() error {
	if c.Provider == "mock" {
		return nil
	}
	b, ok := lookupBackend(c.Provider)
	if !ok {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if *b.key(&c) == "" {
		return fmt.Errorf("%sAPI_KEY is required for the %s provider", b.envPrefix(), b.name)
	}
	return nil
}
