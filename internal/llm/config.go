package llm

import (
	"fmt"
	"os"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config selects a provider and carries the settings for every provider.
type Config struct {
	Provider string

	Anthropic  ProviderConfig
	OpenAI     ProviderConfig
	Gemini     ProviderConfig
	OpenRouter ProviderConfig

	Retry RetryConfig

	// Timeout bounds one request, retries included. Zero disables it.
	Timeout time.Duration
}

// ProviderConfig holds credentials and model choice for one provider.
type ProviderConfig struct {
	APIKey string
	// Model is a friendly alias (see the per-provider model tables) or a
	// literal model ID.
	Model string
	// BaseURL overrides the API endpoint. OpenAI-compatible providers only.
	BaseURL string
}

// RetryConfig configures backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns the defaults with no API keys set.
func DefaultConfig() Config {
	return Config{
		Provider:   ProviderAnthropic,
		Anthropic:  ProviderConfig{Model: "claude-haiku"},
		OpenAI:     ProviderConfig{Model: "gpt-4o-mini"},
		Gemini:     ProviderConfig{Model: "gemini-flash"},
		OpenRouter: ProviderConfig{Model: "google/gemini-2.0-flash-001", BaseURL: defaultOpenRouterBaseURL},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// discoveryOrder lists the vendor API key variables probed by Discover.
var discoveryOrder = []struct {
	env      string
	provider string
}{
	{"GEMINI_API_KEY", ProviderGemini},
	{"OPENAI_API_KEY", ProviderOpenAI},
	{"ANTHROPIC_API_KEY", ProviderAnthropic},
	{"OPENROUTER_API_KEY", ProviderOpenRouter},
}

// Discover fills in a provider from the vendors' standard API key
// variables when c has no usable key. It reports whether c is usable now.
func (c *Config) Discover() bool {
	if c.Validate() == nil {
		return true
	}
	for _, d := range discoveryOrder {
		key := os.Getenv(d.env)
		if key == "" {
			continue
		}
		c.Provider = d.provider
		c.provider(d.provider).APIKey = key
		return true
	}
	return false
}

// Validate checks that the selected provider has an API key.
func (c Config) Validate() error {
	switch c.Provider {
	case ProviderMock:
		return nil
	case ProviderAnthropic, ProviderOpenAI, ProviderGemini, ProviderOpenRouter:
		if c.provider(c.Provider).APIKey == "" {
			return fmt.Errorf("llm.%s.api_key is required for the %s provider", c.Provider, c.Provider)
		}
		return nil
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
}

func (c *Config) provider(name string) *ProviderConfig {
	switch name {
	case ProviderOpenAI:
		return &c.OpenAI
	case ProviderGemini:
		return &c.Gemini
	case ProviderOpenRouter:
		return &c.OpenRouter
	default:
		return &c.Anthropic
	}
}
