package llm

import (
	"fmt"
	"os"
	"time"
)

// Config selects and configures the provider behind the recommendation
// call. Provider is one of "anthropic", "openai", "gemini", "openrouter",
// or "mock".
type Config struct {
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig

	// Timeout bounds a single request. The UI awaits the recommendation
	// call to completion, so this is also the longest the loading overlay
	// can stay up.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // override for OpenAI-compatible endpoints
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// DefaultConfig picks Gemini with the flash model, mirroring what the
// recommendation prompt was tuned on. The other providers get their
// cheapest capable model as default.
func DefaultConfig() Config {
	return Config{
		Provider:   "gemini",
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"},
		Timeout:    60 * time.Second,
	}
}

// ConfigFromEnv layers PATHFINDER_* environment variables over the defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	overrideFromEnv(&cfg.Provider, "PATHFINDER_LLM_PROVIDER")

	overrideFromEnv(&cfg.Anthropic.APIKey, "PATHFINDER_ANTHROPIC_API_KEY")
	overrideFromEnv(&cfg.Anthropic.Model, "PATHFINDER_ANTHROPIC_MODEL")

	overrideFromEnv(&cfg.OpenAI.APIKey, "PATHFINDER_OPENAI_API_KEY")
	overrideFromEnv(&cfg.OpenAI.Model, "PATHFINDER_OPENAI_MODEL")
	overrideFromEnv(&cfg.OpenAI.BaseURL, "PATHFINDER_OPENAI_BASE_URL")

	overrideFromEnv(&cfg.Gemini.APIKey, "PATHFINDER_GEMINI_API_KEY")
	overrideFromEnv(&cfg.Gemini.Model, "PATHFINDER_GEMINI_MODEL")

	overrideFromEnv(&cfg.OpenRouter.APIKey, "PATHFINDER_OPENROUTER_API_KEY")
	overrideFromEnv(&cfg.OpenRouter.Model, "PATHFINDER_OPENROUTER_MODEL")

	return cfg
}

func overrideFromEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

// DiscoverConfig falls back to the providers' conventional API key
// variables when no PATHFINDER_* configuration is present. Priority order matches how
// likely a key is to belong to this app's audience: Gemini first (the
// default provider), then OpenAI, Anthropic, OpenRouter.
func DiscoverConfig() (Config, bool) {
	type candidate struct {
		envKey   string
		provider string
		apiKey   *string
	}

	cfg := DefaultConfig()
	candidates := []candidate{
		{"GEMINI_API_KEY", "gemini", &cfg.Gemini.APIKey},
		{"OPENAI_API_KEY", "openai", &cfg.OpenAI.APIKey},
		{"ANTHROPIC_API_KEY", "anthropic", &cfg.Anthropic.APIKey},
		{"OPENROUTER_API_KEY", "openrouter", &cfg.OpenRouter.APIKey},
	}

	for _, c := range candidates {
		if k := os.Getenv(c.envKey); k != "" {
			cfg.Provider = c.provider
			*c.apiKey = k
			return cfg, true
		}
	}
	return Config{}, false
}

// Validate checks that the chosen provider has its API key.
func (c Config) Validate() error {
	required := map[string]string{
		"anthropic":  c.Anthropic.APIKey,
		"openai":     c.OpenAI.APIKey,
		"gemini":     c.Gemini.APIKey,
		"openrouter": c.OpenRouter.APIKey,
	}

	if c.Provider == "mock" {
		return nil
	}
	key, known := required[c.Provider]
	if !known {
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("PATHFINDER_%s_API_KEY is required for the %s provider",
			envName(c.Provider), c.Provider)
	}
	return nil
}

func envName(provider string) string {
	switch provider {
	case "anthropic":
		return "ANTHROPIC"
	case "openai":
		return "OPENAI"
	case "gemini":
		return "GEMINI"
	default:
		return "OPENROUTER"
	}
}

// resolveModel expands a short alias to its full model ID. Unrecognized
// names pass through so users can pin exact model versions.
func resolveModel(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
