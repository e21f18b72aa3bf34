package llm

import "testing"

func clearProviderEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PATHFINDER_LLM_PROVIDER",
		"PATHFINDER_ANTHROPIC_API_KEY", "PATHFINDER_ANTHROPIC_MODEL",
		"PATHFINDER_OPENAI_API_KEY", "PATHFINDER_OPENAI_MODEL", "PATHFINDER_OPENAI_BASE_URL",
		"PATHFINDER_GEMINI_API_KEY", "PATHFINDER_GEMINI_MODEL",
		"PATHFINDER_OPENROUTER_API_KEY", "PATHFINDER_OPENROUTER_MODEL",
		"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	clearProviderEnv(t)

	cfg := ConfigFromEnv()
	if cfg.Provider != "gemini" {
		t.Errorf("default provider = %q, want gemini", cfg.Provider)
	}
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("default openai model = %q", cfg.OpenAI.Model)
	}
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("PATHFINDER_LLM_PROVIDER", "anthropic")
	t.Setenv("PATHFINDER_ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("PATHFINDER_ANTHROPIC_MODEL", "claude-sonnet-4-5")

	cfg := ConfigFromEnv()
	if cfg.Provider != "anthropic" {
		t.Errorf("provider = %q", cfg.Provider)
	}
	if cfg.Anthropic.APIKey != "sk-test" {
		t.Errorf("api key = %q", cfg.Anthropic.APIKey)
	}
	if cfg.Anthropic.Model != "claude-sonnet-4-5" {
		t.Errorf("model = %q", cfg.Anthropic.Model)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestConfig_ValidateMissingKey(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("PATHFINDER_LLM_PROVIDER", "openai")

	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err == nil {
		t.Error("Validate passed without an API key")
	}
}

func TestConfig_ValidateUnknownProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Provider = "telepathy"
	if err := cfg.Validate(); err == nil {
		t.Error("Validate passed for unknown provider")
	}
}

func TestDiscoverConfig_PriorityOrder(t *testing.T) {
	clearProviderEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("ANTHROPIC_API_KEY", "sk-anthropic")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("DiscoverConfig found nothing")
	}
	// Gemini is absent, so OpenAI wins over Anthropic.
	if cfg.Provider != "openai" {
		t.Errorf("provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-openai" {
		t.Errorf("api key = %q", cfg.OpenAI.APIKey)
	}
}

func TestDiscoverConfig_NothingSet(t *testing.T) {
	clearProviderEnv(t)

	if _, ok := DiscoverConfig(); ok {
		t.Error("DiscoverConfig reported a provider with no keys set")
	}
}

func TestLookupCost(t *testing.T) {
	tests := []struct {
		model  string
		found  bool
		wantIn float64
	}{
		{"claude-sonnet-4-5-20250929", true, 3.00},
		{"gpt-4o-mini-2024-07-18", true, 0.15},
		{"gpt-4o-2024-08-06", true, 2.50},
		{"gemini-2.0-flash", true, 0.10},
		{"mystery-model", false, 0},
	}

	for _, tt := range tests {
		cost := LookupCost(tt.model)
		if (cost != nil) != tt.found {
			t.Errorf("LookupCost(%q) found = %v, want %v", tt.model, cost != nil, tt.found)
			continue
		}
		if cost != nil && cost.InputPerMTok != tt.wantIn {
			t.Errorf("LookupCost(%q).InputPerMTok = %v, want %v", tt.model, cost.InputPerMTok, tt.wantIn)
		}
	}
}

func TestModelCost_Cost(t *testing.T) {
	c := ModelCost{InputPerMTok: 3.0, OutputPerMTok: 15.0}
	got := c.Cost(1_000_000, 2_000_000)
	want := 3.0 + 30.0
	if got != want {
		t.Errorf("Cost = %v, want %v", got, want)
	}
}
