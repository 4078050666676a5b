package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		os.Chdir(wd)
		viper.Reset()
	})
	viper.Reset()
	return dir
}

func TestLoad_DefaultsWithLegacyOllamaEnv(t *testing.T) {
	chdirTemp(t)
	t.Setenv("OLLAMA_HOST", "ollama.internal")
	t.Setenv("OLLAMA_PORT", "9999")
	t.Setenv("OLLAMA_MODEL", "llama3:8b")
	t.Setenv("GITHUB_TOKEN", "ghp_env")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cfg.LLM.Providers) != 1 {
		t.Fatalf("expected 1 provider, got %d", len(cfg.LLM.Providers))
	}
	p := cfg.LLM.Providers[0]
	if p.Name != "ollama" || p.BaseURL != "http://ollama.internal:9999" || p.Model != "llama3:8b" {
		t.Errorf("unexpected provider: %+v", p)
	}
	if cfg.GitHub.Token != "ghp_env" {
		t.Errorf("GitHub.Token = %q, want ghp_env", cfg.GitHub.Token)
	}
	if cfg.Agent.ConfidenceThreshold != 0.3 || cfg.Agent.FallbackConfidenceHigh != 0.7 {
		t.Errorf("unexpected agent defaults: %+v", cfg.Agent)
	}
	if cfg.Agent.FormatMaxChars != 3000 {
		t.Errorf("FormatMaxChars = %d, want 3000", cfg.Agent.FormatMaxChars)
	}
	if cfg.GitHub.Timeout != 30*time.Second {
		t.Errorf("GitHub.Timeout = %v, want 30s", cfg.GitHub.Timeout)
	}
}

func TestLoad_ProvidersFromFile(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("LOCAL_OPENAI_KEY", "sk-local")

	yaml := `
llm:
  fallback_enabled: true
  providers:
    - name: ollama
      enabled: true
      priority: 1
      base_url: http://localhost:11434
      model: qwen2.5-coder:7b
      timeout: 120s
    - name: openai
      enabled: true
      priority: 2
      base_url: http://localhost:1234/v1
      api_key: ${LOCAL_OPENAI_KEY}
      model: local-model
agent:
  confidence_threshold: 0.5
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.LLM.Providers) != 2 {
		t.Fatalf("expected 2 providers, got %d", len(cfg.LLM.Providers))
	}
	if cfg.LLM.Providers[1].APIKey != "sk-local" {
		t.Errorf("api_key not expanded: %q", cfg.LLM.Providers[1].APIKey)
	}
	if cfg.Agent.ConfidenceThreshold != 0.5 {
		t.Errorf("ConfidenceThreshold = %v, want 0.5", cfg.Agent.ConfidenceThreshold)
	}
}

func TestValidateLLMConfig_DuplicatePriority(t *testing.T) {
	err := validateLLMConfig(&LLMConfig{Providers: []ProviderConfig{
		{Name: "a", Enabled: true, Priority: 1},
		{Name: "b", Enabled: true, Priority: 1},
	}})
	if err == nil {
		t.Error("expected duplicate priority error")
	}
}

func TestValidateAgentConfig(t *testing.T) {
	valid := AgentConfig{ConfidenceThreshold: 0, FallbackConfidenceHigh: 0.7, FallbackConfidenceLow: 0.3, FormatMaxChars: 3000}
	if err := validateAgentConfig(&valid); err != nil {
		t.Errorf("validateAgentConfig() error = %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*AgentConfig)
	}{
		{"threshold above one", func(c *AgentConfig) { c.ConfidenceThreshold = 1.5 }},
		{"negative threshold", func(c *AgentConfig) { c.ConfidenceThreshold = -0.1 }},
		{"high confidence above one", func(c *AgentConfig) { c.FallbackConfidenceHigh = 2 }},
		{"zero format cap", func(c *AgentConfig) { c.FormatMaxChars = 0 }},
	}
	for _, tt := range tests {
		cfg := valid
		tt.mutate(&cfg)
		if err := validateAgentConfig(&cfg); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestOllamaBaseURL(t *testing.T) {
	tests := []struct {
		host, port, want string
	}{
		{"localhost", "11434", "http://localhost:11434"},
		{"http://gpu-box:11434/", "", "http://gpu-box:11434"},
		{"https://ollama.example.com", "11434", "https://ollama.example.com"},
	}
	for _, tt := range tests {
		if got := ollamaBaseURL(tt.host, tt.port); got != tt.want {
			t.Errorf("ollamaBaseURL(%q, %q) = %q, want %q", tt.host, tt.port, got, tt.want)
		}
	}
}
