package llmprovider

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github-agent/config"
	"github-agent/pkg/ollama"
	"github-agent/pkg/openaicompat"
)

// InitializeProviders creates Provider instances from config.LLMConfig
// Returns providers sorted by priority (ascending) with disabled providers filtered out
// Skips providers that fail to initialize instead of failing the entire service
func InitializeProviders(cfg *config.LLMConfig) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	if len(cfg.Providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	if len(enabledProviders) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.Slice(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	probeTimeout := parseDuration(cfg.ProbeTimeout, ollama.DefaultProbeTimeout)

	var providers []Provider
	var initErrors []string

	for _, p := range enabledProviders {
		provider, err := createProvider(p, probeTimeout)
		if err != nil {
			errMsg := fmt.Sprintf("failed to initialize provider %s (priority %d): %v", p.Name, p.Priority, err)
			initErrors = append(initErrors, errMsg)
			fmt.Printf("Warning: %s\n", errMsg)
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}

	if len(initErrors) > 0 {
		fmt.Printf("Warning: %d provider(s) failed to initialize but continuing with %d working provider(s)\n",
			len(initErrors), len(providers))
	}

	return providers, nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig, probeTimeout time.Duration) (Provider, error) {
	timeout := parseDuration(cfg.Timeout, ollama.DefaultTimeout)

	switch strings.ToLower(cfg.Name) {
	case ProviderOllama:
		client, err := ollama.New(ollama.Config{
			BaseURL:      cfg.BaseURL,
			Model:        cfg.Model,
			Timeout:      timeout,
			ProbeTimeout: probeTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create ollama client: %w", err)
		}
		return NewOllamaAdapter(client), nil

	case ProviderOpenAI, "openai-compatible", "llamacpp", "lmstudio":
		if cfg.Model == "" {
			return nil, fmt.Errorf("provider %s: model is required", cfg.Name)
		}
		client, err := openaicompat.New(openaicompat.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    cfg.BaseURL,
			HTTPClient: &http.Client{Timeout: timeout},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create openai-compatible client: %w", err)
		}
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = openaicompat.DefaultBaseURL
		}
		return NewOpenAIAdapter(client, strings.TrimRight(baseURL, "/"), probeTimeout), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}

func parseDuration(s string, def time.Duration) time.Duration {
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
