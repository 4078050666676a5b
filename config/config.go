package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Model providers
	LLM LLMConfig

	// GitHub agent specifics
	GitHub     GitHubConfig
	Agent      AgentConfig
	Credential CredentialConfig
	Session    SessionConfig
	RateLimit  RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	ProbeTimeout    string           `yaml:"probe_timeout"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

type GitHubConfig struct {
	APIURL  string
	Timeout time.Duration
	PerPage int
	// Token seeds the credential store when it is empty.
	Token string
}

// AgentConfig tunes the intent pipeline.
type AgentConfig struct {
	ConfidenceThreshold    float64
	FallbackConfidenceHigh float64
	FallbackConfidenceLow  float64
	FormatMaxChars         int
	ResponseLanguage       string
}

type CredentialConfig struct {
	Path string
}

type SessionConfig struct {
	TTL         time.Duration
	MaxSessions int
	MaxHistory  int
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/github-agent/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/github-agent/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.ProbeTimeout = viper.GetString("llm.probe_timeout")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  expandEnvVar(getStringFromMap(providerMap, "base_url")),
						Model:    expandEnvVar(getStringFromMap(providerMap, "model")),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// Without a providers section, fall back to a single local Ollama
	// described by the OLLAMA_HOST / OLLAMA_PORT / OLLAMA_MODEL variables.
	if len(cfg.LLM.Providers) == 0 {
		cfg.LLM.Providers = []ProviderConfig{{
			Name:     "ollama",
			Enabled:  true,
			Priority: 1,
			BaseURL:  ollamaBaseURL(viper.GetString("ollama_host"), viper.GetString("ollama_port")),
			Model:    viper.GetString("ollama_model"),
			Timeout:  "120s",
		}}
	}

	if err := validateLLMConfig(&cfg.LLM); err != nil {
		return nil, err
	}

	// GitHub
	cfg.GitHub.APIURL = viper.GetString("github.api_url")
	cfg.GitHub.Timeout = viper.GetDuration("github.timeout")
	cfg.GitHub.PerPage = viper.GetInt("github.per_page")
	cfg.GitHub.Token = viper.GetString("github_token")

	// Agent
	cfg.Agent.ConfidenceThreshold = viper.GetFloat64("agent.confidence_threshold")
	cfg.Agent.FallbackConfidenceHigh = viper.GetFloat64("agent.fallback_confidence_high")
	cfg.Agent.FallbackConfidenceLow = viper.GetFloat64("agent.fallback_confidence_low")
	cfg.Agent.FormatMaxChars = viper.GetInt("agent.format_max_chars")
	cfg.Agent.ResponseLanguage = viper.GetString("agent.response_language")

	if err := validateAgentConfig(&cfg.Agent); err != nil {
		return nil, err
	}

	// Credential store
	cfg.Credential.Path = expandHome(viper.GetString("credential.path"))

	// Sessions
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.MaxSessions = viper.GetInt("session.max_sessions")
	cfg.Session.MaxHistory = viper.GetInt("session.max_history")

	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.probe_timeout", "5s")
	viper.SetDefault("llm.max_total_timeout", "180s")
	viper.SetDefault("ollama_host", "localhost")
	viper.SetDefault("ollama_port", "11434")
	viper.SetDefault("ollama_model", "qwen2.5-coder:7b")

	viper.SetDefault("github.api_url", "https://api.github.com/")
	viper.SetDefault("github.timeout", "30s")
	viper.SetDefault("github.per_page", 30)

	viper.SetDefault("agent.confidence_threshold", 0.3)
	viper.SetDefault("agent.fallback_confidence_high", 0.7)
	viper.SetDefault("agent.fallback_confidence_low", 0.3)
	viper.SetDefault("agent.format_max_chars", 3000)
	viper.SetDefault("agent.response_language", "English")

	viper.SetDefault("credential.path", "~/.github_agent_config.yaml")

	viper.SetDefault("session.ttl", "24h")
	viper.SetDefault("session.max_sessions", 1000)
	viper.SetDefault("session.max_history", 200)

	viper.SetDefault("rate_limit.requests_per_min", 60)
}

// ollamaBaseURL builds a base URL from host and port. A host that already
// carries a scheme is used as-is.
func ollamaBaseURL(host, port string) string {
	if strings.HasPrefix(host, "http://") || strings.HasPrefix(host, "https://") {
		return strings.TrimRight(host, "/")
	}
	if port == "" {
		return "http://" + host
	}
	return "http://" + host + ":" + port
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return home + path[1:]
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}

			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// validateAgentConfig rejects thresholds outside [0, 1] and a non-positive format cap.
func validateAgentConfig(cfg *AgentConfig) error {
	thresholds := map[string]float64{
		"agent.confidence_threshold":     cfg.ConfidenceThreshold,
		"agent.fallback_confidence_high": cfg.FallbackConfidenceHigh,
		"agent.fallback_confidence_low":  cfg.FallbackConfidenceLow,
	}
	for key, v := range thresholds {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s: %v is outside [0, 1]", key, v)
		}
	}
	if cfg.FormatMaxChars <= 0 {
		return fmt.Errorf("agent.format_max_chars: must be positive")
	}
	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
