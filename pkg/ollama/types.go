package ollama

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github-agent/pkg/openaicompat"
)

// Config holds client configuration.
type Config struct {
	BaseURL      string
	Model        string
	Timeout      time.Duration
	ProbeTimeout time.Duration
	HTTPClient   *http.Client
}

// Validate fills defaults.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("ollama: invalid base URL %q", c.BaseURL)
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.ProbeTimeout <= 0 {
		c.ProbeTimeout = DefaultProbeTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	return nil
}

type clientImpl struct {
	baseURL      string
	model        string
	probeTimeout time.Duration
	httpClient   *http.Client
	chat         openaicompat.IClient
}

// Message is one chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is a chat completion request.
type ChatRequest struct {
	Messages    []Message
	Temperature float64
}

// ChatResponse is a chat completion response.
type ChatResponse struct {
	Content      string
	Model        string
	InputTokens  int
	OutputTokens int
}

// GenerateRequest is a prompt completion request.
type GenerateRequest struct {
	Prompt string
	System string
}

// GenerateResponse is a prompt completion response.
type GenerateResponse struct {
	Response        string `json:"response"`
	Model           string `json:"model"`
	Done            bool   `json:"done"`
	PromptEvalCount int    `json:"prompt_eval_count"`
	EvalCount       int    `json:"eval_count"`
}

type generateWireRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	System string `json:"system,omitempty"`
	Stream bool   `json:"stream"`
}

type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}
