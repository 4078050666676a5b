package llmprovider

import (
	"context"
	"time"

	"github-agent/pkg/ollama"
	"github-agent/pkg/openaicompat"
)

const (
	ProviderOllama = "ollama"
	ProviderOpenAI = "openai"
)

// OllamaAdapter adapts pkg/ollama to llmprovider.Provider interface
type OllamaAdapter struct {
	client ollama.IOllama
}

// NewOllamaAdapter creates a new Ollama adapter
func NewOllamaAdapter(client ollama.IOllama) *OllamaAdapter {
	return &OllamaAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *OllamaAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.Chat(ctx, &ollama.ChatRequest{
		Messages:    convertToOllamaMessages(req),
		Temperature: req.Temperature,
	})
	if err != nil {
		return nil, normalizeError(err)
	}

	return &Response{
		Content:      resp.Content,
		ProviderName: ProviderOllama,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.InputTokens,
			OutputTokens: resp.OutputTokens,
			TotalTokens:  resp.InputTokens + resp.OutputTokens,
		},
	}, nil
}

// Complete implements Provider interface using /api/generate
func (a *OllamaAdapter) Complete(ctx context.Context, req *CompletionRequest) (*Response, error) {
	resp, err := a.client.Generate(ctx, &ollama.GenerateRequest{
		Prompt: req.Prompt,
		System: req.System,
	})
	if err != nil {
		return nil, normalizeError(err)
	}

	return &Response{
		Content:      resp.Response,
		ProviderName: ProviderOllama,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.PromptEvalCount,
			OutputTokens: resp.EvalCount,
			TotalTokens:  resp.PromptEvalCount + resp.EvalCount,
		},
	}, nil
}

func (a *OllamaAdapter) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *OllamaAdapter) ListModels(ctx context.Context) ([]string, error) {
	return a.client.ListModels(ctx)
}

// Name returns provider name
func (a *OllamaAdapter) Name() string {
	return ProviderOllama
}

// Model returns model name
func (a *OllamaAdapter) Model() string {
	return a.client.Model()
}

func (a *OllamaAdapter) Endpoint() string {
	return a.client.BaseURL()
}

// OpenAIAdapter adapts pkg/openaicompat to llmprovider.Provider interface
type OpenAIAdapter struct {
	client       openaicompat.IClient
	baseURL      string
	probeTimeout time.Duration
}

// NewOpenAIAdapter creates a new adapter for an OpenAI-compatible server
func NewOpenAIAdapter(client openaicompat.IClient, baseURL string, probeTimeout time.Duration) *OpenAIAdapter {
	return &OpenAIAdapter{client: client, baseURL: baseURL, probeTimeout: probeTimeout}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	msgs := convertToOllamaMessages(req)
	compat := make([]openaicompat.Message, 0, len(msgs))
	for _, m := range msgs {
		compat = append(compat, openaicompat.Message{Role: m.Role, Content: m.Content})
	}

	resp, err := a.client.ChatCompletion(ctx, &openaicompat.Request{
		Messages:    compat,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, normalizeError(err)
	}

	out := &Response{
		Content:      resp.Content,
		ProviderName: ProviderOpenAI,
		ModelName:    a.client.Model(),
		Usage:        &Usage{},
	}
	if resp.Usage != nil {
		out.Usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}
	return out, nil
}

// Complete maps a prompt completion onto a chat call.
func (a *OpenAIAdapter) Complete(ctx context.Context, req *CompletionRequest) (*Response, error) {
	return a.GenerateContent(ctx, &Request{
		SystemInstruction: req.System,
		Messages:          []Message{{Role: "user", Content: req.Prompt}},
	})
}

func (a *OpenAIAdapter) Ping(ctx context.Context) error {
	_, err := a.ListModels(ctx)
	return err
}

func (a *OpenAIAdapter) ListModels(ctx context.Context) ([]string, error) {
	if a.probeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.probeTimeout)
		defer cancel()
	}
	models, err := a.client.ListModels(ctx)
	return models, normalizeError(err)
}

func (a *OpenAIAdapter) Name() string {
	return ProviderOpenAI
}

func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}

func (a *OpenAIAdapter) Endpoint() string {
	return a.baseURL
}

func convertToOllamaMessages(req *Request) []ollama.Message {
	msgs := make([]ollama.Message, 0, len(req.Messages)+1)
	if req.SystemInstruction != "" {
		msgs = append(msgs, ollama.Message{Role: "system", Content: req.SystemInstruction})
	}
	for _, m := range req.Messages {
		msgs = append(msgs, ollama.Message{Role: m.Role, Content: m.Content})
	}
	return msgs
}
