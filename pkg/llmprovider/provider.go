package llmprovider

import "context"

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a chat request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Complete sends a single-prompt completion request
	Complete(ctx context.Context, req *CompletionRequest) (*Response, error)

	// Ping reports whether the provider is reachable
	Ping(ctx context.Context) error

	// ListModels returns the models the provider can serve
	ListModels(ctx context.Context) ([]string, error)

	// Name returns the provider name (e.g., "ollama", "openai")
	Name() string

	// Model returns the model being used
	Model() string

	// Endpoint returns the base URL the provider talks to
	Endpoint() string
}

// Request represents a normalized chat request
type Request struct {
	SystemInstruction string
	Messages          []Message
	Temperature       float64
	MaxTokens         int
}

// Message represents a conversation message
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

// CompletionRequest is a prompt with an optional system instruction.
type CompletionRequest struct {
	Prompt string
	System string
}

// Response represents a normalized LLM response
type Response struct {
	Content      string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
