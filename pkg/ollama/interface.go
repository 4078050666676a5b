package ollama

import "context"

// IOllama talks to a local Ollama server.
type IOllama interface {
	// Chat runs a non-streaming chat completion through the OpenAI-compatible endpoint.
	Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error)

	// Generate runs a single prompt completion through /api/generate.
	Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)

	// Ping reports whether the server answers within the probe timeout.
	Ping(ctx context.Context) error

	// ListModels returns the names of the locally installed models.
	ListModels(ctx context.Context) ([]string, error)

	Model() string
	BaseURL() string
}

// New creates a new Ollama client.
func New(cfg Config) (IOllama, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClientImpl(cfg)
}
