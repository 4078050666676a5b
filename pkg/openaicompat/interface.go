package openaicompat

import "context"

// IClient is a client for any server speaking the OpenAI chat-completions protocol
// (Ollama, llama.cpp server, LM Studio, vLLM).
// Implementations are safe for concurrent use.
type IClient interface {
	// ChatCompletion sends one non-streaming chat completion request.
	ChatCompletion(ctx context.Context, req *Request) (*Response, error)

	// ListModels returns the model ids the server advertises.
	ListModels(ctx context.Context) ([]string, error)

	// Model returns the model being used
	Model() string
}

// New creates a new client with the given configuration
func New(cfg Config) (IClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClientImpl(cfg), nil
}
