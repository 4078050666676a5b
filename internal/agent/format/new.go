package format

import (
	"context"

	"github-agent/pkg/llmprovider"
	"github-agent/pkg/log"
)

// Model is the completion capability the formatter needs.
type Model interface {
	Complete(ctx context.Context, req *llmprovider.CompletionRequest) (*llmprovider.Response, error)
}

// Config tunes the formatter.
type Config struct {
	// MaxChars caps the serialized data sent to the model. A non-positive
	// cap selects DefaultMaxChars; config.Load rejects one.
	MaxChars int
	Language string
}

// Formatter renders dispatch results as chat text.
type Formatter struct {
	llm      Model
	maxChars int
	language string
	l        log.Logger
}

// New creates a new Formatter. With a nil llm, data is returned as a JSON block.
func New(llm Model, cfg Config, l log.Logger) *Formatter {
	if cfg.MaxChars <= 0 {
		cfg.MaxChars = DefaultMaxChars
	}
	if cfg.Language == "" {
		cfg.Language = DefaultLanguage
	}
	return &Formatter{
		llm:      llm,
		maxChars: cfg.MaxChars,
		language: cfg.Language,
		l:        l,
	}
}
