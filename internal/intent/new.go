package intent

import (
	"context"

	"github-agent/pkg/llmprovider"
	"github-agent/pkg/log"
)

// Model is the chat capability the classifier needs.
type Model interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Classifier turns free text into an Intent. It asks the model first and
// falls back to keyword matching on any model or parse failure.
type Classifier struct {
	llm    Model
	policy Policy
	l      log.Logger
}

// New creates a new Classifier. A nil llm makes every call use the keyword classifier.
func New(llm Model, policy Policy, l log.Logger) *Classifier {
	return &Classifier{
		llm:    llm,
		policy: policy,
		l:      l,
	}
}
