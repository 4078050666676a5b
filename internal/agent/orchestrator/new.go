package orchestrator

import (
	"context"

	"github-agent/internal/agent"
	"github-agent/internal/intent"
	pkgLog "github-agent/pkg/log"
)

// Classifier reads an intent from text without failing.
type Classifier interface {
	Classify(ctx context.Context, text string) intent.Intent
}

// Dispatcher runs one intent against a remote.
type Dispatcher interface {
	Dispatch(ctx context.Context, remote agent.Remote, in intent.Intent) agent.Result
}

// Formatter renders a dispatch result.
type Formatter interface {
	Format(ctx context.Context, action intent.Action, res agent.Result) string
}

// Orchestrator wires classify, gate, dispatch and format into one call.
// It holds no per-request state and is safe for concurrent use.
type Orchestrator struct {
	classifier Classifier
	dispatcher Dispatcher
	formatter  Formatter
	remotes    agent.RemoteFactory
	threshold  float64
	l          pkgLog.Logger
}

// New creates a new Orchestrator. An unset threshold falls back to
// DefaultConfidenceThreshold; an explicit zero accepts every known action.
func New(classifier Classifier, dispatcher Dispatcher, formatter Formatter, remotes agent.RemoteFactory, cfg Config, l pkgLog.Logger) *Orchestrator {
	threshold := DefaultConfidenceThreshold
	if cfg.ConfidenceThreshold != nil {
		threshold = *cfg.ConfidenceThreshold
	}
	return &Orchestrator{
		classifier: classifier,
		dispatcher: dispatcher,
		formatter:  formatter,
		remotes:    remotes,
		threshold:  threshold,
		l:          l,
	}
}
