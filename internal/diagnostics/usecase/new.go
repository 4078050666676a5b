package usecase

import (
	"context"

	"github-agent/internal/agent"
	"github-agent/internal/agent/orchestrator"
	"github-agent/internal/intent"
	"github-agent/pkg/github"
	"github-agent/pkg/llmprovider"
	pkgLog "github-agent/pkg/log"
)

// Models exposes the configured model providers.
type Models interface {
	Available(ctx context.Context) (llmprovider.Provider, error)
	Primary() llmprovider.Provider
}

// GitHub is the slice of the GitHub client the checks call.
type GitHub interface {
	GetUser(ctx context.Context, username string) (*github.User, error)
	ListRepos(ctx context.Context, username, org string) ([]github.Repository, error)
}

// GitHubFactory builds a GitHub bound to a token.
type GitHubFactory func(token string) GitHub

// TokenSource hands out the stored GitHub token.
type TokenSource interface {
	Token() (string, error)
}

// Classifier reads an intent from text.
type Classifier interface {
	Classify(ctx context.Context, text string) intent.Intent
}

// Pipeline runs one request end to end.
type Pipeline interface {
	Process(ctx context.Context, cred agent.Credential, text string) orchestrator.Envelope
}

// implUseCase is the private implementation of diagnostics.UseCase.
type implUseCase struct {
	models     Models
	tokens     TokenSource
	github     GitHubFactory
	classifier Classifier
	pipeline   Pipeline
	l          pkgLog.Logger
}

// New creates a new diagnostics UseCase implementation.
func New(models Models, tokens TokenSource, gh GitHubFactory, classifier Classifier, pipeline Pipeline, l pkgLog.Logger) *implUseCase {
	return &implUseCase{
		models:     models,
		tokens:     tokens,
		github:     gh,
		classifier: classifier,
		pipeline:   pipeline,
		l:          l,
	}
}
