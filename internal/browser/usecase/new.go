package usecase

import (
	"context"

	"github-agent/pkg/github"
	pkgLog "github-agent/pkg/log"
)

// RepoLister lists repositories for the authenticated user.
type RepoLister interface {
	ListRepos(ctx context.Context, username, org string) ([]github.Repository, error)
}

// RepoListerFactory builds a RepoLister bound to a token.
type RepoListerFactory func(token string) RepoLister

// TokenSource hands out the stored GitHub token.
type TokenSource interface {
	Token() (string, error)
}

// implUseCase is the private implementation of browser.UseCase.
type implUseCase struct {
	tokens  TokenSource
	listers RepoListerFactory
	l       pkgLog.Logger
}

// New creates a new browser UseCase implementation.
func New(tokens TokenSource, listers RepoListerFactory, l pkgLog.Logger) *implUseCase {
	return &implUseCase{
		tokens:  tokens,
		listers: listers,
		l:       l,
	}
}
