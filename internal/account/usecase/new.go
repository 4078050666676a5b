package usecase

import (
	"context"

	"github-agent/internal/credential"
	"github-agent/pkg/github"
	pkgLog "github-agent/pkg/log"
)

// Profiles reads the authenticated GitHub profile.
type Profiles interface {
	GetUser(ctx context.Context, username string) (*github.User, error)
}

// ProfilesFactory builds a Profiles bound to a token.
type ProfilesFactory func(token string) Profiles

// CredentialStore persists the single login.
type CredentialStore interface {
	Get() credential.Record
	Save(ctx context.Context, token string, user *credential.User) error
	Clear(ctx context.Context) error
}

// implUseCase is the private implementation of account.UseCase.
type implUseCase struct {
	store    CredentialStore
	profiles ProfilesFactory
	l        pkgLog.Logger
}

// New creates a new account UseCase implementation.
func New(store CredentialStore, profiles ProfilesFactory, l pkgLog.Logger) *implUseCase {
	return &implUseCase{
		store:    store,
		profiles: profiles,
		l:        l,
	}
}
