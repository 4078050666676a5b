package usecase

import (
	"context"
	"net/http"
	"strings"

	"github-agent/internal/account"
	"github-agent/internal/credential"
	"github-agent/pkg/github"
)

// Login validates token against GitHub and stores it with a profile snapshot.
func (uc *implUseCase) Login(ctx context.Context, input account.LoginInput) (account.LoginOutput, error) {
	token := strings.TrimSpace(input.Token)
	if token == "" {
		return account.LoginOutput{}, credential.ErrEmptyToken
	}

	u, err := uc.profiles(token).GetUser(ctx, "")
	if err != nil {
		uc.l.Warnf(ctx, "internal.account.usecase.Login: GetUser: %v", err)
		return account.LoginOutput{}, classify(err)
	}

	snap := snapshot(u)
	if err := uc.store.Save(ctx, token, &snap); err != nil {
		return account.LoginOutput{}, err
	}

	uc.l.Infof(ctx, "internal.account.usecase.Login: logged in as %s", snap.Login)
	return account.LoginOutput{User: snap}, nil
}

func (uc *implUseCase) Logout(ctx context.Context) error {
	return uc.store.Clear(ctx)
}

// Me re-checks the stored token. A token GitHub rejects is forgotten; when
// GitHub is unreachable the stored snapshot is returned unverified.
func (uc *implUseCase) Me(ctx context.Context) (account.MeOutput, error) {
	rec := uc.store.Get()
	if !rec.LoggedIn() {
		return account.MeOutput{}, credential.ErrNotLoggedIn
	}

	u, err := uc.profiles(rec.GitHubToken).GetUser(ctx, "")
	if err != nil {
		if github.StatusCode(err) == http.StatusUnauthorized {
			uc.l.Warnf(ctx, "internal.account.usecase.Me: stored token rejected, clearing")
			if cErr := uc.store.Clear(ctx); cErr != nil {
				return account.MeOutput{}, cErr
			}
			return account.MeOutput{}, account.ErrInvalidToken
		}
		uc.l.Warnf(ctx, "internal.account.usecase.Me: GetUser: %v", err)
		out := account.MeOutput{TokenSetAt: rec.TokenSetAt}
		if rec.GitHubUser != nil {
			out.User = *rec.GitHubUser
		}
		return out, nil
	}

	return account.MeOutput{
		User:       snapshot(u),
		TokenSetAt: rec.TokenSetAt,
		Verified:   true,
	}, nil
}

func (uc *implUseCase) TokenURL() string {
	return account.TokenURL
}

func classify(err error) error {
	switch github.StatusCode(err) {
	case http.StatusUnauthorized, http.StatusForbidden:
		return account.ErrInvalidToken
	default:
		return account.ErrGitHubDown
	}
}

func snapshot(u *github.User) credential.User {
	return credential.User{
		Login:     u.Login,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
		HTMLURL:   u.HTMLURL,
	}
}
