package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github-agent/internal/account"
	"github-agent/internal/credential"
	"github-agent/pkg/github"
	pkgLog "github-agent/pkg/log"
)

type fakeProfiles struct {
	user *github.User
	err  error
}

func (f fakeProfiles) GetUser(ctx context.Context, username string) (*github.User, error) {
	return f.user, f.err
}

func newTestUseCase(t *testing.T, byToken map[string]fakeProfiles) (*implUseCase, *credential.Store, *[]string) {
	t.Helper()
	store := credential.New(filepath.Join(t.TempDir(), "cred.yaml"), pkgLog.NewNop())
	var seen []string
	factory := func(token string) Profiles {
		seen = append(seen, token)
		return byToken[token]
	}
	return New(store, factory, pkgLog.NewNop()), store, &seen
}

func TestLogin(t *testing.T) {
	uc, store, seen := newTestUseCase(t, map[string]fakeProfiles{
		"good": {user: &github.User{Login: "octocat", Name: "Octo"}},
	})

	out, err := uc.Login(context.Background(), account.LoginInput{Token: " good "})
	require.NoError(t, err)
	assert.Equal(t, "octocat", out.User.Login)
	assert.Equal(t, []string{"good"}, *seen)

	rec := store.Get()
	assert.Equal(t, "good", rec.GitHubToken)
	require.NotNil(t, rec.GitHubUser)
	assert.Equal(t, "Octo", rec.GitHubUser.Name)
}

func TestLogin_Rejected(t *testing.T) {
	uc, store, _ := newTestUseCase(t, map[string]fakeProfiles{
		"bad":  {err: &github.APIError{StatusCode: 401, Body: "Bad credentials"}},
		"down": {err: errors.New("dial tcp: connection refused")},
	})

	_, err := uc.Login(context.Background(), account.LoginInput{Token: "bad"})
	assert.ErrorIs(t, err, account.ErrInvalidToken)

	_, err = uc.Login(context.Background(), account.LoginInput{Token: "down"})
	assert.ErrorIs(t, err, account.ErrGitHubDown)

	_, err = uc.Login(context.Background(), account.LoginInput{Token: ""})
	assert.ErrorIs(t, err, credential.ErrEmptyToken)

	assert.False(t, store.Get().LoggedIn())
}

func TestLogout(t *testing.T) {
	uc, store, _ := newTestUseCase(t, nil)
	require.NoError(t, store.Save(context.Background(), "tok", nil))

	require.NoError(t, uc.Logout(context.Background()))
	assert.False(t, store.Get().LoggedIn())
}

func TestMe(t *testing.T) {
	ctx := context.Background()

	t.Run("not logged in", func(t *testing.T) {
		uc, _, _ := newTestUseCase(t, nil)
		_, err := uc.Me(ctx)
		assert.ErrorIs(t, err, credential.ErrNotLoggedIn)
	})

	t.Run("verified", func(t *testing.T) {
		uc, store, _ := newTestUseCase(t, map[string]fakeProfiles{
			"tok": {user: &github.User{Login: "fresh"}},
		})
		require.NoError(t, store.Save(ctx, "tok", &credential.User{Login: "old"}))

		out, err := uc.Me(ctx)
		require.NoError(t, err)
		assert.True(t, out.Verified)
		assert.Equal(t, "fresh", out.User.Login)
		assert.False(t, out.TokenSetAt.IsZero())
	})

	t.Run("revoked token is cleared", func(t *testing.T) {
		uc, store, _ := newTestUseCase(t, map[string]fakeProfiles{
			"tok": {err: &github.APIError{StatusCode: 401}},
		})
		require.NoError(t, store.Save(ctx, "tok", nil))

		_, err := uc.Me(ctx)
		assert.ErrorIs(t, err, account.ErrInvalidToken)
		assert.False(t, store.Get().LoggedIn())
	})

	t.Run("offline returns snapshot", func(t *testing.T) {
		uc, store, _ := newTestUseCase(t, map[string]fakeProfiles{
			"tok": {err: errors.New("timeout")},
		})
		require.NoError(t, store.Save(ctx, "tok", &credential.User{Login: "cached"}))

		out, err := uc.Me(ctx)
		require.NoError(t, err)
		assert.False(t, out.Verified)
		assert.Equal(t, "cached", out.User.Login)
		assert.True(t, store.Get().LoggedIn())
	})
}

func TestTokenURL(t *testing.T) {
	uc, _, _ := newTestUseCase(t, nil)
	assert.Contains(t, uc.TokenURL(), "scopes=repo,read:user,read:org")
}
