package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github-agent/internal/browser"
	"github-agent/internal/credential"
	"github-agent/pkg/github"
	pkgLog "github-agent/pkg/log"
)

type fakeTokens string

func (f fakeTokens) Token() (string, error) {
	if f == "" {
		return "", credential.ErrNotLoggedIn
	}
	return string(f), nil
}

type fakeLister struct {
	repos []github.Repository
	err   error
}

func (f fakeLister) ListRepos(ctx context.Context, username, org string) ([]github.Repository, error) {
	return append([]github.Repository(nil), f.repos...), f.err
}

func sample() []github.Repository {
	return []github.Repository{
		{Name: "zeta", Stars: 5},
		{Name: "Alpha-cli", Stars: 1},
		{Name: "beta", Stars: 42},
		{Name: "alphabet", Stars: 7},
	}
}

func names(repos []github.Repository) []string {
	out := make([]string, 0, len(repos))
	for _, r := range repos {
		out = append(out, r.Name)
	}
	return out
}

func TestList(t *testing.T) {
	tests := []struct {
		name  string
		input browser.ListReposInput
		want  []string
	}{
		{"api order", browser.ListReposInput{}, []string{"zeta", "Alpha-cli", "beta", "alphabet"}},
		{"by name", browser.ListReposInput{Sort: browser.SortName}, []string{"Alpha-cli", "alphabet", "beta", "zeta"}},
		{"by stars", browser.ListReposInput{Sort: browser.SortStars}, []string{"beta", "alphabet", "zeta", "Alpha-cli"}},
		{"filter", browser.ListReposInput{Filter: "ALPHA"}, []string{"Alpha-cli", "alphabet"}},
		{"filter and stars", browser.ListReposInput{Filter: "alpha", Sort: browser.SortStars}, []string{"alphabet", "Alpha-cli"}},
		{"no match", browser.ListReposInput{Filter: "nothing"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotToken string
			uc := New(fakeTokens("tok"), func(token string) RepoLister {
				gotToken = token
				return fakeLister{repos: sample()}
			}, pkgLog.NewNop())

			out, err := uc.List(context.Background(), tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(out.Repos))
			assert.Equal(t, len(tt.want), out.Total)
			assert.Equal(t, "tok", gotToken)
		})
	}
}

func TestList_Errors(t *testing.T) {
	lister := func(string) RepoLister { return fakeLister{err: errors.New("HTTP 500: boom")} }

	_, err := New(fakeTokens("tok"), lister, pkgLog.NewNop()).List(context.Background(), browser.ListReposInput{Sort: "size"})
	assert.ErrorIs(t, err, browser.ErrInvalidSort)

	_, err = New(fakeTokens(""), lister, pkgLog.NewNop()).List(context.Background(), browser.ListReposInput{})
	assert.ErrorIs(t, err, credential.ErrNotLoggedIn)

	_, err = New(fakeTokens("tok"), lister, pkgLog.NewNop()).List(context.Background(), browser.ListReposInput{})
	assert.ErrorIs(t, err, browser.ErrRemote)
	assert.Contains(t, err.Error(), "boom")
}
