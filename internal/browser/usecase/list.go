package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github-agent/internal/browser"
	"github-agent/pkg/github"
)

// List returns the authenticated user's repositories, filtered by a
// case-insensitive name substring and ordered by input.Sort.
func (uc *implUseCase) List(ctx context.Context, input browser.ListReposInput) (browser.ListReposOutput, error) {
	if !input.Sort.Valid() {
		return browser.ListReposOutput{}, browser.ErrInvalidSort
	}

	token, err := uc.tokens.Token()
	if err != nil {
		return browser.ListReposOutput{}, err
	}

	repos, err := uc.listers(token).ListRepos(ctx, "", "")
	if err != nil {
		uc.l.Errorf(ctx, "internal.browser.usecase.List: ListRepos: %v", err)
		return browser.ListReposOutput{}, fmt.Errorf("%w: %w", browser.ErrRemote, err)
	}

	repos = filterByName(repos, input.Filter)
	sortRepos(repos, input.Sort)

	return browser.ListReposOutput{
		Repos: repos,
		Total: len(repos),
	}, nil
}

func filterByName(repos []github.Repository, filter string) []github.Repository {
	filter = strings.ToLower(strings.TrimSpace(filter))
	if filter == "" {
		return repos
	}
	out := make([]github.Repository, 0, len(repos))
	for _, r := range repos {
		if strings.Contains(strings.ToLower(r.Name), filter) {
			out = append(out, r)
		}
	}
	return out
}

func sortRepos(repos []github.Repository, order browser.SortOrder) {
	switch order {
	case browser.SortName:
		sort.SliceStable(repos, func(i, j int) bool {
			return strings.ToLower(repos[i].Name) < strings.ToLower(repos[j].Name)
		})
	case browser.SortStars:
		sort.SliceStable(repos, func(i, j int) bool {
			return repos[i].Stars > repos[j].Stars
		})
	}
}
