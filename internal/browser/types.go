package browser

import "github-agent/pkg/github"

// SortOrder picks the listing order.
type SortOrder string

const (
	// SortUpdated keeps the API order (most recently updated first).
	SortUpdated SortOrder = "updated"
	SortName    SortOrder = "name"
	SortStars   SortOrder = "stars"
)

// Valid reports whether s is a known order. Empty means SortUpdated.
func (s SortOrder) Valid() bool {
	switch s {
	case "", SortUpdated, SortName, SortStars:
		return true
	}
	return false
}

// --- UseCase Inputs ---

type ListReposInput struct {
	Filter string
	Sort   SortOrder
}

// --- UseCase Outputs ---

type ListReposOutput struct {
	Repos []github.Repository
	Total int
}
