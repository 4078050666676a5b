package browser

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, input ListReposInput) (ListReposOutput, error)
}
