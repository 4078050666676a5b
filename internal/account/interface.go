package account

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (MeOutput, error)
	TokenURL() string
}
