package diagnostics

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Run executes the integrated self-tests in order.
	Run(ctx context.Context) Report
	// Status reports model and GitHub connectivity.
	Status(ctx context.Context) StatusOutput
}
