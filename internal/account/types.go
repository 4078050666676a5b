package account

import (
	"time"

	"github-agent/internal/credential"
)

// --- UseCase Inputs ---

type LoginInput struct {
	Token string
}

// --- UseCase Outputs ---

type LoginOutput struct {
	User credential.User
}

type MeOutput struct {
	User       credential.User
	TokenSetAt time.Time
	// Verified is false when GitHub could not be reached and User is the stored snapshot.
	Verified bool
}
