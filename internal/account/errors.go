package account

import "errors"

var (
	ErrInvalidToken = errors.New("GitHub rejected the token")
	ErrGitHubDown   = errors.New("GitHub is unreachable")
)
