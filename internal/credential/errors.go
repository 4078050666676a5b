package credential

import "errors"

var (
	ErrNotLoggedIn = errors.New("not logged in to GitHub")
	ErrEmptyToken  = errors.New("token is empty")
)
