package browser

import "errors"

var (
	ErrInvalidSort = errors.New("sort must be one of updated, name, stars")
	ErrRemote      = errors.New("GitHub request failed")
)
