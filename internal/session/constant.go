package session

import "time"

const (
	DefaultTTL         = 24 * time.Hour
	DefaultMaxSessions = 1000
	DefaultMaxHistory  = 200
)
