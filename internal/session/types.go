package session

import "time"

// Role marks who produced a turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Turn is one message of a chat transcript.
type Turn struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Config bounds the store.
type Config struct {
	TTL         time.Duration
	MaxSessions int
	MaxHistory  int
}

type transcript struct {
	turns []Turn
}
