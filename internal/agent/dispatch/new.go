package dispatch

import "github-agent/pkg/log"

// Dispatcher executes one accepted intent against a Remote.
type Dispatcher struct {
	l log.Logger
}

// New creates a new Dispatcher.
func New(l log.Logger) *Dispatcher {
	return &Dispatcher{l: l}
}
