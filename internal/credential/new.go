package credential

import (
	"context"
	"sync"

	pkgLog "github-agent/pkg/log"
)

// Store keeps the single GitHub credential of this process in a YAML file.
// Reads share a lock; Save and Clear are exclusive.
type Store struct {
	mu     sync.RWMutex
	path   string
	record Record
	l      pkgLog.Logger
}

// New opens the store at path. A missing or unreadable file yields an empty store.
func New(path string, l pkgLog.Logger) *Store {
	s := &Store{path: path, l: l}
	rec, err := readFile(path)
	if err != nil {
		l.Warnf(context.Background(), "%s: %v", LogPrefixLoad, err)
	}
	s.record = rec
	return s
}
