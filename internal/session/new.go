package session

import (
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Store keeps chat transcripts in memory. Idle sessions expire after the TTL
// and the least recently used ones are evicted past MaxSessions.
type Store struct {
	mu         sync.Mutex
	cache      *expirable.LRU[string, *transcript]
	maxHistory int
}

func New(cfg Config) *Store {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = DefaultMaxSessions
	}
	if cfg.MaxHistory <= 0 {
		cfg.MaxHistory = DefaultMaxHistory
	}
	return &Store{
		cache:      expirable.NewLRU[string, *transcript](cfg.MaxSessions, nil, cfg.TTL),
		maxHistory: cfg.MaxHistory,
	}
}
