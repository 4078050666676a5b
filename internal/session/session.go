package session

import "time"

// Append adds turns to the session's transcript, keeping only the newest MaxHistory.
// Turns without a timestamp are stamped with the current time.
func (s *Store) Append(id string, turns ...Turn) {
	if id == "" || len(turns) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.cache.Get(id)
	if !ok {
		t = &transcript{}
	}

	now := time.Now()
	for _, turn := range turns {
		if turn.Timestamp.IsZero() {
			turn.Timestamp = now
		}
		t.turns = append(t.turns, turn)
	}
	if over := len(t.turns) - s.maxHistory; over > 0 {
		t.turns = append([]Turn(nil), t.turns[over:]...)
	}

	// Re-adding refreshes the TTL.
	s.cache.Add(id, t)
}

// History returns a copy of the session's transcript, oldest first.
func (s *Store) History(id string) []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.cache.Get(id)
	if !ok {
		return []Turn{}
	}
	return append([]Turn(nil), t.turns...)
}

// Clear drops the session's transcript.
func (s *Store) Clear(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Remove(id)
}

// Len is the number of live sessions.
func (s *Store) Len() int {
	return s.cache.Len()
}
