package projection

import "sync"

// Sequencer hands out monotonically increasing request tokens per user and
// remembers only the newest. A projection completing with an older token is
// stale: its result must be discarded, never merged or persisted. At most
// one in-flight scenario is meaningful per user; a newer submission
// supersedes the prior request's eventual result.
type Sequencer struct {
	mu     sync.Mutex
	latest map[string]uint64
}

// NewSequencer creates an empty sequencer.
func NewSequencer() *Sequencer {
	return &Sequencer{latest: make(map[string]uint64)}
}

// Begin registers a new request for the user and returns its token. Any
// previously issued token for the same user becomes stale immediately.
func (s *Sequencer) Begin(userID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest[userID]++
	return s.latest[userID]
}

// IsCurrent reports whether the token still identifies the user's newest
// request.
func (s *Sequencer) IsCurrent(userID string, token uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest[userID] == token
}
