package search

import (
	"context"
	"sync"
	"time"
)

// DefaultSessionTTL is how long a session's generation is remembered after
// its last search.
const DefaultSessionTTL = 10 * time.Minute

// pruneThreshold is the session count above which expired entries are dropped.
const pruneThreshold = 1024

type generation struct {
	gen     int64
	touched time.Time
}

// MemorySequencer is a process-local Sequencer.
type MemorySequencer struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]generation
}

// NewMemorySequencer constructs a MemorySequencer forgetting sessions idle for ttl.
func NewMemorySequencer(ttl time.Duration) *MemorySequencer {
	return &MemorySequencer{ttl: ttl, sessions: make(map[string]generation)}
}

// Begin returns the next generation for session.
func (m *MemorySequencer) Begin(_ context.Context, session string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	if len(m.sessions) > pruneThreshold {
		for s, g := range m.sessions {
			if now.Sub(g.touched) > m.ttl {
				delete(m.sessions, s)
			}
		}
	}

	g := m.sessions[session]
	g.gen++
	g.touched = now
	m.sessions[session] = g
	return g.gen, nil
}

// Current reports whether gen is still the latest generation of session.
func (m *MemorySequencer) Current(_ context.Context, session string, gen int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, ok := m.sessions[session]
	if !ok {
		return true, nil
	}
	return g.gen == gen, nil
}
