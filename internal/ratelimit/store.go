package ratelimit

import (
	"sync"
	"time"
)

// Result reports the state of one fixed window after an increment.
type Result struct {
	// Count is the number of requests admitted in the current window,
	// including this one.
	Count int
	// RetryAfter is the time remaining until the window resets.
	RetryAfter time.Duration
}

// Store counts requests per key within a fixed window. The interface exists
// so the in-memory map can be swapped for a shared store (e.g. a key-value
// cache) in multi-process deployments without touching the middleware.
type Store interface {
	Increment(key string, window time.Duration) Result
	Decrement(key string)
}

type entry struct {
	count int
	start time.Time
}

// MemoryStore keeps all windows in one process. Entries are reset in place
// when their window elapses; memory grows with distinct keys for the process
// lifetime.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*entry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*entry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Increment(key string, window time.Duration) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	e, ok := s.entries[key]
	if !ok || now.Sub(e.start) >= window {
		e = &entry{count: 0, start: now}
		s.entries[key] = e
	}
	e.count++

	return Result{
		Count:      e.count,
		RetryAfter: e.start.Add(window).Sub(now),
	}
}

// Decrement refunds one request from the current window, used by the login
// class so successful logins do not consume the quota.
func (s *MemoryStore) Decrement(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok && e.count > 0 {
		e.count--
	}
}
