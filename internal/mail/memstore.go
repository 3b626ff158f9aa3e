package mail

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is a process-local TimeStore: a key becomes sendable
// again once the period has passed since its last send. Restarting the
// process resets the clock, which is acceptable for throttling.
type MemoryStore struct {
	mu     sync.Mutex
	last   map[string]time.Time
	period time.Duration
}

var _ TimeStore = (*MemoryStore)(nil)

func NewMemoryStore(period time.Duration) *MemoryStore {
	return &MemoryStore{
		last:   make(map[string]time.Time),
		period: period,
	}
}

func (s *MemoryStore) Sendable(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	at, ok := s.last[key]
	if !ok {
		return true, nil
	}
	return time.Since(at) >= s.period, nil
}

func (s *MemoryStore) Sent(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last[key] = time.Now()
	return nil
}
