package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is an in-process Store. A background loop drops idle keys.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[string][]time.Time

	cleanupInterval time.Duration
	maxWindow       time.Duration
	stop            chan struct{}
	stopOnce        sync.Once
}

type MemoryStoreOption func(*MemoryStore)

// WithCleanupInterval ignores non-positive values.
func WithCleanupInterval(interval time.Duration) MemoryStoreOption {
	return func(s *MemoryStore) {
		if interval > 0 {
			s.cleanupInterval = interval
		}
	}
}

func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	s := &MemoryStore{
		windows:         make(map[string][]time.Time),
		cleanupInterval: time.Minute,
		stop:            make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	go s.cleanupLoop()
	return s
}

func (s *MemoryStore) RecordIfAllowed(_ context.Context, key string, now time.Time, window time.Duration, limit int) (bool, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if window > s.maxWindow {
		s.maxWindow = window
	}

	ts := prune(s.windows[key], now.Add(-window))
	if len(ts) >= limit {
		s.windows[key] = ts
		return false, int64(len(ts)), nil
	}
	ts = append(ts, now)
	s.windows[key] = ts
	return true, int64(len(ts)), nil
}

func (s *MemoryStore) Oldest(_ context.Context, key string, now time.Time, window time.Duration) (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := prune(s.windows[key], now.Add(-window))
	if len(ts) == 0 {
		delete(s.windows, key)
		return time.Time{}, nil
	}
	s.windows[key] = ts
	return ts[0], nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.windows, key)
	s.mu.Unlock()
	return nil
}

// Close stops the cleanup loop. It is safe to call more than once.
func (s *MemoryStore) Close() error {
	s.stopOnce.Do(func() { close(s.stop) })
	return nil
}

func (s *MemoryStore) cleanupLoop() {
	ticker := time.NewTicker(s.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.cleanup(time.Now())
		case <-s.stop:
			return
		}
	}
}

func (s *MemoryStore) cleanup(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := now.Add(-s.maxWindow)
	for key, ts := range s.windows {
		if ts = prune(ts, cutoff); len(ts) == 0 {
			delete(s.windows, key)
		} else {
			s.windows[key] = ts
		}
	}
}

// prune drops timestamps at or before cutoff. Timestamps are kept in
// insertion order, so the survivors are a suffix.
func prune(ts []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(ts) && !ts[i].After(cutoff) {
		i++
	}
	return ts[i:]
}
