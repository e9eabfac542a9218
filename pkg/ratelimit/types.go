package ratelimit

import (
	"context"
	"time"
)

// Result is the outcome of a single limiter check.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// RetryAfter is zero for allowed requests.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed {
		return 0
	}
	return time.Until(r.ResetAt)
}

// Limiter decides whether a request identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (*Result, error)
	Reset(ctx context.Context, key string) error
}

// Store keeps request timestamps per key.
type Store interface {
	// RecordIfAllowed records now for key when fewer than limit timestamps fall
	// inside the window ending at now. It returns whether the timestamp was
	// recorded and the count inside the window afterwards.
	RecordIfAllowed(ctx context.Context, key string, now time.Time, window time.Duration, limit int) (bool, int64, error)

	// Oldest returns the earliest timestamp still inside the window, or the zero time.
	Oldest(ctx context.Context, key string, now time.Time, window time.Duration) (time.Time, error)

	Delete(ctx context.Context, key string) error
}
