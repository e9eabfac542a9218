package ratelimit

import (
	"context"
	"errors"
	"time"
)

// SlidingWindow allows at most limit requests per key in any window-long span.
type SlidingWindow struct {
	store  Store
	limit  int
	window time.Duration
	now    func() time.Time
}

func NewSlidingWindow(store Store, limit int, window time.Duration) (*SlidingWindow, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	if window <= 0 {
		return nil, ErrInvalidInterval
	}
	return &SlidingWindow{store: store, limit: limit, window: window, now: time.Now}, nil
}

func (sw *SlidingWindow) Allow(ctx context.Context, key string) (*Result, error) {
	if key == "" {
		return nil, ErrKeyRequired
	}

	now := sw.now()
	allowed, count, err := sw.store.RecordIfAllowed(ctx, key, now, sw.window, sw.limit)
	if err != nil {
		return nil, errors.Join(ErrStoreFailure, err)
	}

	res := &Result{
		Allowed:   allowed,
		Limit:     sw.limit,
		Remaining: max(0, sw.limit-int(count)),
		ResetAt:   now.Add(sw.window),
	}
	if !allowed {
		// the window frees a slot when its oldest entry ages out
		oldest, err := sw.store.Oldest(ctx, key, now, sw.window)
		if err != nil {
			return nil, errors.Join(ErrStoreFailure, err)
		}
		if !oldest.IsZero() {
			res.ResetAt = oldest.Add(sw.window)
		}
	}
	return res, nil
}

func (sw *SlidingWindow) Reset(ctx context.Context, key string) error {
	if key == "" {
		return ErrKeyRequired
	}
	return sw.store.Delete(ctx, key)
}
