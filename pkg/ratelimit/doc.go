// Package ratelimit limits how often a client may hit an endpoint using a
// sliding window over request timestamps.
//
// Two stores are available. MemoryStore keeps the windows in process and is
// enough for a single instance. RedisStore keeps them in sorted sets so several
// instances share one budget per key.
//
//	store := ratelimit.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimit.NewSlidingWindow(store, 5, time.Minute)
//	if err != nil {
//	    return err
//	}
//
//	r.With(ratelimit.Middleware(limiter, ratelimit.ByClientIP,
//	    ratelimit.WithOnLimitReached(tooMany),
//	)).Post("/api/contact", submit)
//
// The middleware fails open: when the store errors the request goes through.
package ratelimit
