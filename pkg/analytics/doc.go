// Package analytics delivers product analytics events.
//
// Tracker is the only thing callers depend on. Plausible posts events to the
// Plausible Events API with retries, a circuit breaker and a local event
// budget. Async wraps any Tracker so that Track never blocks and never
// fails; delivery errors are logged instead. Noop discards everything.
//
//	plausible, err := analytics.NewPlausible(cfg)
//	if err != nil {
//	    return err
//	}
//	tracker := analytics.NewAsync(plausible, analytics.WithAsyncLogger(log))
//	defer tracker.Flush(context.Background())
//
//	_ = tracker.Track(ctx, "form_submit_attempt", map[string]any{"provider": "api"})
package analytics
