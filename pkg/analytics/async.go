package analytics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/amoxtli/school-contact/pkg/logger"
)

// Async runs Track in the background. Its own Track always returns nil.
type Async struct {
	next    Tracker
	timeout time.Duration
	log     *slog.Logger
	wg      sync.WaitGroup
}

type AsyncOption func(*Async)

func WithAsyncLogger(log *slog.Logger) AsyncOption {
	return func(a *Async) {
		if log != nil {
			a.log = log
		}
	}
}

// WithAsyncTimeout bounds each background delivery. Default 10s.
func WithAsyncTimeout(d time.Duration) AsyncOption {
	return func(a *Async) {
		if d > 0 {
			a.timeout = d
		}
	}
}

func NewAsync(next Tracker, opts ...AsyncOption) *Async {
	if next == nil {
		next = Noop{}
	}
	a := &Async{
		next:    next,
		timeout: 10 * time.Second,
		log:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Async) Track(ctx context.Context, name string, props map[string]any) error {
	// the caller's context usually ends before delivery does
	ctx = context.WithoutCancel(ctx)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		ctx, cancel := context.WithTimeout(ctx, a.timeout)
		defer cancel()

		if err := a.next.Track(ctx, name, props); err != nil {
			a.log.WarnContext(ctx, "analytics event dropped",
				logger.Component("analytics"),
				logger.Event(name),
				logger.Error(err),
			)
		}
	}()
	return nil
}

// Flush waits for pending deliveries or until ctx is done.
func (a *Async) Flush(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
