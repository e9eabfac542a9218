package analytics

import "context"

// Tracker records a named event with optional properties.
type Tracker interface {
	Track(ctx context.Context, name string, props map[string]any) error
}

// TrackerFunc adapts a function to Tracker.
type TrackerFunc func(ctx context.Context, name string, props map[string]any) error

func (f TrackerFunc) Track(ctx context.Context, name string, props map[string]any) error {
	return f(ctx, name, props)
}

// Noop drops every event.
type Noop struct{}

func (Noop) Track(context.Context, string, map[string]any) error { return nil }
