package logger

import (
	"log/slog"
	"time"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	return slog.String("request_id", id)
}

// Leg records which outbound message of a submission a record refers to.
func Leg(name string) slog.Attr {
	return slog.String("leg", name)
}

// Recipient records an email recipient.
func Recipient(addr string) slog.Attr {
	return slog.String("recipient", addr)
}

// MessageID records the provider message identifier.
func MessageID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("message_id", id)
}

// Category records a provider error category.
func Category(c string) slog.Attr {
	return slog.String("category", c)
}

// Outcome records the terminal outcome of a request.
func Outcome(o string) slog.Attr {
	return slog.String("outcome", o)
}

// Event records an analytics event name.
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Duration records a duration in milliseconds under the key "duration_ms".
func Duration(d time.Duration) slog.Attr {
	return slog.Int64("duration_ms", d.Milliseconds())
}
