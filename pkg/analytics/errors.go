package analytics

import "errors"

var (
	ErrInvalidConfig    = errors.New("analytics: invalid config")
	ErrEmptyEventName   = errors.New("analytics: event name is required")
	ErrCircuitOpen      = errors.New("analytics: circuit breaker is open")
	ErrRateLimited      = errors.New("analytics: event budget exhausted")
	ErrPermanentFailure = errors.New("analytics: event rejected")
	ErrDeliveryFailed   = errors.New("analytics: event delivery failed")
)
