package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/amoxtli/school-contact/pkg/analytics"
)

func TestCircuitBreaker(t *testing.T) {
	t.Parallel()

	t.Run("opens after threshold", func(t *testing.T) {
		t.Parallel()
		cb := analytics.NewCircuitBreaker(3, 1, time.Hour)

		for range 2 {
			cb.RecordFailure()
			assert.True(t, cb.Allow())
		}
		cb.RecordFailure()
		assert.False(t, cb.Allow())
		assert.Equal(t, analytics.CircuitOpen, cb.State())
	})

	t.Run("success resets failure count", func(t *testing.T) {
		t.Parallel()
		cb := analytics.NewCircuitBreaker(2, 1, time.Hour)

		cb.RecordFailure()
		cb.RecordSuccess()
		cb.RecordFailure()
		assert.Equal(t, analytics.CircuitClosed, cb.State())
	})

	t.Run("half-open after recovery timeout", func(t *testing.T) {
		t.Parallel()
		cb := analytics.NewCircuitBreaker(1, 1, 10*time.Millisecond)

		cb.RecordFailure()
		assert.False(t, cb.Allow())

		time.Sleep(20 * time.Millisecond)
		assert.True(t, cb.Allow())
		assert.Equal(t, analytics.CircuitHalfOpen, cb.State())

		cb.RecordSuccess()
		assert.Equal(t, analytics.CircuitClosed, cb.State())
	})

	t.Run("failure in half-open reopens", func(t *testing.T) {
		t.Parallel()
		cb := analytics.NewCircuitBreaker(1, 1, 10*time.Millisecond)

		cb.RecordFailure()
		time.Sleep(20 * time.Millisecond)
		assert.True(t, cb.Allow())

		cb.RecordFailure()
		assert.Equal(t, analytics.CircuitOpen, cb.State())
	})
}

func TestCircuitState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "closed", analytics.CircuitClosed.String())
	assert.Equal(t, "open", analytics.CircuitOpen.String())
	assert.Equal(t, "half-open", analytics.CircuitHalfOpen.String())
	assert.Equal(t, "unknown", analytics.CircuitState(9).String())
}

func TestExponentialBackoff(t *testing.T) {
	t.Parallel()

	b := analytics.ExponentialBackoff{Initial: 100 * time.Millisecond, Max: time.Second, Multiplier: 2}

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{0, 0},
		{1, 100 * time.Millisecond},
		{2, 200 * time.Millisecond},
		{3, 400 * time.Millisecond},
		{5, time.Second},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, b.NextInterval(tt.attempt), "attempt %d", tt.attempt)
	}
}

func TestExponentialBackoff_Jitter(t *testing.T) {
	t.Parallel()

	b := analytics.ExponentialBackoff{Initial: 100 * time.Millisecond, Max: time.Second, Jitter: 0.5}
	for range 50 {
		d := b.NextInterval(1)
		assert.GreaterOrEqual(t, d, 50*time.Millisecond)
		assert.LessOrEqual(t, d, 150*time.Millisecond)
	}
}
