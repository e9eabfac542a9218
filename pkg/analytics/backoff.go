package analytics

import (
	"math"
	"math/rand/v2"
	"time"
)

// Backoff returns the delay before retry number attempt, starting at 1.
type Backoff interface {
	NextInterval(attempt int) time.Duration
}

// ExponentialBackoff doubles (by Multiplier) from Initial up to Max with
// optional jitter. Zero fields take defaults of 500ms, 10s and 2.
type ExponentialBackoff struct {
	Initial    time.Duration
	Max        time.Duration
	Multiplier float64
	Jitter     float64 // fraction, e.g. 0.1 for ±10%
}

func (e ExponentialBackoff) NextInterval(attempt int) time.Duration {
	if attempt <= 0 {
		return 0
	}
	initial := cmpOr(e.Initial, 500*time.Millisecond)
	ceiling := cmpOr(e.Max, 10*time.Second)
	mult := e.Multiplier
	if mult == 0 {
		mult = 2
	}

	d := float64(initial) * math.Pow(mult, float64(attempt-1))
	if e.Jitter > 0 {
		d *= 1 + (rand.Float64()*2-1)*e.Jitter
	}
	return time.Duration(min(d, float64(ceiling)))
}

func cmpOr(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}
