package ratelimit

import "time"

// Config controls the limit applied to contact submissions.
type Config struct {
	Enabled  bool          `env:"RATE_LIMIT_ENABLED" envDefault:"false"`
	Requests int           `env:"RATE_LIMIT_REQUESTS" envDefault:"5"`
	Window   time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
	Prefix   string        `env:"RATE_LIMIT_PREFIX" envDefault:"ratelimit:contact:"`
}
