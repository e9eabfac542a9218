package analytics

import "time"

// Config configures Plausible. Without a domain events go to Noop.
type Config struct {
	Domain          string        `env:"PLAUSIBLE_DOMAIN"`
	Endpoint        string        `env:"PLAUSIBLE_ENDPOINT" envDefault:"https://plausible.io/api/event"`
	PageURL         string        `env:"PLAUSIBLE_PAGE_URL" envDefault:"https://school.amoxtli.tech/#contact"`
	UserAgent       string        `env:"PLAUSIBLE_USER_AGENT" envDefault:"amoxtli-contact/1.0"`
	EventsPerSecond float64       `env:"PLAUSIBLE_EVENTS_PER_SECOND" envDefault:"5"`
	Burst           int           `env:"PLAUSIBLE_BURST" envDefault:"10"`
	MaxRetries      int           `env:"PLAUSIBLE_MAX_RETRIES" envDefault:"2"`
	Timeout         time.Duration `env:"PLAUSIBLE_TIMEOUT" envDefault:"5s"`
}

func (c Config) Enabled() bool { return c.Domain != "" }
