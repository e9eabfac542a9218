package contact

import (
	"time"
	_ "time/tzdata" // footer timestamps need zone data on minimal images
)

type Config struct {
	BusinessEmail string        `env:"CONTACT_EMAIL" envDefault:"school@amoxtli.tech"`
	FromEmail     string        `env:"FROM_EMAIL" envDefault:"noreply@amoxtli.tech"`
	FromName      string        `env:"FROM_NAME" envDefault:"Amoxtli School"`
	SiteURL       string        `env:"SITE_URL" envDefault:"https://school.amoxtli.tech"`
	Timezone      string        `env:"CONTACT_TIMEZONE" envDefault:"America/Mexico_City"`
	StrictChoices bool          `env:"CONTACT_STRICT_CHOICES" envDefault:"false"`
	SendTimeout   time.Duration `env:"CONTACT_SEND_TIMEOUT" envDefault:"15s"`
	DedupWindow   time.Duration `env:"CONTACT_DEDUP_WINDOW" envDefault:"0s"`
	DedupCapacity int           `env:"CONTACT_DEDUP_CAPACITY" envDefault:"1024"`
	MaxBodyBytes  int64         `env:"CONTACT_MAX_BODY_BYTES" envDefault:"65536"`
}

// DefaultConfig mirrors the envDefault tags.
func DefaultConfig() Config {
	return Config{
		BusinessEmail: "school@amoxtli.tech",
		FromEmail:     "noreply@amoxtli.tech",
		FromName:      "Amoxtli School",
		SiteURL:       "https://school.amoxtli.tech",
		Timezone:      "America/Mexico_City",
		SendTimeout:   15 * time.Second,
		DedupCapacity: 1024,
		MaxBodyBytes:  64 << 10,
	}
}
