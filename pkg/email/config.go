package email

// Config selects and configures the sender. Without a server token the
// service falls back to DevSender, which writes messages to DevDir.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	TrackOpens           bool   `env:"POSTMARK_TRACK_OPENS" envDefault:"true"`
	DevDir               string `env:"EMAIL_DEV_DIR" envDefault:"./tmp/emails"`
}

// UsePostmark reports whether a server token was configured.
func (c Config) UsePostmark() bool { return c.PostmarkServerToken != "" }
