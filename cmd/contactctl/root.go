package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/amoxtli/school-contact/pkg/logger"
)

type rootOptions struct {
	baseURL string
	timeout time.Duration
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "contactctl",
		Short:         "Talk to the Amoxtli School contact API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.baseURL, "url", envOr("CONTACT_API_URL", "http://localhost:8080"), "contact API base URL")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "request timeout")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")

	cmd.AddCommand(newSubmitCmd(opts), newValidateCmd(), newPingCmd(opts))
	return cmd
}

func (o *rootOptions) logger() *slog.Logger {
	if !o.verbose {
		return logger.Discard()
	}
	return logger.New(
		logger.WithFormat(logger.FormatText),
		logger.WithLevel(slog.LevelDebug),
		logger.WithOutput(os.Stderr),
	)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
