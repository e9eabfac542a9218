package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/amoxtli/school-contact/pkg/analytics"
	"github.com/amoxtli/school-contact/pkg/config"
	"github.com/amoxtli/school-contact/pkg/contactform"
)

var errRejected = errors.New("submission rejected")

func formFlags(cmd *cobra.Command, d *contactform.FormData) {
	f := cmd.Flags()
	f.StringVar(&d.Name, "name", "", "full name")
	f.StringVar(&d.Email, "email", "", "email address")
	f.StringVar(&d.Company, "company", "", "company name")
	f.StringVar(&d.Industry, "industry", "", "industry code, e.g. education")
	f.StringVar(&d.CompanySize, "size", "", "company size code, e.g. small")
	f.StringVar(&d.Message, "message", "", "message body")
}

func newSubmitCmd(root *rootOptions) *cobra.Command {
	var form contactform.FormData

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Validate and submit a contact request",
		Example: `  contactctl submit --name "Ana López" --email ana@example.com \
    --company "Colegio Sol" --industry education --size small \
    --message "Queremos capacitar a nuestro equipo"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSubmit(cmd.Context(), cmd.OutOrStdout(), root, form)
		},
	}
	formFlags(cmd, &form)
	return cmd
}

func runSubmit(ctx context.Context, out io.Writer, root *rootOptions, form contactform.FormData) error {
	log := root.logger()

	tracker, err := newTracker()
	if err != nil {
		return err
	}
	async := analytics.NewAsync(tracker, analytics.WithAsyncLogger(log))
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		_ = async.Flush(flushCtx)
	}()

	client, err := contactform.New(root.baseURL,
		contactform.WithHTTPClient(&http.Client{Timeout: root.timeout}),
		contactform.WithTracker(async),
		contactform.WithProvider("contactctl"),
		contactform.WithLogger(log),
	)
	if err != nil {
		return err
	}

	res, err := client.Submit(ctx, form)
	if err != nil {
		return err
	}
	for _, fe := range res.Errors {
		fmt.Fprintf(out, "  %s: %s\n", fe.Field, fe.Message)
	}
	fmt.Fprintln(out, res.Message)
	if !res.Success {
		return errRejected
	}
	return nil
}

// newTracker sends events to Plausible when PLAUSIBLE_DOMAIN is set.
func newTracker() (analytics.Tracker, error) {
	var cfg analytics.Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	if !cfg.Enabled() {
		return analytics.Noop{}, nil
	}
	return analytics.NewPlausible(cfg)
}
