package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amoxtli/school-contact/pkg/contactform"
)

func newValidateCmd() *cobra.Command {
	var form contactform.FormData

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Run the form checks without submitting",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ok, errs := contactform.Validate(form)
			out := cmd.OutOrStdout()
			if ok {
				fmt.Fprintln(out, "ok")
				return nil
			}
			for _, fe := range errs {
				fmt.Fprintf(out, "%s: %s\n", fe.Field, fe.Message)
			}
			return errRejected
		},
	}
	formFlags(cmd, &form)
	return cmd
}
