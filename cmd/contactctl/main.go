// Command contactctl submits the contact form from a terminal, running the
// same client-side checks and analytics events as the website.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
