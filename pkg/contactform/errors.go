package contactform

import "errors"

var (
	ErrSubmissionInProgress = errors.New("contactform: submission in progress")
	ErrInvalidBaseURL       = errors.New("contactform: invalid base url")
)

// errUnexpected marks a response the client could not interpret.
var errUnexpected = errors.New("contactform: unexpected response")
