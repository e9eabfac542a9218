package email

import (
	"errors"
	"fmt"
)

// Category groups provider failures by who has to fix them.
type Category string

const (
	// CategoryAuth means the service itself is misconfigured: bad token,
	// inactive account, unconfirmed sender.
	CategoryAuth Category = "auth"
	// CategoryRequest means the provider rejected this particular message.
	CategoryRequest Category = "request"
	// CategoryUnknown covers transport failures and anything unclassified.
	CategoryUnknown Category = "unknown"
)

// ProviderError is a rejection reported by the email provider.
type ProviderError struct {
	Category Category
	Code     int64
	Message  string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("email provider error %d (%s): %s", e.Code, e.Category, e.Message)
}

func (e *ProviderError) Unwrap() error { return ErrFailedToSendEmail }

// CategoryOf classifies err. Invalid messages count as request errors.
func CategoryOf(err error) Category {
	if err == nil {
		return ""
	}
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Category
	}
	if errors.Is(err, ErrInvalidMessage) {
		return CategoryRequest
	}
	return CategoryUnknown
}

// Postmark API error codes.
// https://postmarkapp.com/developer/api/overview#error-codes
const (
	postmarkBadOrMissingToken   = 10
	postmarkSenderNotFound      = 400
	postmarkSenderNotConfirmed  = 401
	postmarkInvalidJSON         = 402
	postmarkIncompatibleJSON    = 403
	postmarkNotAllowedToSend    = 405
	postmarkInactiveRecipient   = 406
	postmarkJSONRequired        = 409
	postmarkAccountPending      = 412
	postmarkInvalidEmailRequest = 300
)

func postmarkCategory(code int64) Category {
	switch code {
	case postmarkBadOrMissingToken, postmarkNotAllowedToSend, postmarkAccountPending:
		return CategoryAuth
	case postmarkInvalidEmailRequest, postmarkSenderNotConfirmed, postmarkSenderNotFound,
		postmarkInvalidJSON, postmarkIncompatibleJSON, postmarkInactiveRecipient, postmarkJSONRequired:
		return CategoryRequest
	default:
		return CategoryUnknown
	}
}
