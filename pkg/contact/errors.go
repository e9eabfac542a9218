package contact

import "errors"

var (
	ErrSpam          = errors.New("contact: honeypot field is filled")
	ErrMissingFields = errors.New("contact: required fields are missing")
	ErrInvalidEmail  = errors.New("contact: invalid email format")
	ErrFieldTooLong  = errors.New("contact: field exceeds its length limit")
	ErrInvalidChoice = errors.New("contact: unknown industry or company size")
	ErrInvalidConfig = errors.New("contact: invalid config")
)
