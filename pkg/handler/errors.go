package handler

import "errors"

var (
	ErrNilResponse  = errors.New("handler returned nil response")
	ErrInvalidJSON  = errors.New("invalid JSON")
	ErrBodyTooLarge = errors.New("request body too large")
)
