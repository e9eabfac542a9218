package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// BindJSON decodes the body as a single JSON object. Literal null, arrays
// and scalars are rejected with ErrInvalidJSON. The Content-Type header is
// not checked and unknown fields are ignored. maxBytes <= 0 disables the
// size limit.
func BindJSON(maxBytes int64) Bind {
	return func(r *http.Request, v any) error {
		if r.Body == nil {
			return fmt.Errorf("%w: empty body", ErrInvalidJSON)
		}
		body := io.Reader(r.Body)
		if maxBytes > 0 {
			body = io.LimitReader(r.Body, maxBytes+1)
		}

		data, err := io.ReadAll(body)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		if maxBytes > 0 && int64(len(data)) > maxBytes {
			return ErrBodyTooLarge
		}
		trimmed := bytes.TrimLeft(data, " \t\r\n")
		if len(trimmed) == 0 {
			return fmt.Errorf("%w: empty body", ErrInvalidJSON)
		}
		if trimmed[0] != '{' {
			return fmt.Errorf("%w: body is not a JSON object", ErrInvalidJSON)
		}
		if err := json.Unmarshal(data, v); err != nil {
			var syntaxErr *json.SyntaxError
			if errors.As(err, &syntaxErr) {
				return fmt.Errorf("%w: syntax error at offset %d", ErrInvalidJSON, syntaxErr.Offset)
			}
			return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		return nil
	}
}
