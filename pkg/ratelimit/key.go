package ratelimit

import (
	"net/http"

	"github.com/amoxtli/school-contact/pkg/clientip"
)

// KeyFunc extracts the rate limit key from a request. An empty key skips limiting.
type KeyFunc func(*http.Request) string

// ByClientIP keys requests by the resolved client address.
func ByClientIP(r *http.Request) string {
	if ip := clientip.GetIPFromContext(r.Context()); ip != "" {
		return ip
	}
	return clientip.GetIP(r)
}
