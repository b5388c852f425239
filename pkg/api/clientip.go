package api

import (
	"net/http"
	"strings"
)

// UnknownClient is the shared identifier for requests carrying no
// forwarding headers. All such clients throttle against one bucket;
// deployments must sit behind a proxy that sets X-Forwarded-For or
// X-Real-IP for per-client limits to apply.
const UnknownClient = "unknown"

// ClientIP derives a client identifier from forwarding headers: the
// first X-Forwarded-For entry, then X-Real-IP, else UnknownClient.
func ClientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}

	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}

	return UnknownClient
}
