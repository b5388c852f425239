package api

import (
	"context"
	"net/http"
)

const (
	allowedMethods  = "GET, POST, PUT, DELETE, OPTIONS"
	allowedHeaders  = "Content-Type, Authorization"
	preflightMaxAge = "86400"
)

// WithCORS answers OPTIONS preflights directly and adds the
// Access-Control-Allow-Origin header to real responses, in both cases
// only when the requesting origin is permitted. The full
// Allow-Methods/Headers/Max-Age set is emitted on preflights only.
func WithCORS(allowedOrigins []string) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, r *http.Request) (*Response, error) {
			origin := r.Header.Get("Origin")
			allowValue, permitted := resolveOrigin(allowedOrigins, origin)

			if r.Method == http.MethodOptions {
				resp := NewResponse(http.StatusNoContent)
				if permitted {
					resp.SetHeader("Access-Control-Allow-Origin", allowValue)
					resp.SetHeader("Access-Control-Allow-Methods", allowedMethods)
					resp.SetHeader("Access-Control-Allow-Headers", allowedHeaders)
					resp.SetHeader("Access-Control-Max-Age", preflightMaxAge)
				}
				return resp, nil
			}

			resp, err := next(ctx, r)
			if err != nil {
				return resp, err
			}

			if permitted {
				resp.SetHeader("Access-Control-Allow-Origin", allowValue)
			}
			return resp, nil
		}
	}
}

// resolveOrigin returns the Allow-Origin header value for origin: "*"
// when a wildcard is configured, the origin itself on an exact match.
func resolveOrigin(allowed []string, origin string) (string, bool) {
	for _, candidate := range allowed {
		if candidate == "*" {
			return "*", true
		}
	}
	for _, candidate := range allowed {
		if candidate == origin {
			return origin, true
		}
	}
	return "", false
}
