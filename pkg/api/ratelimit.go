package api

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/shorelinetravel/api-core/pkg/ratelimit"
)

// WithRateLimit bounds request rate per client identifier. Denied
// requests short-circuit with 429 and a Retry-After hint; allowed
// requests get X-RateLimit-* headers reflecting the state after this
// request was counted.
func WithRateLimit(limiter *ratelimit.Limiter, cfg ratelimit.Config) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, r *http.Request) (*Response, error) {
			identifier := "rate-limit:" + ClientIP(r)

			if !limiter.Allow(identifier, cfg) {
				resetAt := limiter.ResetAt(identifier, cfg)
				retryAfter := int(math.Ceil(time.Until(resetAt).Seconds()))

				resp := ErrorResponse(CodeRateLimitExceeded, cfg.Message, http.StatusTooManyRequests, map[string]any{
					"retryAfter": retryAfter,
					"resetTime":  resetAt.UTC().Format(time.RFC3339),
				})
				resp.SetHeader("X-RateLimit-Limit", strconv.Itoa(cfg.MaxRequests))
				resp.SetHeader("X-RateLimit-Remaining", "0")
				resp.SetHeader("X-RateLimit-Reset", strconv.FormatInt(resetAt.UnixMilli(), 10))
				resp.SetHeader("Retry-After", strconv.Itoa(retryAfter))
				return resp, nil
			}

			remaining := limiter.Remaining(identifier, cfg)
			resetAt := limiter.ResetAt(identifier, cfg)

			resp, err := next(ctx, r)
			if err != nil {
				return resp, err
			}

			resp.SetHeader("X-RateLimit-Limit", strconv.Itoa(cfg.MaxRequests))
			resp.SetHeader("X-RateLimit-Remaining", strconv.Itoa(remaining))
			resp.SetHeader("X-RateLimit-Reset", strconv.FormatInt(resetAt.UnixMilli(), 10))
			return resp, nil
		}
	}
}
