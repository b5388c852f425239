// Package ratelimit implements fixed-window request rate limiting keyed
// by client identifier.
//
// Each identifier owns a counter and a window reset time. The first
// request from an identifier opens a window with count 1; subsequent
// requests increment the counter until MaxRequests is reached, after
// which requests are denied without incrementing. Once the reset time
// passes, the next request opens a fresh window.
//
// Fixed windows are intentionally simple: a client can burst up to
// twice the nominal rate across a window boundary. Smoothing (sliding
// log, token bucket) is out of scope.
//
// # Usage
//
//	limiter := ratelimit.New(logger)
//	limiter.Start()
//	defer limiter.Close()
//
//	if !limiter.Allow("rate-limit:203.0.113.9", ratelimit.DefaultConfig()) {
//		// respond 429
//	}
//
// # Metrics
//
//   - travelapi_ratelimit_allowed_total - Requests allowed
//   - travelapi_ratelimit_blocked_total - Requests denied
//   - travelapi_ratelimit_identifiers - Identifiers currently tracked
//
// Expired windows are swept periodically to bound memory; the sweep
// lifecycle mirrors the response cache (explicit Start/Close, never
// started on import).
package ratelimit
