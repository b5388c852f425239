package ratelimit

import (
	"time"
)

// Config holds rate limiting configuration for one pipeline.
type Config struct {
	// Window is the fixed window length.
	Window time.Duration

	// MaxRequests is the number of requests allowed per identifier
	// within one window.
	MaxRequests int

	// Message is the human-readable text returned with 429 responses.
	Message string
}

// DefaultConfig returns the standard rate limit: 100 requests per minute.
func DefaultConfig() Config {
	return Config{
		Window:      time.Minute,
		MaxRequests: 100,
		Message:     "Too many requests, please try again later",
	}
}

// StrictConfig returns the tightened limit used for expensive
// operations: 20 requests per minute.
func StrictConfig() Config {
	return Config{
		Window:      time.Minute,
		MaxRequests: 20,
		Message:     "Rate limit exceeded for this operation",
	}
}
