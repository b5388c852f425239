package cache

import (
	"time"
)

// Entry represents a cached API response.
type Entry struct {
	// Payload is the serialized (JSON) response body
	Payload []byte

	// ETag is the content-derived integrity tag for conditional requests
	ETag string

	// ExpiresAt is when the entry becomes logically absent
	ExpiresAt time.Time
}

// IsExpired returns true if the entry has expired.
func (e *Entry) IsExpired() bool {
	return time.Now().After(e.ExpiresAt)
}

// TTL returns the time until expiration.
// Returns 0 if already expired.
func (e *Entry) TTL() time.Duration {
	ttl := time.Until(e.ExpiresAt)
	if ttl < 0 {
		return 0
	}
	return ttl
}
