package cache

import (
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultTTL is the cache TTL applied when no configuration is given.
	DefaultTTL = 5 * time.Minute

	// DefaultStaleWhileRevalidate is the default stale-while-revalidate
	// window advertised in Cache-Control headers.
	DefaultStaleWhileRevalidate = 1 * time.Minute

	// SweepInterval is how often the background sweep removes expired
	// entries. The sweep bounds memory growth only; correctness relies
	// on lazy expiry at read time.
	SweepInterval = 60 * time.Second
)

// Config holds response caching configuration.
type Config struct {
	// TTL is how long a cached response stays fresh.
	TTL time.Duration

	// StaleWhileRevalidate is the window advertised to clients during
	// which a stale response may be reused while revalidating. It is
	// expressed only as a Cache-Control directive; the server performs
	// no background refresh.
	StaleWhileRevalidate time.Duration
}

// DefaultConfig returns the default caching configuration.
func DefaultConfig() Config {
	return Config{
		TTL:                  DefaultTTL,
		StaleWhileRevalidate: DefaultStaleWhileRevalidate,
	}
}

// Cache is an in-memory TTL store for serialized API responses.
// All operations are safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*Entry
	stop    chan struct{}
	logger  zerolog.Logger
}

// New creates a new response cache. The background sweep is not started;
// call Start explicitly.
func New(logger zerolog.Logger) *Cache {
	return &Cache{
		entries: make(map[string]*Entry),
		logger:  logger,
	}
}

// Start launches the background sweep that physically removes expired
// entries every SweepInterval. Calling Start on a cache that is already
// running is a no-op.
func (c *Cache) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.stop != nil {
		return
	}
	c.stop = make(chan struct{})

	go c.sweepLoop(c.stop)
}

// Close stops the background sweep and clears all entries.
func (c *Cache) Close() {
	c.mu.Lock()
	if c.stop != nil {
		close(c.stop)
		c.stop = nil
	}
	c.entries = make(map[string]*Entry)
	c.mu.Unlock()

	CacheEntries.Set(0)
}

// Get retrieves the payload and ETag stored under key.
// Expired entries are treated as absent and deleted on read.
func (c *Cache) Get(key string) ([]byte, string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		CacheMisses.Inc()
		return nil, "", false
	}

	if entry.IsExpired() {
		delete(c.entries, key)
		CacheEntries.Set(float64(len(c.entries)))
		CacheEvictions.Inc()
		CacheMisses.Inc()
		return nil, "", false
	}

	CacheHits.Inc()
	return entry.Payload, entry.ETag, true
}

// Set stores a payload under key, overwriting any existing entry.
// A negative ttl is treated as zero (the entry is immediately expired).
func (c *Cache) Set(key string, payload []byte, ttl time.Duration, etag string) {
	if ttl < 0 {
		ttl = 0
	}

	c.mu.Lock()
	c.entries[key] = &Entry{
		Payload:   payload,
		ETag:      etag,
		ExpiresAt: time.Now().Add(ttl),
	}
	size := len(c.entries)
	c.mu.Unlock()

	CacheEntries.Set(float64(size))

	c.logger.Debug().
		Str("key", key).
		Str("etag", etag).
		Dur("ttl", ttl).
		Msg("cache entry stored")
}

// Has reports whether a live entry exists for key, with the same lazy
// expiry semantics as Get but without touching hit/miss counters.
func (c *Cache) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return false
	}

	if entry.IsExpired() {
		delete(c.entries, key)
		CacheEntries.Set(float64(len(c.entries)))
		CacheEvictions.Inc()
		return false
	}

	return true
}

// Delete removes the entry stored under key, if any.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	size := len(c.entries)
	c.mu.Unlock()

	CacheEntries.Set(float64(size))
}

// Invalidate removes entries whose key starts with prefix, the entry
// point for busting cached responses after content changes. An empty
// prefix clears the whole store.
func (c *Cache) Invalidate(prefix string) {
	if prefix == "" {
		c.Clear()
		return
	}

	c.mu.Lock()
	removed := 0
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
			removed++
		}
	}
	size := len(c.entries)
	c.mu.Unlock()

	if removed > 0 {
		CacheEntries.Set(float64(size))

		c.logger.Debug().
			Str("prefix", prefix).
			Int("removed", removed).
			Msg("cache entries invalidated")
	}
}

// Clear removes every entry regardless of expiry state.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]*Entry)
	c.mu.Unlock()

	CacheEntries.Set(0)
}

// Len returns the number of stored entries, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache) sweepLoop(stop <-chan struct{}) {
	ticker := time.NewTicker(SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.sweep()
		case <-stop:
			return
		}
	}
}

// sweep removes all expired entries.
func (c *Cache) sweep() {
	now := time.Now()

	c.mu.Lock()
	removed := 0
	for key, entry := range c.entries {
		if now.After(entry.ExpiresAt) {
			delete(c.entries, key)
			removed++
		}
	}
	size := len(c.entries)
	c.mu.Unlock()

	if removed > 0 {
		CacheEntries.Set(float64(size))
		CacheEvictions.Add(float64(removed))

		c.logger.Debug().
			Int("removed", removed).
			Int("remaining", size).
			Msg("cache sweep completed")
	}
}
