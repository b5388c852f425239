// Package cache provides an in-process HTTP response cache with TTL
// expiry and ETag support for conditional requests.
//
// The cache maps a normalized request signature (path + sorted query
// parameters) to a serialized response payload and a content-derived
// ETag. Entries expire lazily on read and are physically removed by a
// periodic sweep.
//
// # Basic Usage
//
//	store := cache.New(logger)
//	store.Start()
//	defer store.Close()
//
//	key := cache.Key("/api/destinations", url.Values{"page": []string{"1"}})
//
//	payload, etag, ok := store.Get(key)
//	if !ok {
//		// Cache miss - invoke the handler
//	}
//
// # Key Normalization
//
// Key sorts query parameter names lexicographically before serializing,
// so "?b=2&a=1" and "?a=1&b=2" always produce the same cache key.
//
// # ETags
//
// ETagFor derives a weak, non-cryptographic integrity tag from the
// serialized payload. Identical payloads always produce identical tags;
// the tag is used for cheap If-None-Match equality checks, not security.
//
// # Metrics
//
// The cache exports Prometheus metrics:
//
//   - travelapi_cache_hits_total - Cache hits
//   - travelapi_cache_misses_total - Cache misses
//   - travelapi_cache_entries - Current number of live entries
//   - travelapi_cache_evictions_total - Entries removed by sweep or expiry
//
// # Lifecycle
//
// The background sweep never starts as a side effect of construction;
// call Start explicitly and Close on shutdown so tests and graceful
// teardown do not leak timers. The sweep is a memory-management
// optimization only - lazy expiry already guarantees stale entries are
// never served.
package cache
