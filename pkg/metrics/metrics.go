// Package metrics provides the central Prometheus registry reference
// for the travel API. Metrics are defined in their owning packages
// (api, cache, ratelimit) to maintain modularity and avoid circular
// dependencies.
//
// This package provides documentation and reference for all available metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the API server.
// All metrics are automatically registered via promauto in their respective packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Request Metrics (pkg/api):
//   - travelapi_requests_total{path, status} (Counter): Total requests by path and HTTP status
//   - travelapi_request_duration_seconds{path} (Histogram): Request duration by path
//
// Cache Metrics (pkg/cache):
//   - travelapi_cache_hits_total (Counter): Response cache hits
//   - travelapi_cache_misses_total (Counter): Response cache misses
//   - travelapi_cache_entries (Gauge): Live entries in the response cache
//   - travelapi_cache_evictions_total (Counter): Entries evicted by sweep or lazy expiry
//
// Rate Limit Metrics (pkg/ratelimit):
//   - travelapi_ratelimit_allowed_total (Counter): Requests allowed
//   - travelapi_ratelimit_blocked_total (Counter): Requests denied with 429
//   - travelapi_ratelimit_identifiers (Gauge): Identifiers currently tracked
//
// Example Prometheus Queries:
//
//   # Cache Hit Rate
//   rate(travelapi_cache_hits_total[5m]) /
//   (rate(travelapi_cache_hits_total[5m]) + rate(travelapi_cache_misses_total[5m]))
//
//   # 429 Rate
//   rate(travelapi_ratelimit_blocked_total[5m])
//
//   # P95 Request Latency
//   histogram_quantile(0.95, rate(travelapi_request_duration_seconds_bucket[5m]))
