package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheHits tracks cache hits
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "travelapi_cache_hits_total",
			Help: "Total number of response cache hits",
		},
	)

	// CacheMisses tracks cache misses
	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "travelapi_cache_misses_total",
			Help: "Total number of response cache misses",
		},
	)

	// CacheEntries tracks the current number of live entries
	CacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "travelapi_cache_entries",
			Help: "Current number of entries in the response cache",
		},
	)

	// CacheEvictions tracks entries removed by sweep or lazy expiry
	CacheEvictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "travelapi_cache_evictions_total",
			Help: "Total number of response cache entries evicted",
		},
	)
)
