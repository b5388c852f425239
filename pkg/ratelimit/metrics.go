package ratelimit

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AllowedTotal tracks requests that passed the rate limiter
	AllowedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "travelapi_ratelimit_allowed_total",
			Help: "Total number of requests allowed by the rate limiter",
		},
	)

	// BlockedTotal tracks requests denied with 429
	BlockedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "travelapi_ratelimit_blocked_total",
			Help: "Total number of requests blocked by the rate limiter",
		},
	)

	// TrackedIdentifiers tracks how many identifiers currently hold a window
	TrackedIdentifiers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "travelapi_ratelimit_identifiers",
			Help: "Current number of identifiers tracked by the rate limiter",
		},
	)
)
