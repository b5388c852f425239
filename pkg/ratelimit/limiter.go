package ratelimit

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// SweepInterval is how often fully expired windows are removed.
const SweepInterval = 5 * time.Minute

// record tracks one identifier's current window.
type record struct {
	count   int
	resetAt time.Time
}

// expired reports whether the window has fully elapsed at now.
func (r *record) expired(now time.Time) bool {
	return now.After(r.resetAt)
}

// Limiter is a fixed-window request counter keyed by client identifier.
// All operations are safe for concurrent use.
type Limiter struct {
	mu      sync.Mutex
	records map[string]*record
	stop    chan struct{}
	logger  zerolog.Logger
}

// New creates a new rate limiter. The background sweep is not started;
// call Start explicitly.
func New(logger zerolog.Logger) *Limiter {
	return &Limiter{
		records: make(map[string]*record),
		logger:  logger,
	}
}

// Start launches the background sweep that removes expired windows
// every SweepInterval. Calling Start twice is a no-op.
func (l *Limiter) Start() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.stop != nil {
		return
	}
	l.stop = make(chan struct{})

	go l.sweepLoop(l.stop)
}

// Close stops the background sweep and clears all windows.
func (l *Limiter) Close() {
	l.mu.Lock()
	if l.stop != nil {
		close(l.stop)
		l.stop = nil
	}
	l.records = make(map[string]*record)
	l.mu.Unlock()

	TrackedIdentifiers.Set(0)
}

// Allow reports whether a request from identifier fits within cfg's
// quota, counting the request when it does. The first request from a
// new identifier opens a window with count 1 and is always allowed.
// Denied requests do not increment the counter.
func (l *Limiter) Allow(identifier string, cfg Config) bool {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.records[identifier]
	if !ok || rec.expired(now) {
		l.records[identifier] = &record{
			count:   1,
			resetAt: now.Add(cfg.Window),
		}
		TrackedIdentifiers.Set(float64(len(l.records)))
		AllowedTotal.Inc()
		return true
	}

	if rec.count >= cfg.MaxRequests {
		BlockedTotal.Inc()
		l.logger.Warn().
			Str("identifier", identifier).
			Int("count", rec.count).
			Int("max_requests", cfg.MaxRequests).
			Time("reset_at", rec.resetAt).
			Msg("rate limit exceeded")
		return false
	}

	rec.count++
	AllowedTotal.Inc()
	return true
}

// Remaining returns how many requests identifier may still make in its
// current window, clamped to zero. With no live window it returns the
// full quota.
func (l *Limiter) Remaining(identifier string, cfg Config) int {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.records[identifier]
	if !ok || rec.expired(now) {
		return cfg.MaxRequests
	}

	remaining := cfg.MaxRequests - rec.count
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ResetAt returns when identifier's current window ends. With no
// record it returns now + cfg.Window, the reset time a fresh window
// would get.
func (l *Limiter) ResetAt(identifier string, cfg Config) time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()

	rec, ok := l.records[identifier]
	if !ok {
		return time.Now().Add(cfg.Window)
	}
	return rec.resetAt
}

func (l *Limiter) sweepLoop(stop <-chan struct{}) {
	ticker := time.NewTicker(SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.sweep()
		case <-stop:
			return
		}
	}
}

// sweep removes records whose window has fully elapsed.
func (l *Limiter) sweep() {
	now := time.Now()

	l.mu.Lock()
	removed := 0
	for identifier, rec := range l.records {
		if rec.expired(now) {
			delete(l.records, identifier)
			removed++
		}
	}
	size := len(l.records)
	l.mu.Unlock()

	if removed > 0 {
		TrackedIdentifiers.Set(float64(size))

		l.logger.Debug().
			Int("removed", removed).
			Int("remaining", size).
			Msg("rate limiter sweep completed")
	}
}
