// Package testutil provides testing utilities for the middleware pipeline.
package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/rs/zerolog"

	"github.com/shorelinetravel/api-core/pkg/api"
	"github.com/shorelinetravel/api-core/pkg/cache"
	"github.com/shorelinetravel/api-core/pkg/ratelimit"
)

// PipelineConfig controls the middleware stack built by NewPipeline.
// Zero values fall back to the package defaults.
type PipelineConfig struct {
	Cache      cache.Config
	RateLimit  ratelimit.Config
	Origins    []string
	Production bool

	// Handler is the innermost handler. Defaults to a static 200
	// success envelope when nil.
	Handler api.Handler
}

// Pipeline is a running HTTP server wrapping a handler in the full
// middleware stack, with the stores exposed for inspection.
type Pipeline struct {
	Server  *httptest.Server
	Store   *cache.Cache
	Limiter *ratelimit.Limiter

	mu           sync.Mutex
	handlerCalls int
}

// NewPipeline starts a test server running
// error handling > CORS > rate limit > cache > handler.
// Callers must Close it.
func NewPipeline(cfg PipelineConfig) *Pipeline {
	if cfg.Cache == (cache.Config{}) {
		cfg.Cache = cache.DefaultConfig()
	}
	if cfg.RateLimit == (ratelimit.Config{}) {
		cfg.RateLimit = ratelimit.DefaultConfig()
	}
	if cfg.Origins == nil {
		cfg.Origins = []string{"*"}
	}
	if cfg.Handler == nil {
		cfg.Handler = StaticHandler(map[string]string{"status": "ok"})
	}

	p := &Pipeline{
		Store:   cache.New(zerolog.Nop()),
		Limiter: ratelimit.New(zerolog.Nop()),
	}

	inner := cfg.Handler
	counted := func(ctx context.Context, r *http.Request) (*api.Response, error) {
		p.mu.Lock()
		p.handlerCalls++
		p.mu.Unlock()
		return inner(ctx, r)
	}

	pipeline := api.Compose(
		api.WithErrorHandling(zerolog.Nop(), cfg.Production),
		api.WithCORS(cfg.Origins),
		api.WithRateLimit(p.Limiter, cfg.RateLimit),
		api.WithCache(p.Store, cfg.Cache),
	)

	p.Server = httptest.NewServer(api.HTTPHandler(pipeline(counted), zerolog.Nop()))
	return p
}

// URL returns the test server base URL.
func (p *Pipeline) URL() string {
	return p.Server.URL
}

// Close shuts down the server and both stores.
func (p *Pipeline) Close() {
	p.Server.Close()
	p.Store.Close()
	p.Limiter.Close()
}

// HandlerCalls returns how many requests reached the innermost handler.
// Cache hits, rate-limited requests, and preflights do not count.
func (p *Pipeline) HandlerCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.handlerCalls
}

// StaticHandler returns a handler that always responds 200 with data in
// the success envelope.
func StaticHandler(data any) api.Handler {
	return func(ctx context.Context, r *http.Request) (*api.Response, error) {
		return api.Success(data, nil), nil
	}
}

// FailingHandler returns a handler that always fails with err.
func FailingHandler(err error) api.Handler {
	return func(ctx context.Context, r *http.Request) (*api.Response, error) {
		return nil, err
	}
}
