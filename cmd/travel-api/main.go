package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/shorelinetravel/api-core/internal/destinations"
	"github.com/shorelinetravel/api-core/pkg/api"
	"github.com/shorelinetravel/api-core/pkg/cache"
	"github.com/shorelinetravel/api-core/pkg/logging"
	"github.com/shorelinetravel/api-core/pkg/ratelimit"
)

type config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogPretty   bool   `env:"LOG_PRETTY" envDefault:"false"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*"`

	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
	RateLimitMax    int           `env:"RATE_LIMIT_MAX" envDefault:"100"`

	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"5m"`
	CacheSWR time.Duration `env:"CACHE_STALE_WHILE_REVALIDATE" envDefault:"1m"`
}

func (c config) production() bool {
	return c.Environment == "production"
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "parse configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.Setup(logging.Config{
		Level:  logging.LogLevel(cfg.LogLevel),
		Pretty: cfg.LogPretty,
		Output: os.Stderr,
	})

	store := cache.New(logging.NewLogger("cache"))
	store.Start()
	defer store.Close()

	limiter := ratelimit.New(logging.NewLogger("ratelimit"))
	limiter.Start()
	defer limiter.Close()

	router := newRouter(cfg, logger, store, limiter)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info().
			Str("addr", server.Addr).
			Str("environment", cfg.Environment).
			Msg("travel API server starting")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("server failed")
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// newRouter assembles the full route table with the middleware pipeline
// around every destination endpoint.
func newRouter(cfg config, logger zerolog.Logger, store *cache.Cache, limiter *ratelimit.Limiter) http.Handler {
	apiLogger := logging.NewLogger("api")

	rateCfg := ratelimit.DefaultConfig()
	rateCfg.Window = cfg.RateLimitWindow
	rateCfg.MaxRequests = cfg.RateLimitMax

	cacheCfg := cache.Config{
		TTL:                  cfg.CacheTTL,
		StaleWhileRevalidate: cfg.CacheSWR,
	}

	pipeline := api.Compose(
		api.WithErrorHandling(apiLogger, cfg.production()),
		api.WithCORS(cfg.AllowedOrigins),
		api.WithRateLimit(limiter, rateCfg),
		api.WithCache(store, cacheCfg),
	)

	handlers := destinations.NewHandlers(destinations.NewCatalog(), logging.NewLogger("destinations"))

	list := api.HTTPHandler(pipeline(handlers.List), apiLogger)
	featured := api.HTTPHandler(pipeline(handlers.Featured), apiLogger)
	detail := api.HTTPHandler(pipeline(handlers.Get), apiLogger)

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(requestLogger(logger))

	r.Get("/health", healthHandler)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/api/destinations", list)
	r.Options("/api/destinations", list)
	r.Get("/api/destinations/featured", featured)
	r.Options("/api/destinations/featured", featured)
	r.Get("/api/destinations/{slug}", detail)
	r.Options("/api/destinations/{slug}", detail)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
