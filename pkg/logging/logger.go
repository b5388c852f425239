// Package logging provides structured logging configuration using zerolog.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ServiceName is stamped on every log line so travel-api output can be
// separated from other services feeding the same aggregator.
const ServiceName = "travel-api"

// LogLevel represents the logging level.
type LogLevel string

const (
	// LevelDebug logs debug messages and above.
	LevelDebug LogLevel = "debug"

	// LevelInfo logs info messages and above.
	LevelInfo LogLevel = "info"

	// LevelWarn logs warning messages and above.
	LevelWarn LogLevel = "warn"

	// LevelError logs error messages only.
	LevelError LogLevel = "error"
)

// Config holds logger configuration.
type Config struct {
	// Level is the minimum log level to output.
	Level LogLevel

	// Pretty enables human-readable console output (default: false for JSON).
	Pretty bool

	// Output is the writer to output logs to (default: os.Stderr).
	Output io.Writer
}

// DefaultConfig returns a default logger configuration.
func DefaultConfig() Config {
	return Config{
		Level:  LevelInfo,
		Pretty: false,
		Output: os.Stderr,
	}
}

// Setup configures the global zerolog logger.
func Setup(cfg Config) zerolog.Logger {
	// Set global log level
	level := parseLevel(cfg.Level)
	zerolog.SetGlobalLevel(level)

	// Configure output
	var output io.Writer = cfg.Output
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{Out: cfg.Output}
	}

	// Create logger with timestamp and service identity
	logger := zerolog.New(output).With().
		Timestamp().
		Str("service", ServiceName).
		Logger()

	// Set as global logger
	log.Logger = logger

	return logger
}

// parseLevel converts LogLevel to zerolog.Level.
func parseLevel(level LogLevel) zerolog.Level {
	switch strings.ToLower(string(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// NewLogger creates a new logger with the given component name.
func NewLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// Log Level Guidelines:
//
// Debug: Detailed information for debugging
//   - Cache operations (store, sweep, key, TTL)
//   - Request flow (conditional requests, ETags)
//   - Rate limiter sweeps
//
// Info: Normal operation events
//   - Request completion with status and duration
//   - Server startup/shutdown
//
// Warn: Warning conditions that don't prevent operation
//   - Rate limit denials (429)
//   - Validation failures surfaced to clients (4xx)
//
// Error: Error conditions requiring attention
//   - Handler failures converted to 500
//   - Recovered panics
//   - Response serialization failures
//   - Configuration errors
//
// Context Fields:
//   - service: Always "travel-api", set by Setup
//   - component: Subsystem name (cache, ratelimit, api, server)
//   - method / path: Request identity
//   - status: HTTP status code
//   - duration: Request duration
//   - request_id: Per-request correlation ID
//   - identifier: Rate-limit bucket
//   - key / etag / ttl: Cache entry identity
