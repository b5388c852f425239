package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		level LogLevel
		want  zerolog.Level
	}{
		{name: "debug", level: LevelDebug, want: zerolog.DebugLevel},
		{name: "info", level: LevelInfo, want: zerolog.InfoLevel},
		{name: "warn", level: LevelWarn, want: zerolog.WarnLevel},
		{name: "warning alias", level: LogLevel("warning"), want: zerolog.WarnLevel},
		{name: "error", level: LevelError, want: zerolog.ErrorLevel},
		{name: "unknown defaults to info", level: LogLevel("verbose"), want: zerolog.InfoLevel},
		{name: "mixed case", level: LogLevel("DEBUG"), want: zerolog.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseLevel(tt.level); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestSetup_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup(Config{
		Level:  LevelInfo,
		Pretty: false,
		Output: &buf,
	})

	logger.Info().Str("component", "cache").Msg("entry stored")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if entry["component"] != "cache" {
		t.Errorf("component = %v, want cache", entry["component"])
	}
	if entry["service"] != ServiceName {
		t.Errorf("service = %v, want %q", entry["service"], ServiceName)
	}
	if entry["message"] != "entry stored" {
		t.Errorf("message = %v", entry["message"])
	}
	if _, ok := entry["time"]; !ok {
		t.Error("log entry missing timestamp")
	}
}

func TestSetup_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup(Config{
		Level:  LevelWarn,
		Output: &buf,
	})

	logger.Debug().Msg("suppressed")
	logger.Info().Msg("suppressed")

	if buf.Len() != 0 {
		t.Errorf("below-level messages were written: %s", buf.String())
	}

	logger.Warn().Msg("visible")
	if buf.Len() == 0 {
		t.Error("warn message was suppressed")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Level != LevelInfo {
		t.Errorf("Level = %q, want info", cfg.Level)
	}
	if cfg.Pretty {
		t.Error("Pretty = true, want false")
	}
	if cfg.Output == nil {
		t.Error("Output = nil")
	}
}
