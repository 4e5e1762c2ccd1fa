// Package logging wires zerolog loggers through context.Context.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter creates a logger writing to out instead of stderr.
func NewWithWriter(cfg Config, out io.Writer) zerolog.Logger {
	var output io.Writer = out

	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// NewFromEnv creates a logger based on environment variables
// TABSHELL_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// TABSHELL_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return NewFromConfigValues(os.Getenv("TABSHELL_LOG_LEVEL"), os.Getenv("TABSHELL_LOG_FORMAT"))
}

// NewFromConfigValues creates a logger from the raw strings found in config files.
// Unknown values fall back to the defaults.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	if level != "" {
		cfg.Level = ParseLevel(level)
	}
	switch format {
	case "json", "console":
		cfg.Format = format
	}
	return New(cfg)
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// SetGlobalLevel adjusts the minimum level of every logger at runtime.
// Used when the config file changes while the shell is running.
func SetGlobalLevel(level string) {
	zerolog.SetGlobalLevel(ParseLevel(level))
}
