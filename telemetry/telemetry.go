// Package telemetry provides the structured logging used by the engine
// and CLI, modeled on the logging wrapper of the example chaos-utils repo
// (pkg/reporting/logger.go): a zerolog.Logger configured once at startup
// and shared through a package-level accessor.
package telemetry

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Level names the four severities Configure accepts. The CLI selects only
// LevelInfo, or LevelDebug with --verbose.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Format selects between machine-readable JSON and a human console writer.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Config configures the global logger.
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
}

var global = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.InfoLevel)

// Configure replaces the global logger. Call it once at process startup;
// before that, Log returns a sensible info-level default writing to
// stderr so packages can log during tests without a CLI entry point.
func Configure(cfg Config) {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	if cfg.Format == FormatText {
		output = zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339}
	}

	logger := zerolog.New(output).With().Timestamp().Logger()
	switch cfg.Level {
	case LevelDebug:
		logger = logger.Level(zerolog.DebugLevel)
	case LevelWarn:
		logger = logger.Level(zerolog.WarnLevel)
	case LevelError:
		logger = logger.Level(zerolog.ErrorLevel)
	default:
		logger = logger.Level(zerolog.InfoLevel)
	}

	global = logger
}

// Log returns the current global logger for chaining
// (telemetry.Log().Info().Str(...).Msg(...)).
func Log() *zerolog.Logger {
	return &global
}
