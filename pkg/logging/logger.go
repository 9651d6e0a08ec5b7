// Package logging builds the structured slog loggers used by recipebox.
//
// Logs are JSON on stderr. The level comes from the explicit argument, or
// from the LOG_LEVEL environment variable when the argument is empty, and
// defaults to INFO. Debug loggers include the source location.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const envLogLevel = "LOG_LEVEL"

// ParseLevel maps a case-insensitive level name to a slog.Level.
// Unknown names fall back to INFO.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewStructuredLogger returns a JSON logger writing to stderr that carries
// the module and version on every record.
func NewStructuredLogger(module, version, level string) *slog.Logger {
	return NewStructuredLoggerWithWriter(os.Stderr, module, version, level)
}

// NewStructuredLoggerWithWriter is NewStructuredLogger with an explicit sink.
func NewStructuredLoggerWithWriter(w io.Writer, module, version, level string) *slog.Logger {
	if level == "" {
		level = os.Getenv(envLogLevel)
	}
	lvl := ParseLevel(level)

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl <= slog.LevelDebug,
	})

	return slog.New(handler).With(
		slog.String("module", module),
		slog.String("version", version),
	)
}

// SetDefaultStructuredLogger installs a structured logger as the slog default.
func SetDefaultStructuredLogger(module, version, level string) *slog.Logger {
	logger := NewStructuredLogger(module, version, level)
	slog.SetDefault(logger)
	return logger
}
