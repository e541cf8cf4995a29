// Package logger adapts log/slog to the domain Logger port.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Slog writes structured key-value logs to stderr.
type Slog struct {
	logger *slog.Logger
}

// New creates a logger at the given level ("debug", "info", "warn",
// "error"); unknown values fall back to info.
func New(level string) *Slog {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	return &Slog{logger: slog.New(handler)}
}

// Info logs an informational message with key-value args.
func (l *Slog) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

// Error logs an error message with key-value args.
func (l *Slog) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
