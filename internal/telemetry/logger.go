// Package telemetry configures structured logging. Logs go to stderr so that
// stdout carries only the result table.
package telemetry

import (
	"io"
	"log/slog"
	"os"
)

// InitLogger installs a JSON slog logger on stderr as the default and
// returns it.
func InitLogger(debug bool) *slog.Logger {
	logger := NewLogger(os.Stderr, debug)
	slog.SetDefault(logger)
	return logger
}

// NewLogger builds a JSON logger writing to w.
func NewLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
