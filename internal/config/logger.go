package config

import (
	"io"
	"log/slog"
)

// NewLogger creates a text logger writing to w.
// Debug mode lowers the level to Debug; otherwise only warnings and
// errors are emitted so normal command output stays clean.
func NewLogger(debug bool, w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
