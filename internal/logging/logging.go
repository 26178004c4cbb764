// Package logging provides structured logging setup for rental-ops.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Setup initializes the default slog logger and returns it.
// Dev mode uses human-readable text; prod uses JSON.
func Setup(devMode bool) *slog.Logger {
	logger := New(os.Stdout, devMode)
	slog.SetDefault(logger)
	return logger
}

// New builds a logger writing to w at the level Setup would use.
func New(w io.Writer, devMode bool) *slog.Logger {
	var handler slog.Handler
	if devMode {
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	} else {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return slog.New(handler)
}
