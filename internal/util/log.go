// Package util provides shared utility functions for logging.
package util

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// NewLogger creates a structured logger using log/slog at the specified
// level, writing JSON records to w. Supported levels: "debug", "info",
// "warn", "error". Defaults to "info" if the level string is not recognised.
func NewLogger(w io.Writer, level string) *slog.Logger {
	var slevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		slevel = slog.LevelDebug
	case "info":
		slevel = slog.LevelInfo
	case "warn":
		slevel = slog.LevelWarn
	case "error":
		slevel = slog.LevelError
	default:
		slevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slevel,
	})

	return slog.New(handler)
}

// OpenLogFile opens the log file at path for appending, creating parent
// directories as needed. The TUI owns the terminal, so logs must not go to
// stdout while the program is running.
func OpenLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// SetDefault configures the provided logger as the default slog logger.
func SetDefault(logger *slog.Logger) {
	slog.SetDefault(logger)
}
