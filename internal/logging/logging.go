// Package logging configures the process-wide slog logger for the command
// line tools.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Environment variables read by Init.
const (
	EnvJSON  = "STRSEARCH_JSON_LOG"
	EnvLevel = "STRSEARCH_LOG_LEVEL"
)

// Init configures a global slog logger writing to w. JSON if
// STRSEARCH_JSON_LOG=1/true/json, text otherwise.
func Init(w io.Writer, component string) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	json := isJSON(os.Getenv(EnvJSON))
	opts := &slog.HandlerOptions{Level: ParseLevel(os.Getenv(EnvLevel))}

	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	logger := slog.New(handler).With("component", component)
	slog.SetDefault(logger)
	logger.Debug("logging initialized", "json", json)
	return logger
}

// ParseLevel maps a level name to a slog level. Unknown names map to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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

func isJSON(mode string) bool {
	switch strings.ToLower(mode) {
	case "1", "true", "json":
		return true
	}
	return false
}
