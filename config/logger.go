package config

import (
	"log/slog"
	"os"
)

// NewLogger builds the application logger from GO_ENV and LOG_LEVEL.
// Production gets a JSON handler, everything else a text handler.
func NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: logLevel()}
	if os.Getenv("GO_ENV") == "production" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

// logLevel reads LOG_LEVEL (debug, info, warn, error). Unset or
// unrecognized values mean info.
func logLevel() slog.Level {
	switch os.Getenv("LOG_LEVEL") {
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
