package config

import (
	"log/slog"
	"os"
	"strings"
)

// NewLogger builds the process-wide slog logger at the configured level.
// Unknown or empty levels fall back to info.
func (c *LoggerConfig) NewLogger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
}
