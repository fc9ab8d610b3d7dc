package config

import (
	"log/slog"
	"os"
	"strings"
)

// Config holds the dbfedit settings read from the environment. A .env file in the
// working directory is loaded by the CLI before NewConfig runs.
type Config struct {
	Encoding string
	LogLevel string
	Backup   bool
}

func env(key string, defaultValue string) string {
	if os.Getenv(key) != "" {
		return os.Getenv(key)
	}

	return defaultValue
}

func NewConfig() *Config {
	return &Config{
		Encoding: env("DBFEDIT_ENCODING", ""),
		LogLevel: env("DBFEDIT_LOG_LEVEL", "info"),
		Backup:   env("DBFEDIT_BACKUP", "false") == "true",
	}
}

// Level maps LogLevel to a slog level, falling back to info.
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
