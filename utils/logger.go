package utils

import (
	"log/slog"
	"os"
	"sync"
)

var (
	loggerOnce sync.Once
	logger     *slog.Logger
)

// GetLogger returns the shared structured logger. The first call installs a
// JSON handler writing to stderr; later calls reuse it.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel(),
		})
		logger = slog.New(handler)
	})
	return logger
}

func logLevel() slog.Level {
	switch GetEnv("PA_LOG_LEVEL", "info") {
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
