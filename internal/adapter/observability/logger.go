// Package observability provides logging, metrics, and tracing setup.
package observability

import (
	"log/slog"
	"os"
	"strings"

	"github.com/rishi6824/AIinterview-and-resume-analyser/internal/config"
)

// SetupLogger configures the process-wide JSON slog logger. The level comes
// from LOG_LEVEL; dev environments drop to debug regardless.
func SetupLogger(cfg config.Config) *slog.Logger {
	level := parseLevel(cfg.LogLevel)
	if cfg.IsDev() {
		level = slog.LevelDebug
	}
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(h).With(
		slog.String("service", cfg.OTELServiceName),
		slog.String("env", cfg.AppEnv),
	)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
