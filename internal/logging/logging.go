// Package logging configures the process-wide slog logger.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup installs a colorized stderr handler as the default logger.
// Level comes from LOG_LEVEL (debug, info, warn, error); default info.
func Setup() {
	h := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      levelFromEnv(),
		TimeFormat: time.Kitchen,
	})
	slog.SetDefault(slog.New(h))
}

// SetupFile routes logs to a file instead of stderr. The dashboard uses
// this so nothing scribbles over the alternate screen. The returned func
// closes the file; safe to call once on shutdown.
func SetupFile(path string) (func(), error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("logging: open %s: %w", path, err)
	}

	h := tint.NewHandler(f, &tint.Options{
		Level:      levelFromEnv(),
		TimeFormat: time.TimeOnly,
		NoColor:    true,
	})
	slog.SetDefault(slog.New(h))

	return func() { _ = f.Close() }, nil
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
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
