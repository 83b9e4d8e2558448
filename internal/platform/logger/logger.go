// Package logger builds the process-wide structured logger.
package logger

import (
	"log/slog"
	"os"
	"sync"
)

var initOnce sync.Once

// New returns a JSON slog logger writing to stdout. Handlers and services
// receive it by injection; nothing reads slog.Default.
func New() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// Init installs the logger as the process default exactly once, so stray
// slog calls from dependencies share the same sink. Safe to call from
// multiple test helpers.
func Init() *slog.Logger {
	log := New()
	initOnce.Do(func() {
		slog.SetDefault(log)
	})
	return log
}
