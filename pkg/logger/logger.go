// Package logger holds the process-wide structured logger.
package logger

import (
	"log/slog"
	"os"
)

// Log is configured by Init and shared by every layer.
var Log *slog.Logger

// Init sets up Log with a JSON handler writing to stdout.
func Init() {
	Log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
