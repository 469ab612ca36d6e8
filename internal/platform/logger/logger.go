package logger

import (
	"log/slog"
	"os"
)

// New returns the process-wide structured logger. Production emits JSON for
// log shipping; anything else gets the friendlier text handler.
func New(env string) *slog.Logger {
	var handler slog.Handler
	if env == "production" {
		handler = slog.NewJSONHandler(os.Stdout, nil)
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return slog.New(handler)
}
