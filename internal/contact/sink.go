package contact

import (
	"context"
	"log/slog"

	"badgeforge/pkg/requestcontext"
)

// Sink receives accepted submissions. The log sink below is the current
// implementation; any durable store satisfying this interface can replace
// it.
type Sink interface {
	Record(ctx context.Context, sub Submission) error
}

// LogSink writes each submission to the structured log.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Record(ctx context.Context, sub Submission) error {
	s.logger.InfoContext(ctx, "contact submission received",
		"request_id", requestcontext.RequestID(ctx),
		"name", sub.Name,
		"email", sub.Email,
		"subject", sub.Subject,
		"message", sub.Message,
	)
	return nil
}
