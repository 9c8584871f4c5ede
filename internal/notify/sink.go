package notify

import (
	"context"

	"github.com/mobimart/mobimart-backend/pkg/logger"
)

// Sink receives fire-and-forget user-facing signals. Callers never branch
// on the outcome of a sink call; implementations must not block.
type Sink interface {
	Success(ctx context.Context, message string)
	Info(ctx context.Context, message string)
	Warning(ctx context.Context, message string)
	Error(ctx context.Context, message string)
}

// LogSink emits notifications through the structured logger.
type LogSink struct {
	logg *logger.Logger
}

func NewLogSink(logg *logger.Logger) *LogSink {
	return &LogSink{logg: logg}
}

func (s *LogSink) Success(ctx context.Context, message string) {
	s.emit(ctx, "success", message)
}

func (s *LogSink) Info(ctx context.Context, message string) {
	s.emit(ctx, "info", message)
}

func (s *LogSink) Warning(ctx context.Context, message string) {
	s.emit(ctx, "warning", message)
}

func (s *LogSink) Error(ctx context.Context, message string) {
	s.emit(ctx, "error", message)
}

func (s *LogSink) emit(ctx context.Context, level, message string) {
	if s.logg == nil {
		return
	}
	ctx = s.logg.WithFields(ctx, map[string]any{
		"notification": level,
	})
	s.logg.Info(ctx, message)
}

// NopSink discards every notification. Used by tests.
type NopSink struct{}

func (NopSink) Success(context.Context, string) {}
func (NopSink) Info(context.Context, string)    {}
func (NopSink) Warning(context.Context, string) {}
func (NopSink) Error(context.Context, string)   {}
