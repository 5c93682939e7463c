// Package tracing measures how long each step of an operation takes and
// reports it through [log/slog].
package tracing

import (
	"context"
	"log/slog"
	"time"
)

var (
	_ Tracer = LoggingTracer{}
	_ Span   = (*loggingSpan)(nil)
)

type Tracer interface {
	StartSpan(ctx context.Context, operationName string) Span
}

type Span interface {
	SetAttr(key string, value any)
	Finish()
}

// LoggingTracer writes one debug record per finished span.
type LoggingTracer struct {
	logger *slog.Logger
}

func NewLoggingTracer(logger *slog.Logger) LoggingTracer {
	return LoggingTracer{
		logger: logger,
	}
}

//nolint:ireturn
func (l LoggingTracer) StartSpan(ctx context.Context, operationName string) Span {
	logger := l.logger
	if logger == nil {
		logger = slog.Default()
	}

	return &loggingSpan{
		ctx:           ctx,
		logger:        logger,
		operationName: operationName,
		start:         time.Now(),
	}
}

type loggingSpan struct {
	ctx           context.Context //nolint:containedctx
	start         time.Time
	logger        *slog.Logger
	operationName string
	attrs         []any
}

func (s *loggingSpan) SetAttr(key string, value any) {
	s.attrs = append(s.attrs, slog.Any(key, value))
}

func (s *loggingSpan) Finish() {
	attrs := make([]any, 0, len(s.attrs)+2)
	attrs = append(attrs, s.attrs...)
	attrs = append(attrs,
		slog.String("operation_name", s.operationName),
		slog.Float64("time_ms", time.Since(s.start).Seconds()*1e3),
	)
	s.logger.Log(s.ctx, slog.LevelDebug, "trace", attrs...)
}
