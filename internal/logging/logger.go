package logging

import (
	"context"

	"go.uber.org/zap"
)

type requestIDKey struct{}

// WithRequestID stores the request id on ctx for later loggers.
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, rid)
}

// RequestID extracts the request id set by WithRequestID.
func RequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey{}).(string); ok {
		return rid
	}
	return ""
}

// Logger provides request scoped structured logging for services
type Logger struct {
	base *zap.Logger
}

// NewLogger creates a logger tagged with the request id found on ctx.
func NewLogger(ctx context.Context, base *zap.Logger) *Logger {
	if base == nil {
		base = zap.NewNop()
	}
	requestID := RequestID(ctx)
	if requestID == "" {
		requestID = "unknown"
	}
	return &Logger{base: base.With(zap.String("request_id", requestID))}
}

func (l *Logger) LogError(operation string, err error) {
	l.base.Error("operation failed", zap.String("operation", operation), zap.Error(err))
}

func (l *Logger) LogErrorf(operation string, format string, args ...interface{}) {
	l.base.Sugar().Errorw(sprintf(format, args...), "operation", operation)
}

func (l *Logger) LogInfof(operation string, format string, args ...interface{}) {
	l.base.Sugar().Infow(sprintf(format, args...), "operation", operation)
}

func (l *Logger) LogWarnf(operation string, format string, args ...interface{}) {
	l.base.Sugar().Warnw(sprintf(format, args...), "operation", operation)
}
