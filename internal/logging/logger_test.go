package logging

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "rid-1")
	assert.Equal(t, "rid-1", RequestID(ctx))
	assert.Empty(t, RequestID(context.Background()))
}

func TestLoggerFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	l := NewLogger(WithRequestID(context.Background(), "rid-2"), base)
	l.LogInfof("add_profile", "added profile %d", 42)
	l.LogError("update_profile", errors.New("boom"))

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, "added profile 42", entries[0].Message)
	fields := entries[0].ContextMap()
	assert.Equal(t, "rid-2", fields["request_id"])
	assert.Equal(t, "add_profile", fields["operation"])

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])
}

func TestLoggerUnknownRequest(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	NewLogger(context.Background(), zap.New(core)).LogWarnf("x", "plain")

	require.Len(t, logs.All(), 1)
	assert.Equal(t, "unknown", logs.All()[0].ContextMap()["request_id"])
}
