package tracing_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/configdoc/pkg/tracing"
)

func TestLoggingTracer(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	span := tracing.NewLoggingTracer(logger).StartSpan(context.Background(), "collect")
	span.SetAttr("count", 3)
	span.Finish()

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "trace", rec["msg"])
	assert.Equal(t, "collect", rec["operation_name"])
	assert.InDelta(t, 3, rec["count"], 0)
	assert.Contains(t, rec, "time_ms")
}

func TestLoggingTracer_Disabled(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	span := tracing.NewLoggingTracer(logger).StartSpan(context.Background(), "encode")
	span.Finish()

	assert.Empty(t, buf.String())
}
