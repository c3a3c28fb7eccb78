package logging

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_WritesKeyValuesAndRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelInfo)

	ctx := WithRequestID(context.Background(), "req-1")
	logger.WarnContext(ctx, "get team failed", "slug", "fram", "error", errors.New("boom"))

	var line map[string]any
	require.NoError(t, sonic.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "WARN", line["level"])
	assert.Equal(t, "get team failed", line["msg"])
	assert.Equal(t, "fram", line["slug"])
	assert.Equal(t, "boom", line["error"])
	assert.Equal(t, "req-1", line["request_id"])
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelWarn)

	logger.Info("dropped")
	assert.Zero(t, buf.Len())
}

func TestLogger_OddArgs(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelInfo)

	logger.Info("odd", "dangling")

	var line map[string]any
	require.NoError(t, sonic.Unmarshal(buf.Bytes(), &line))
	v, ok := line["dangling"]
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelError, ParseLevel(" error "))
	assert.Equal(t, LevelInfo, ParseLevel("nonsense"))
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	var l *Logger
	assert.NotPanics(t, func() { l.Info("no logger") })
	assert.NoError(t, l.Sync())
}
