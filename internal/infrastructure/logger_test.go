package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetRequestID(ctx))

	ctx = WithRequestID(ctx, "req-123")
	assert.Equal(t, "req-123", GetRequestID(ctx))
}

func TestRequestIDHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(&requestIDHandler{
		Handler: slog.NewJSONHandler(&buf, nil),
	})

	t.Run("injects request id from context", func(t *testing.T) {
		buf.Reset()
		ctx := WithRequestID(context.Background(), "req-123")
		logger.InfoContext(ctx, "converting workbook")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "req-123", line["request_id"])
		assert.Equal(t, "converting workbook", line["msg"])
	})

	t.Run("omits attribute without request id", func(t *testing.T) {
		buf.Reset()
		logger.InfoContext(context.Background(), "converting workbook")

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.NotContains(t, line, "request_id")
	})
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run("level "+tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogLevel(tt.level))
		})
	}
}
