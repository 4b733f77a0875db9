package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerUsesTextHandlerWithInfoLevel(t *testing.T) {
	logger := NewLogger(Config{Format: "text", Level: "info"})
	assert.True(t, logger.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, logger.Enabled(context.Background(), slog.LevelDebug))
}

func TestNewLoggerJSONCarriesServiceFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Format: "json", Level: "debug", Service: "sim", Version: "v1", Output: &buf})
	logger.Debug("hello", FieldSeason, "2025")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "sim", line[FieldService])
	assert.Equal(t, "v1", line[FieldVersion])
	assert.Equal(t, "2025", line[FieldSeason])
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"DEBUG":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestHelpersTolerateNilLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		Debug(nil, "x")
		Info(nil, "x")
		Warn(nil, "x")
		Error(nil, "x", nil)
	})
}
