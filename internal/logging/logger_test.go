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

func TestParseLevel(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  slog.Level
	}{
		"debug":   {input: "debug", want: slog.LevelDebug},
		"info":    {input: "INFO", want: slog.LevelInfo},
		"warn":    {input: "warn", want: slog.LevelWarn},
		"error":   {input: " error ", want: slog.LevelError},
		"empty":   {input: "", want: slog.LevelWarn},
		"unknown": {input: "loud", want: slog.LevelWarn},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, parseLevel(tt.input))
		})
	}
}

func TestSetupJSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := Setup(&buf, "info", "json")
	logger.Debug("hidden")
	logger.Info("wrote table", "rows", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "wrote table", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.InDelta(t, 3, entry["rows"], 0)
}

func TestSetupText(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := Setup(&buf, "", "")
	logger.Info("hidden")
	logger.Warn("careful", "path", "out.tex")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=careful")
	assert.Contains(t, buf.String(), "path=out.tex")
}

func TestFromContext(t *testing.T) {
	t.Parallel()
	logger := Setup(&bytes.Buffer{}, "debug", "text")
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}
