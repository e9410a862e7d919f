package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestZapLogger_WritesJSONWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZapLogger(&buf, slog.LevelInfo)

	log.With("page", "map").Warn(context.Background(), "pins refresh failed", "attempt", 2)
	require.NoError(t, log.Sync())

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "warn", lines[0]["level"])
	assert.Equal(t, "pins refresh failed", lines[0]["msg"])
	assert.Equal(t, "map", lines[0]["page"])
	assert.EqualValues(t, 2, lines[0]["attempt"])
}

func TestZapLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewZapLogger(&buf, slog.LevelWarn)

	log.Debug(context.Background(), "dbg")
	log.Info(context.Background(), "inf")
	log.Error(context.Background(), "err")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "err", lines[0]["msg"])
}

func TestNew_SelectsImplementation(t *testing.T) {
	var buf bytes.Buffer
	_, isZap := New(&buf, "info", "json").(*ZapLogger)
	assert.True(t, isZap)

	_, isSlog := New(&buf, "debug", "text").(*SlogLogger)
	assert.True(t, isSlog)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel("nonsense"))
}
