package logger

import (
	"bytes"
	"context"
	"encoding/json"
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
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}
	return out
}

func TestLoggerWritesStructuredEntries(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelInfo, "grubdash", func(context.Context) string { return "abc123" })

	log.Info(context.Background(), "dish created", "id", "42")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "info", entries[0]["level"])
	assert.Equal(t, "dish created", entries[0]["msg"])
	assert.Equal(t, "grubdash", entries[0]["service"])
	assert.Equal(t, "42", entries[0]["id"])
	assert.Equal(t, "abc123", entries[0]["trace_id"])
}

func TestLoggerHonoursLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelWarn, "grubdash", nil)

	log.Debug(context.Background(), "dropped")
	log.Info(context.Background(), "dropped")
	log.Warn(context.Background(), "kept")
	log.Error(context.Background(), "kept too")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "warn", entries[0]["level"])
	assert.Equal(t, "error", entries[1]["level"])
	assert.NotContains(t, entries[0], "trace_id")
}

func TestLoggerOmitsEmptyTraceID(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelInfo, "grubdash", func(context.Context) string { return "" })

	log.Info(context.Background(), "no span")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0], "trace_id")
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, LevelDebug, lvl)

	_, err = ParseLevel("loud")
	require.Error(t, err)
}
