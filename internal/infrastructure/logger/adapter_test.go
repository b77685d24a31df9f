package logger

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func readEntries(t *testing.T, path string) []map[string]any {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var entries []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry), scanner.Text())
		entries = append(entries, entry)
	}
	require.NoError(t, scanner.Err())
	return entries
}

func TestLoggerAdapter_WritesJSONLines(t *testing.T) {
	dir := t.TempDir()

	log, err := NewLoggerAdapter(dir, "gaussian view", zapcore.InfoLevel)
	require.NoError(t, err)

	path := log.Path()
	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasSuffix(path, "_gaussian_view.log"), path)

	log.Debug("hidden at info level")
	log.Info("Step started", "step", 1, "name", "Navigating to home page...")
	log.WithField("run_id", "abc").Error("Step failed", "error", errors.New("element not visible"))
	log.WithFields(map[string]any{"scenario": "gaussian", "attempt": 1}).Warn("Snapshot skipped")
	require.NoError(t, log.Close())

	entries := readEntries(t, path)
	require.Len(t, entries, 3)

	assert.Equal(t, "INFO", entries[0]["level"])
	assert.Equal(t, "Step started", entries[0]["message"])
	assert.Equal(t, float64(1), entries[0]["step"])
	assert.NotEmpty(t, entries[0]["timestamp"])

	assert.Equal(t, "ERROR", entries[1]["level"])
	assert.Equal(t, "abc", entries[1]["run_id"])
	assert.Equal(t, "element not visible", entries[1]["error"])

	assert.Equal(t, "WARN", entries[2]["level"])
	assert.Equal(t, "gaussian", entries[2]["scenario"])
}

func TestLoggerAdapter_CloseTwice(t *testing.T) {
	log, err := NewLoggerAdapter(t.TempDir(), "run", zapcore.DebugLevel)
	require.NoError(t, err)

	require.NoError(t, log.Close())
	assert.NoError(t, log.Close())
}

func TestNewNop(t *testing.T) {
	log := NewNop()
	log.Info("nothing", "k", "v")
	assert.Empty(t, log.Path())
	assert.NoError(t, log.Close())
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"gaussian", "gaussian"},
		{"Gaussian Elimination view", "Gaussian_Elimination_view"},
		{"__x__", "x"},
		{"", "run"},
		{"???", "run"},
		{strings.Repeat("a", 80), strings.Repeat("a", 60)},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitize(tt.in), tt.in)
	}
}
