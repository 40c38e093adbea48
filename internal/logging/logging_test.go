package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewWithoutPathIsNop(t *testing.T) {
	logger, err := New("", true)
	require.NoError(t, err)

	assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
}

func TestNewWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rostui.log")

	logger, err := New(path, false)
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("fetched", zap.String("kind", "topic"))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "fetched", entry["msg"])
	assert.Equal(t, "topic", entry["kind"])
}

func TestNewDebugLevel(t *testing.T) {
	logger, err := New(filepath.Join(t.TempDir(), "rostui.log"), true)
	require.NoError(t, err)

	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNewBadPath(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing", "dir", "rostui.log"), false)
	assert.ErrorContains(t, err, "build logger")
}
