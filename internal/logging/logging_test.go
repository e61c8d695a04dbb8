package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Options{Level: slog.LevelWarn})
	l.Info("hidden")
	l.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	l = New(&buf, Options{Debug: true, Level: slog.LevelWarn})
	l.Debug("verbose")
	assert.Contains(t, buf.String(), "verbose")
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, Options{JSON: true}).Info("hello", "k", "v")
	assert.True(t, strings.HasPrefix(buf.String(), "{"))
	assert.Contains(t, buf.String(), `"k":"v"`)
}

func TestFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	dir := filepath.Join(t.TempDir(), "ro-start")
	l, closer, err := File(dir, false)
	require.NoError(t, err)
	l.Info("started tui")
	l.Debug("not written")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "started tui")
	assert.NotContains(t, string(data), "not written")

	info, err := os.Stat(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestConsole(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	l := Console(&buf, false, false)
	assert.Same(t, l, slog.Default())
	slog.Info("quiet")
	slog.Warn("config fallback")
	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "level=WARN")

	buf.Reset()
	Console(&buf, true, true).Debug("detect manager", "name", "apt")
	assert.Contains(t, buf.String(), `"msg":"detect manager"`)
	assert.Contains(t, buf.String(), `"name":"apt"`)
}
