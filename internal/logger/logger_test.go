package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_WritesTaggedLinesToHomeDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, Init())
	defer Close()

	LogInfo("hello %s", "world")
	LogError("boom")

	data, err := os.ReadFile(GetLogPath())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[INFO] hello world")
	assert.Contains(t, string(data), "[ERROR] boom")
	assert.Equal(t, logFileName, filepath.Base(GetLogPath()))
}

func TestInit_RotatesOversizedLog(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	logDir := filepath.Join(home, logDirName)
	require.NoError(t, os.MkdirAll(logDir, 0o755))
	oldPath := filepath.Join(logDir, logFileName)
	require.NoError(t, os.WriteFile(oldPath, []byte("old"), 0o644))
	require.NoError(t, os.Truncate(oldPath, maxLogSize+1))

	require.NoError(t, Init())
	defer Close()

	info, err := os.Stat(oldPath)
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(maxLogSize), "a fresh log replaces the full one")

	entries, err := os.ReadDir(logDir)
	require.NoError(t, err)
	rotated := 0
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), logFileName+".") {
			rotated++
		}
	}
	assert.Equal(t, 1, rotated)
}
