package logger

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitAndWrite(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, Init())
	defer Close()

	LogInfo("client started on %s", "localhost:5000")
	LogError("decode failed: %v", "bad frame")

	data, err := os.ReadFile(GetLogPath())
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "[INFO] client started on localhost:5000")
	assert.Contains(t, content, "[ERROR] decode failed: bad frame")
}

func TestInit_AppendsAcrossRuns(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, Init())
	LogInfo("first run")
	Close()

	// A second Init must append, not truncate
	require.NoError(t, Init())
	defer Close()
	LogInfo("second run")

	data, err := os.ReadFile(GetLogPath())
	require.NoError(t, err)
	assert.Contains(t, string(data), "first run")
	assert.Contains(t, string(data), "second run")
}
