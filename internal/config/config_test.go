package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, 1024, cfg.Server.MaxConnections)
	assert.Equal(t, "web/index.html", cfg.Web.IndexFile)
	// Redis stays off unless an address is configured
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  host: "127.0.0.1"
  port: 8080
redis:
  addr: "localhost:6379"
  db: 1
web:
  index_file: "static/play.html"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 1, cfg.Redis.DB)
	assert.Equal(t, "static/play.html", cfg.Web.IndexFile)
	// Unset fields fall back to defaults
	assert.Equal(t, 1024, cfg.Server.MaxConnections)
}

func TestLoad_FileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestPortEnvOverride(t *testing.T) {
	t.Setenv("PORT", "9999")

	cfg := Default()
	assert.Equal(t, 9999, cfg.Server.Port)
}

func TestPortEnvInvalidIgnored(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	cfg := Default()
	assert.Equal(t, 5000, cfg.Server.Port)
}
