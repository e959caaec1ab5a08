package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir switches to a fresh directory so no config file or .env is picked up.
func chdir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, int64(1), cfg.Snowflake.MachineID)
	assert.Equal(t, 12, cfg.NanoID.Size)
	assert.Equal(t, 24, cfg.CUID2.Length)
	assert.Empty(t, cfg.Catalog.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Catalog.Timeout())
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 20.0, cfg.RateLimit.RPS)
	assert.False(t, cfg.RateLimit.TrustProxyHeaders)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := chdir(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "config.yaml"), []byte(`
server:
  port: 9100
catalog:
  base_url: https://catalog.example.org/api/
  timeout_seconds: 3
log:
  level: debug
`), 0o644))

	t.Setenv("NANOID_SIZE", "16")
	t.Setenv("RATE_LIMIT_RPS", "5")
	t.Setenv("RATE_LIMIT_TRUST_PROXY_HEADERS", "true")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "https://catalog.example.org/api", cfg.Catalog.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Catalog.Timeout())
	assert.Equal(t, 16, cfg.NanoID.Size)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 5.0, cfg.RateLimit.RPS)
	assert.True(t, cfg.RateLimit.TrustProxyHeaders)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := chdir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CATALOG_BASE_URL=http://localhost:5000/api\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("CATALOG_BASE_URL") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000/api", cfg.Catalog.BaseURL)
}

func TestLoad_Invalid(t *testing.T) {
	chdir(t)
	t.Setenv("PORT", "70000")

	_, err := Load()
	assert.Error(t, err)
}
