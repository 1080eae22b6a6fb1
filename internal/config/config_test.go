package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears keys for the duration of the test.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestParseDefaults(t *testing.T) {
	unsetEnv(t, "PORT", "DUERP_API_URL", "DUERP_API_TIMEOUT", "DEFAULT_LANG", "DEV")
	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "http://localhost:5000/api", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, "fr", cfg.App.DefaultLang)
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DUERP_API_URL", "https://duerp.example.com/api")
	t.Setenv("DUERP_API_TIMEOUT", "5s")
	t.Setenv("DEV", "true")

	cfg, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr())
	assert.Equal(t, "https://duerp.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.True(t, cfg.App.Dev)
}

func TestParseRejectsRelativeURL(t *testing.T) {
	t.Setenv("DUERP_API_URL", "/api")
	_, err := Parse()
	assert.Error(t, err)
}

func TestLoadEnvSkipsMissingFiles(t *testing.T) {
	dir := t.TempDir()
	f := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(f, []byte("DUERP_TEST_LOADED=yes\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("DUERP_TEST_LOADED") })

	n, err := LoadEnv(filepath.Join(dir, "missing.env"), f)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "yes", os.Getenv("DUERP_TEST_LOADED"))
}
