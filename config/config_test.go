package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, []string{"http://localhost:*"}, cfg.Server.AllowedOrigins)

	assert.Contains(t, cfg.Source.URL, "price-list.pdf")

	assert.Equal(t, "https://api.deepseek.com", cfg.DeepSeek.BaseURL)
	assert.Equal(t, "deepseek-chat", cfg.DeepSeek.Model)
	assert.Equal(t, 400*time.Millisecond, cfg.DeepSeek.RequestDelay)

	assert.Equal(t, "doterra_products.json", cfg.Files.Catalog)
	assert.Equal(t, "encyclopedia.json", cfg.Files.Encyclopedia)
	assert.Equal(t, "PIP.json", cfg.Files.PIPIndex)

	assert.Equal(t, "oilwatch.db", cfg.Archive.Path)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("OILWATCH_SERVER_PORT", "9090")
	t.Setenv("OILWATCH_SERVER_ENVIRONMENT", "production")
	t.Setenv("OILWATCH_SOURCE_URL", "https://example.com/list.pdf")
	t.Setenv("OILWATCH_DEEPSEEK_MODEL", "deepseek-reasoner")
	t.Setenv("OILWATCH_DEEPSEEK_REQUEST_DELAY", "1s")
	t.Setenv("OILWATCH_FILES_CATALOG", "snapshot.json")
	t.Setenv("OILWATCH_CACHE_TTL", "5m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Environment)
	assert.Equal(t, "https://example.com/list.pdf", cfg.Source.URL)
	assert.Equal(t, "deepseek-reasoner", cfg.DeepSeek.Model)
	assert.Equal(t, time.Second, cfg.DeepSeek.RequestDelay)
	assert.Equal(t, "snapshot.json", cfg.Files.Catalog)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
}

func TestLoadRejectsNegativeDelay(t *testing.T) {
	t.Setenv("OILWATCH_DEEPSEEK_REQUEST_DELAY", "-1s")

	_, err := Load()
	assert.Error(t, err)
}

func TestResolveAPIKeyDirect(t *testing.T) {
	cfg := DeepSeekConfig{APIKey: "sk-direct"}

	key, err := cfg.ResolveAPIKey()
	require.NoError(t, err)
	assert.Equal(t, "sk-direct", key)
}

func TestResolveAPIKeyFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key.txt")
	require.NoError(t, os.WriteFile(path, []byte("  sk-from-file\n"), 0600))

	cfg := DeepSeekConfig{APIKeyFile: path}

	key, err := cfg.ResolveAPIKey()
	require.NoError(t, err)
	assert.Equal(t, "sk-from-file", key)
}

func TestResolveAPIKeyMissing(t *testing.T) {
	cfg := DeepSeekConfig{}
	_, err := cfg.ResolveAPIKey()
	assert.Error(t, err)

	cfg = DeepSeekConfig{APIKeyFile: filepath.Join(t.TempDir(), "nope.txt")}
	_, err = cfg.ResolveAPIKey()
	assert.Error(t, err)
}

func TestResolveAPIKeyEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key.txt")
	require.NoError(t, os.WriteFile(path, []byte("   \n"), 0600))

	cfg := DeepSeekConfig{APIKeyFile: path}

	_, err := cfg.ResolveAPIKey()
	assert.Error(t, err)
}
