package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hawkli-1994/mcp4meme/internal/platform/bitquery"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, bitquery.DefaultURL, cfg.Bitquery.URL)
	assert.Empty(t, cfg.Bitquery.APIKey)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
log_level = "debug"

[bitquery]
api_key = "from-file"

[server]
port = 9001
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "from-file", cfg.Bitquery.APIKey)
	assert.Equal(t, 9001, cfg.Server.Port)
	// Unset file values keep their defaults.
	assert.Equal(t, bitquery.DefaultURL, cfg.Bitquery.URL)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("BITQUERY_API_KEY", "from-env")
	t.Setenv("MCP4MEME_SERVER_PORT", "9100")
	t.Setenv("MCP4MEME_LOG_LEVEL", "warn")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Bitquery.APIKey)
	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestEnvPrefixedKeyWins(t *testing.T) {
	t.Setenv("BITQUERY_API_KEY", "plain")
	t.Setenv("MCP4MEME_BITQUERY_API_KEY", "prefixed")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, "prefixed", cfg.Bitquery.APIKey)
}

func TestValidate(t *testing.T) {
	cfg := Defaults()
	assert.NoError(t, cfg.Validate(), "defaults must validate, even without an API key")

	bad := Defaults()
	bad.Bitquery.URL = ""
	assert.Error(t, bad.Validate())

	bad = Defaults()
	bad.Server.Port = 0
	assert.Error(t, bad.Validate())

	bad = Defaults()
	bad.Server.Port = 70000
	assert.Error(t, bad.Validate())

	bad = Defaults()
	bad.LogLevel = "verbose"
	assert.Error(t, bad.Validate())
}
