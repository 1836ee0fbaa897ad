package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Load reads the optional TOML configuration file at path, merges it on
// top of the built-in defaults, applies environment variable overrides,
// and returns the final Config. A missing file is not an error — every
// value has a default. The returned Config has NOT been validated; the
// caller should invoke Config.Validate() after Load.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	// Load .env file if present (silently ignore if missing).
	_ = godotenv.Load()

	applyEnvOverrides(&cfg)

	return &cfg, nil
}

// applyEnvOverrides reads well-known MCP4MEME_* environment variables and
// overwrites the corresponding Config fields when a variable is set. The
// upstream's own BITQUERY_API_KEY name is honored too, so a key provisioned
// for any Bitquery client works here unchanged.
func applyEnvOverrides(cfg *Config) {
	setStr(&cfg.Bitquery.URL, "MCP4MEME_BITQUERY_URL")
	setStr(&cfg.Bitquery.APIKey, "BITQUERY_API_KEY")
	setStr(&cfg.Bitquery.APIKey, "MCP4MEME_BITQUERY_API_KEY")

	setInt(&cfg.Server.Port, "MCP4MEME_SERVER_PORT")

	setStr(&cfg.LogLevel, "MCP4MEME_LOG_LEVEL")
}

// Typed env-var helpers. Each only mutates the target when the environment
// variable is present and non-empty.

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
