// Package config defines the server configuration and its loading order:
// built-in defaults, then an optional TOML file, then environment
// variables.
package config

import (
	"fmt"
	"net/url"

	"github.com/hawkli-1994/mcp4meme/internal/platform/bitquery"
)

// Config is the full server configuration.
type Config struct {
	Bitquery BitqueryConfig `toml:"bitquery"`
	Server   ServerConfig   `toml:"server"`
	LogLevel string         `toml:"log_level"`
}

// BitqueryConfig configures the upstream GraphQL client.
type BitqueryConfig struct {
	URL string `toml:"url"`
	// APIKey may be empty: the server then starts in mock mode, where
	// every tool call returns the credential error envelope instead of
	// reaching the network.
	APIKey string `toml:"api_key"`
}

// ServerConfig configures the HTTP transport binding. It is unused when
// the server runs over stdio.
type ServerConfig struct {
	Port int `toml:"port"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Bitquery: BitqueryConfig{
			URL: bitquery.DefaultURL,
		},
		Server: ServerConfig{
			Port: 8000,
		},
		LogLevel: "info",
	}
}

// Validate checks the configuration for values the server cannot start
// with. A missing API key is deliberately not an error.
func (c *Config) Validate() error {
	if c.Bitquery.URL == "" {
		return fmt.Errorf("config: bitquery.url is required")
	}
	if _, err := url.Parse(c.Bitquery.URL); err != nil {
		return fmt.Errorf("config: bitquery.url: %w", err)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d out of range", c.Server.Port)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log_level %q", c.LogLevel)
	}
	return nil
}
