// Command mcp4meme is the MCP server entry point. It loads configuration,
// validates it, wires the Bitquery client and the fourmeme operation
// service, sets up signal handling, and serves the MCP protocol over stdio
// (default) or streamable HTTP (-http).
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hawkli-1994/mcp4meme/internal/config"
	"github.com/hawkli-1994/mcp4meme/internal/fourmeme"
	"github.com/hawkli-1994/mcp4meme/internal/mcpserver"
	"github.com/hawkli-1994/mcp4meme/internal/platform/bitquery"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to configuration file")
	useHTTP := flag.Bool("http", false, "serve MCP over streamable HTTP instead of stdio")
	flag.Parse()

	// Structured JSON logger on stderr: the stdio transport owns stdout.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config",
			slog.String("path", *configPath),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	// Set log level from config.
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	mockMode := cfg.Bitquery.APIKey == ""
	if mockMode {
		// Degraded mode is a per-request condition, never fatal: the
		// server starts, and every tool call reports the missing key.
		logger.Warn("BITQUERY_API_KEY not set; tool calls will return error envelopes")
	}

	client := bitquery.NewClient(cfg.Bitquery.URL, cfg.Bitquery.APIKey,
		bitquery.WithLogger(logger),
	)
	svc := fourmeme.NewService(client, fourmeme.Config{
		Endpoint: cfg.Bitquery.URL,
		MockMode: mockMode,
	}, logger)
	srv := mcpserver.New(svc, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("mcp4meme starting",
		slog.Bool("http", *useHTTP),
		slog.Bool("mock_mode", mockMode),
		slog.String("config", *configPath),
	)

	var runErr error
	if *useHTTP {
		runErr = srv.ServeHTTP(ctx, fmt.Sprintf(":%d", cfg.Server.Port))
	} else {
		runErr = srv.ServeStdio(ctx)
	}
	if runErr != nil && runErr != context.Canceled {
		logger.Error("server exited with error", slog.String("error", runErr.Error()))
		os.Exit(1)
	}

	logger.Info("mcp4meme stopped")
}
