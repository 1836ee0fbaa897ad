// Package mcpserver exposes the fourmeme operations as MCP tools and the
// two configuration descriptors as MCP resources, over either a stdio or a
// streamable-HTTP transport.
package mcpserver

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/hawkli-1994/mcp4meme/internal/fourmeme"
)

const shutdownGrace = 10 * time.Second

// Server wraps the MCP protocol server around the fourmeme service.
type Server struct {
	mcp    *server.MCPServer
	svc    *fourmeme.Service
	logger *slog.Logger
}

// New builds the MCP server with all tools and resources registered.
func New(svc *fourmeme.Service, logger *slog.Logger) *Server {
	s := &Server{
		svc:    svc,
		logger: logger.With(slog.String("component", "mcpserver")),
	}

	m := server.NewMCPServer(fourmeme.ServerName, fourmeme.ServerVersion,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithRecovery(),
	)
	for _, spec := range s.toolSpecs() {
		m.AddTool(spec.tool, spec.handler)
	}
	s.registerResources(m)

	s.mcp = m
	return s
}

// ServeStdio serves the MCP protocol over stdin/stdout until the client
// disconnects or ctx is cancelled. Logging must go to stderr in this mode;
// the transport owns stdout.
func (s *Server) ServeStdio(ctx context.Context) error {
	s.logger.Info("serving MCP over stdio")
	return server.NewStdioServer(s.mcp).Listen(ctx, os.Stdin, os.Stdout)
}

// ServeHTTP serves the MCP protocol over streamable HTTP on addr, shutting
// down gracefully when ctx is cancelled.
func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	httpServer := server.NewStreamableHTTPServer(s.mcp)

	s.logger.Info("serving MCP over HTTP", slog.String("addr", addr))

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Start(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("mcpserver: listen: %w", err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("mcpserver: shutdown: %w", err)
		}
		s.logger.Info("HTTP transport stopped")
		return nil
	}
}
