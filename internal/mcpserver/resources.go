package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	configResourceURI = "config://mcp4meme"
	proxyResourceURI  = "config://fourmeme-proxy"
)

func (s *Server) registerResources(m *server.MCPServer) {
	m.AddResource(mcp.NewResource(configResourceURI, "MCP4Meme configuration",
		mcp.WithResourceDescription("Server identity, feature list, supported networks and upstream endpoints."),
		mcp.WithMIMEType("application/json"),
	), s.handleConfigResource)

	m.AddResource(mcp.NewResource(proxyResourceURI, "Four.meme proxy contract",
		mcp.WithResourceDescription("Four.meme bonding-curve proxy contract metadata, including the graduation formula."),
		mcp.WithMIMEType("application/json"),
	), s.handleProxyResource)
}

func (s *Server) handleConfigResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(configResourceURI, s.svc.ServerDescriptor())
}

func (s *Server) handleProxyResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource(proxyResourceURI, s.svc.ProxyDescriptor())
}

func jsonResource(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("mcpserver: marshal resource %s: %w", uri, err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
