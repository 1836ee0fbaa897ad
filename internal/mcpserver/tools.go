package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/hawkli-1994/mcp4meme/internal/fourmeme"
)

// toolSpec pairs a tool definition with its handler so registration stays
// a declarative table.
type toolSpec struct {
	tool    mcp.Tool
	handler server.ToolHandlerFunc
}

// toolSpecs defines the four query tools. All of them are read-only and
// open-world: they consult an external indexer and modify nothing.
func (s *Server) toolSpecs() []toolSpec {
	return []toolSpec{
		{
			tool: mcp.NewTool("get_trending_tokens",
				mcp.WithDescription("Get trending tokens on the Four.meme platform over the last 24 hours, ranked by trade count."),
				mcp.WithNumber("limit",
					mcp.Description("Number of tokens to return"),
					mcp.DefaultNumber(fourmeme.DefaultLimit),
				),
				mcp.WithReadOnlyHintAnnotation(true),
				mcp.WithOpenWorldHintAnnotation(true),
			),
			handler: s.handleTrendingTokens,
		},
		{
			tool: mcp.NewTool("get_bonding_curve_progress",
				mcp.WithDescription("Check how close a Four.meme token is to graduating from its bonding curve."),
				mcp.WithString("token_address",
					mcp.Required(),
					mcp.Description("Token contract address (0x-prefixed hex)"),
				),
				mcp.WithReadOnlyHintAnnotation(true),
				mcp.WithOpenWorldHintAnnotation(true),
			),
			handler: s.handleBondingCurveProgress,
		},
		{
			tool: mcp.NewTool("get_latest_trades",
				mcp.WithDescription("Get recent bonding-curve trades for a Four.meme token, newest first."),
				mcp.WithString("token_address",
					mcp.Required(),
					mcp.Description("Token contract address (0x-prefixed hex)"),
				),
				mcp.WithNumber("limit",
					mcp.Description("Number of trades to return"),
					mcp.DefaultNumber(fourmeme.DefaultLimit),
				),
				mcp.WithReadOnlyHintAnnotation(true),
				mcp.WithOpenWorldHintAnnotation(true),
			),
			handler: s.handleLatestTrades,
		},
		{
			tool: mcp.NewTool("get_token_migration_status",
				mcp.WithDescription("Check whether a Four.meme token has migrated from its bonding curve to open DEX trading."),
				mcp.WithString("token_address",
					mcp.Required(),
					mcp.Description("Token contract address (0x-prefixed hex)"),
				),
				mcp.WithReadOnlyHintAnnotation(true),
				mcp.WithOpenWorldHintAnnotation(true),
			),
			handler: s.handleMigrationStatus,
		},
	}
}

// Handlers return protocol-level errors only for malformed requests
// (missing required arguments). Upstream and parse failures travel inside
// the JSON record, per the operations' error-envelope contract.

func (s *Server) handleTrendingTokens(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := req.GetInt("limit", fourmeme.DefaultLimit)
	return jsonResult(s.svc.TrendingTokens(ctx, limit))
}

func (s *Server) handleBondingCurveProgress(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	addr, err := req.RequireString("token_address")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(s.svc.BondingCurveProgress(ctx, addr))
}

func (s *Server) handleLatestTrades(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	addr, err := req.RequireString("token_address")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	limit := req.GetInt("limit", fourmeme.DefaultLimit)
	return jsonResult(s.svc.LatestTrades(ctx, addr, limit))
}

func (s *Server) handleMigrationStatus(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	addr, err := req.RequireString("token_address")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(s.svc.MigrationStatus(ctx, addr))
}

// jsonResult marshals a domain record into text content.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("mcpserver: marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
