// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/trafficlens/trafficlens/schema"
)

// NewMCPServer initializes and configures the TrafficLens MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *schema.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"TrafficLens Analytics Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
	}

	// --- 1. Tool: generate_report ---
	s.AddTool(mcp.NewTool("generate_report",
		mcp.WithDescription("Generate a full analytics report from a Google Analytics CSV export."),
		mcp.WithString("csv_path", mcp.Description("Path to the CSV export to analyze."), mcp.Required()),
		mcp.WithString("title", mcp.Description("Report title. Defaults to 'Web Analytics Performance Report'.")),
	), h.handleGenerateReport)

	// --- 2. Tool: get_channels ---
	s.AddTool(mcp.NewTool("get_channels",
		mcp.WithDescription("Rank traffic channels from a CSV export by users, with performance scores."),
		mcp.WithString("csv_path", mcp.Description("Path to the CSV export to analyze."), mcp.Required()),
		mcp.WithNumber("limit", mcp.Description("Limit the number of channels returned.")),
	), h.handleGetChannels)

	// --- 3. Tool: get_summary ---
	s.AddTool(mcp.NewTool("get_summary",
		mcp.WithDescription("Compute dataset-level summary metrics (totals, rates, date range) from a CSV export."),
		mcp.WithString("csv_path", mcp.Description("Path to the CSV export to analyze."), mcp.Required()),
	), h.handleGetSummary)

	return s
}

// StartMCPServer starts the TrafficLens MCP server over stdio.
func StartMCPServer(_ context.Context, baseCfg *schema.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
