package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/trafficlens/trafficlens/core"
	"github.com/trafficlens/trafficlens/internal/loader"
	"github.com/trafficlens/trafficlens/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *schema.Config
}

// analyzeCSV is the shared load-and-analyze step behind every tool.
func analyzeCSV(csvPath string) (*schema.Metrics, error) {
	if csvPath == "" {
		return nil, fmt.Errorf("csv_path is required")
	}
	ds, err := loader.LoadCSV(csvPath)
	if err != nil {
		return nil, err
	}
	return core.Analyze(ds)
}

func (h *toolHandler) handleGenerateReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if t := request.GetString("title", ""); t != "" {
		cfg.Title = t
	}

	metrics, err := analyzeCSV(request.GetString("csv_path", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	report := core.BuildReport(metrics, cfg)
	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetChannels(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if l := request.GetInt("limit", 0); l > 0 {
		cfg.ResultLimit = l
	}

	metrics, err := analyzeCSV(request.GetString("csv_path", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}
	if !metrics.Channels.Available {
		return mcp.NewToolResultError("no source/medium data available in this export"), nil
	}

	enriched := core.EnrichChannels(metrics.Channels.ByChannel, cfg.ResultLimit)
	jsonData, _ := json.MarshalIndent(enriched, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	metrics, err := analyzeCSV(request.GetString("csv_path", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(metrics.Summary, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
