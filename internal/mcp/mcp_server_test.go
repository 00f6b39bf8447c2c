package mcp_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mcp_internal "github.com/trafficlens/trafficlens/internal/mcp"
	"github.com/trafficlens/trafficlens/schema"
)

func writeExport(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.csv")
	csv := "source,medium,users,sessions,conversions\n" +
		"google,organic,100,120,5\n" +
		"direct,none,50,50,1\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))
	return path
}

func baseConfig() *schema.Config {
	return &schema.Config{
		ResultLimit: schema.DefaultResultLimit,
		Precision:   schema.DefaultPrecision,
		Title:       schema.DefaultReportTitle,
	}
}

func callTool(t *testing.T, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	s := mcp_internal.NewMCPServer(baseConfig())
	tool := s.GetTool(name)
	require.NotNil(t, tool, "Tool %s should exist", name)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: name, Arguments: args},
	}
	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
	return res
}

func TestMCPServer_GetSummary(t *testing.T) {
	res := callTool(t, "get_summary", map[string]any{"csv_path": writeExport(t)})
	require.False(t, res.IsError)

	text := res.Content[0].(mcp.TextContent).Text
	var summary schema.SummaryMetrics
	require.NoError(t, json.Unmarshal([]byte(text), &summary))
	assert.Equal(t, 150.0, summary.TotalUsers)
	assert.Equal(t, 170.0, summary.TotalSessions)
	assert.Equal(t, 3.53, summary.ConversionRate)
}

func TestMCPServer_GetChannels(t *testing.T) {
	res := callTool(t, "get_channels", map[string]any{
		"csv_path": writeExport(t),
		"limit":    1.0,
	})
	require.False(t, res.IsError)

	text := res.Content[0].(mcp.TextContent).Text
	var enriched []schema.EnrichedChannelResult
	require.NoError(t, json.Unmarshal([]byte(text), &enriched))
	require.Len(t, enriched, 1)
	assert.Equal(t, 1, enriched[0].Rank)
	assert.Equal(t, "google / organic", enriched[0].Channel)
}

func TestMCPServer_GenerateReport(t *testing.T) {
	res := callTool(t, "generate_report", map[string]any{
		"csv_path": writeExport(t),
		"title":    "Custom Title",
	})
	require.False(t, res.IsError)

	text := res.Content[0].(mcp.TextContent).Text
	var rep schema.Report
	require.NoError(t, json.Unmarshal([]byte(text), &rep))
	assert.Equal(t, "Custom Title", rep.Title)
	assert.Len(t, rep.Sections, 7)
}

func TestMCPServer_MissingCSVPath(t *testing.T) {
	res := callTool(t, "get_summary", map[string]any{})
	assert.True(t, res.IsError, "The response should indicate an error state")
	assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "csv_path is required")
}

func TestMCPServer_UnreadableFile(t *testing.T) {
	res := callTool(t, "get_channels", map[string]any{"csv_path": "/nonexistent/export.csv"})
	assert.True(t, res.IsError)
	assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "analysis failed")
}
