package cmd

import (
	"github.com/spf13/cobra"
	"github.com/trafficlens/trafficlens/internal/mcp"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the TrafficLens MCP server",
	Long:  `Launch an MCP server that allows AI agents to run analytics over CSV exports via standard tools.`,
	// Progress and warning logs go to stderr, so they cannot pollute the
	// stdio channel used by the protocol.
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
