package cmd

import (
	"github.com/spf13/cobra"
	"github.com/trafficlens/trafficlens/core"
	"github.com/trafficlens/trafficlens/internal"
	"github.com/trafficlens/trafficlens/internal/loader"
	"github.com/trafficlens/trafficlens/internal/render"
)

// channelsCmd ranks traffic channels from a CSV export.
var channelsCmd = &cobra.Command{
	Use:   "channels <csv-path>",
	Short: "Show the top traffic channels ranked by users.",
	Long: `Group the export by source/medium and rank channels by users.

Each channel shows volume totals, engagement rates and a composite
performance score that blends conversion rate, sessions per user and
bounce rate.

Examples:
  # Top 10 channels as a table
  trafficlens channels analytics_export.csv

  # Top 25 channels as CSV
  trafficlens channels analytics_export.csv --limit 25 --output csv --output-file channels.csv

  # Export channel metrics for downstream tooling
  trafficlens channels analytics_export.csv --output parquet --output-file channels.parquet`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		ds, err := loader.LoadCSV(cfg.InputPath)
		if err != nil {
			internal.FatalError("Cannot load CSV export", err)
		}
		metrics, err := core.Analyze(ds)
		if err != nil {
			internal.FatalError("Cannot analyze dataset", err)
		}
		if err := render.PrintChannels(&metrics.Channels, cfg); err != nil {
			internal.FatalError("Cannot write channel output", err)
		}
	},
}
