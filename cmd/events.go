package cmd

import (
	"github.com/spf13/cobra"
	"github.com/trafficlens/trafficlens/core"
	"github.com/trafficlens/trafficlens/internal"
	"github.com/trafficlens/trafficlens/internal/loader"
	"github.com/trafficlens/trafficlens/internal/render"
)

// eventsCmd ranks tracked events from a CSV export.
var eventsCmd = &cobra.Command{
	Use:   "events <csv-path>",
	Short: "Show the top tracked events with conversion signals.",
	Long: `Aggregate tracked events by name and rank them by count.

Each event is tagged with its category (navigation, interaction,
conversion) and whether its name signals conversion intent.

Examples:
  # Top events as a table
  trafficlens events analytics_export.csv

  # Events as JSON for further processing
  trafficlens events analytics_export.csv --output json`,
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
		if err := render.PrintEvents(&metrics.Events, cfg); err != nil {
			internal.FatalError("Cannot write event output", err)
		}
	},
}
