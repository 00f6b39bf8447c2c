package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trafficlens/trafficlens/core"
	"github.com/trafficlens/trafficlens/internal"
	"github.com/trafficlens/trafficlens/internal/loader"
	"github.com/trafficlens/trafficlens/schema"
)

// summaryCmd prints dataset-level summary metrics.
var summaryCmd = &cobra.Command{
	Use:   "summary <csv-path>",
	Short: "Print dataset-level totals and rates.",
	Long: `Compute headline metrics across the whole export: total users,
sessions, pageviews, conversions, revenue, pages per session,
conversion rate and the covered date range.

Examples:
  # Human-readable summary
  trafficlens summary analytics_export.csv

  # Summary as JSON
  trafficlens summary analytics_export.csv --output json`,
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

		summary := metrics.Summary
		if cfg.Output == schema.JSONOut {
			data, err := json.MarshalIndent(summary, "", "  ")
			if err != nil {
				internal.FatalError("Cannot marshal summary", err)
			}
			fmt.Println(string(data))
			return
		}

		fmt.Printf("📊 Summary for %s\n", cfg.InputPath)
		fmt.Printf("  Date Range:        %s to %s\n", summary.DateRange.Start, summary.DateRange.End)
		fmt.Printf("  Total Users:       %s\n", internal.FormatCount(summary.TotalUsers))
		fmt.Printf("  Total Sessions:    %s\n", internal.FormatCount(summary.TotalSessions))
		fmt.Printf("  Total Pageviews:   %s\n", internal.FormatCount(summary.TotalPageviews))
		fmt.Printf("  Total Conversions: %s\n", internal.FormatCount(summary.TotalConversions))
		fmt.Printf("  Total Revenue:     %s\n", internal.FormatMoney(summary.TotalRevenue))
		fmt.Printf("  Pages/Session:     %s\n", internal.FormatDecimal(summary.PagesPerSession))
		fmt.Printf("  Conversion Rate:   %s\n", internal.FormatRate(summary.ConversionRate))
	},
}
