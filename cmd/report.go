package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/trafficlens/trafficlens/core"
	"github.com/trafficlens/trafficlens/internal"
	"github.com/trafficlens/trafficlens/internal/loader"
	"github.com/trafficlens/trafficlens/internal/render"
)

// reportCmd generates the full analytics report.
var reportCmd = &cobra.Command{
	Use:   "report <csv-path>",
	Short: "Generate a full analytics report from a CSV export.",
	Long: `Analyze a Google Analytics CSV export and write a complete report.

The report covers:
- Executive summary with headline KPIs
- Traffic overview with channel distribution
- Source/medium deep dive with performance scores
- User behavior and engagement metrics
- Event analysis with conversion signals
- Insights and prioritized recommendations

Examples:
  # Write JSON, HTML and Markdown reports to ./output
  trafficlens report analytics_export.csv

  # Only the HTML report, with a custom title
  trafficlens report analytics_export.csv --format html --title "Q3 Traffic Review"

  # Write reports somewhere else
  trafficlens report analytics_export.csv --output-dir /tmp/reports`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		internal.Progress("🔎 Loading %s", cfg.InputPath)
		ds, err := loader.LoadCSV(cfg.InputPath)
		if err != nil {
			internal.FatalError("Cannot load CSV export", err)
		}

		internal.Progress("🧠 Analyzing %d rows", len(ds.Rows))
		metrics, err := core.Analyze(ds)
		if err != nil {
			internal.FatalError("Cannot analyze dataset", err)
		}

		rep := core.BuildReport(metrics, cfg)

		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			internal.FatalError("Cannot create output directory", err)
		}

		base := strings.TrimSuffix(filepath.Base(cfg.InputPath), filepath.Ext(cfg.InputPath))
		for _, format := range cfg.Formats {
			content, err := render.Report(rep, format)
			if err != nil {
				internal.FatalError("Cannot render report", err)
			}
			outPath := filepath.Join(cfg.OutputDir, base+"_report."+render.FileExtension(format))
			if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
				internal.FatalError("Cannot write report file", err)
			}
			internal.Progress("📄 Wrote %s", outPath)
		}

		internal.Progress("✅ Report complete: %d sections, %d formats", len(rep.Sections), len(cfg.Formats))
	},
}
