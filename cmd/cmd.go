// Package cmd defines the command-line interface for trafficlens.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/trafficlens/trafficlens/internal"
	"github.com/trafficlens/trafficlens/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(channelsCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().IntP("limit", "l", schema.DefaultResultLimit, "Number of channels or events to display")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", schema.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		internal.FatalError("Error binding root flags", err)
	}

	// Bind all flags of reportCmd to Viper
	reportCmd.Flags().StringP("format", "f", string(schema.FormatAll), "Report format: json, html, markdown or all")
	reportCmd.Flags().StringP("output-dir", "o", "output", "Directory where report files are written")
	reportCmd.Flags().StringP("title", "t", schema.DefaultReportTitle, "Report title")
	if err := viper.BindPFlags(reportCmd.Flags()); err != nil {
		internal.FatalError("Error binding report flags", err)
	}
}
