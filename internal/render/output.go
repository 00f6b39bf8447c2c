package render

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/trafficlens/trafficlens/core"
	"github.com/trafficlens/trafficlens/internal"
	"github.com/trafficlens/trafficlens/schema"
)

// PrintChannels outputs the channel analysis in the configured output mode.
func PrintChannels(analysis *schema.ChannelAnalysis, cfg *schema.Config) error {
	if !analysis.Available {
		internal.Warning("No source/medium data available in this export.")
		return nil
	}

	enriched := core.EnrichChannels(analysis.ByChannel, cfg.ResultLimit)
	fmtFloat := func(v float64) string {
		return strconv.FormatFloat(v, 'f', cfg.Precision, 64)
	}

	switch cfg.Output {
	case schema.JSONOut:
		return printJSON(enriched, cfg)
	case schema.CSVOut:
		return printChannelsCSV(enriched, cfg, fmtFloat)
	case schema.ParquetOut:
		return printChannelsParquet(enriched, cfg)
	default:
		return printChannelsTable(enriched, cfg, fmtFloat)
	}
}

// PrintEvents outputs the event analysis in the configured output mode.
func PrintEvents(events *schema.EventAnalysis, cfg *schema.Config) error {
	if !events.Available {
		internal.Warning("No event data available in this export.")
		return nil
	}

	switch cfg.Output {
	case schema.JSONOut:
		return printJSON(events, cfg)
	case schema.CSVOut:
		return printEventsCSV(events, cfg)
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for events")
	default:
		return printEventsTable(events, cfg)
	}
}

// printJSON handles opening the output target and writing indented JSON.
func printJSON(v any, cfg *schema.Config) error {
	file, err := selectOutputFile(cfg.OutputFile)
	if err != nil {
		return err
	}
	defer func() {
		if file != os.Stdout {
			_ = file.Close()
			fmt.Fprintf(os.Stderr, "Wrote JSON to %s\n", cfg.OutputFile)
		}
	}()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func printChannelsCSV(enriched []schema.EnrichedChannelResult, cfg *schema.Config, fmtFloat func(float64) string) error {
	file, err := selectOutputFile(cfg.OutputFile)
	if err != nil {
		return err
	}
	defer func() {
		if file != os.Stdout {
			_ = file.Close()
			fmt.Fprintf(os.Stderr, "Wrote CSV to %s\n", cfg.OutputFile)
		}
	}()

	w := csv.NewWriter(file)
	header := []string{
		"rank", "channel", "users", "sessions", "pageviews", "conversions",
		"revenue", "bounce_rate", "conversion_rate", "sessions_per_user", "score",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for _, c := range enriched {
		rec := []string{
			strconv.Itoa(c.Rank),
			c.Channel,
			fmtFloat(c.Users),
			fmtFloat(c.Sessions),
			fmtFloat(c.Pageviews),
			fmtFloat(c.Conversions),
			fmtFloat(c.Revenue),
			optionalFloat(c.BounceRate, fmtFloat),
			optionalFloat(c.ConversionRate, fmtFloat),
			optionalFloat(c.SessionsPerUser, fmtFloat),
			fmtFloat(c.PerformanceScore),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func printChannelsTable(enriched []schema.EnrichedChannelResult, cfg *schema.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Rank", "Channel", "Users", "Sessions", "Bounce Rate", "Conv. Rate", "Score"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxWidth := maxChannelWidth(cfg)
	var data [][]string
	for _, c := range enriched {
		data = append(data, []string{
			strconv.Itoa(c.Rank),
			internal.TruncateChannel(c.Channel, maxWidth),
			internal.FormatCount(c.Users),
			internal.FormatCount(c.Sessions),
			optionalFloat(c.BounceRate, fmtFloat),
			optionalFloat(c.ConversionRate, fmtFloat),
			fmtFloat(c.PerformanceScore),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func printEventsCSV(events *schema.EventAnalysis, cfg *schema.Config) error {
	file, err := selectOutputFile(cfg.OutputFile)
	if err != nil {
		return err
	}
	defer func() {
		if file != os.Stdout {
			_ = file.Close()
			fmt.Fprintf(os.Stderr, "Wrote CSV to %s\n", cfg.OutputFile)
		}
	}()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"rank", "event", "count", "category", "conversion_intent"}); err != nil {
		return err
	}
	for i, event := range events.TopEvents {
		rec := []string{
			strconv.Itoa(i + 1),
			event.Event,
			strconv.FormatFloat(event.Count, 'f', 0, 64),
			core.EventCategory(event.Event),
			strconv.FormatBool(core.IsConversionEvent(event.Event)),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func printEventsTable(events *schema.EventAnalysis, cfg *schema.Config) error {
	fmt.Printf("🧮 Events: %s total across %d distinct types\n\n",
		internal.FormatCount(events.Summary.TotalEvents), events.Summary.UniqueEventTypes)

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Rank", "Event", "Count", "Category", "Conversion"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxWidth := maxChannelWidth(cfg)
	var data [][]string
	for i, event := range events.TopEvents {
		category := core.EventCategory(event.Event)
		if category == "" {
			category = "-"
		}
		conversion := "no"
		if core.IsConversionEvent(event.Event) {
			conversion = "yes"
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			internal.TruncateChannel(event.Event, maxWidth),
			internal.FormatCount(event.Count),
			category,
			conversion,
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// optionalFloat formats a nullable metric, "N/A" when null.
func optionalFloat(v *float64, fmtFloat func(float64) string) string {
	if v == nil {
		return "N/A"
	}
	return fmtFloat(*v)
}
