// Package parquet exports channel aggregates to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/trafficlens/trafficlens/schema"
)

// ChannelRow is the Parquet record layout for one traffic channel.
// Ratio columns are nullable because their source columns may be missing
// from the export.
type ChannelRow struct {
	// Rank is the position of the channel in the users ordering
	Rank int32 `parquet:"rank,snappy"`

	// Channel is the grouping key, typically "source / medium"
	Channel string `parquet:"channel,snappy"`

	// ExportedAt is when this export was produced
	ExportedAt time.Time `parquet:"exported_at,snappy"`

	// Users is the total users attributed to the channel
	Users float64 `parquet:"users,snappy"`

	// Sessions is the total sessions attributed to the channel
	Sessions float64 `parquet:"sessions,snappy"`

	// Pageviews is the total pageviews attributed to the channel
	Pageviews float64 `parquet:"pageviews,snappy"`

	// Conversions is the total conversions attributed to the channel
	Conversions float64 `parquet:"conversions,snappy"`

	// Revenue is the total revenue attributed to the channel
	Revenue float64 `parquet:"revenue,snappy"`

	// BounceRate is the mean bounce rate (nullable)
	BounceRate *float64 `parquet:"bounce_rate,optional,snappy"`

	// AvgSessionDuration is the mean session duration in seconds (nullable)
	AvgSessionDuration *float64 `parquet:"avg_session_duration,optional,snappy"`

	// SessionsPerUser is sessions divided by users (nullable)
	SessionsPerUser *float64 `parquet:"sessions_per_user,optional,snappy"`

	// ConversionRate is conversions per session as a percentage (nullable)
	ConversionRate *float64 `parquet:"conversion_rate,optional,snappy"`

	// PerformanceScore is the composite channel score
	PerformanceScore float64 `parquet:"performance_score,snappy"`
}

// FromEnriched converts ranked channel results into Parquet rows.
func FromEnriched(enriched []schema.EnrichedChannelResult) []ChannelRow {
	now := time.Now()
	rows := make([]ChannelRow, len(enriched))
	for i, c := range enriched {
		rows[i] = ChannelRow{
			Rank:               int32(c.Rank),
			Channel:            c.Channel,
			ExportedAt:         now,
			Users:              c.Users,
			Sessions:           c.Sessions,
			Pageviews:          c.Pageviews,
			Conversions:        c.Conversions,
			Revenue:            c.Revenue,
			BounceRate:         c.BounceRate,
			AvgSessionDuration: c.AvgSessionDuration,
			SessionsPerUser:    c.SessionsPerUser,
			ConversionRate:     c.ConversionRate,
			PerformanceScore:   c.PerformanceScore,
		}
	}
	return rows
}

// WriteChannelsParquet writes channel rows to a Parquet file. The schema is
// inferred from the ChannelRow struct tags.
func WriteChannelsParquet(rows []ChannelRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[ChannelRow](file)

	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return writer.Close()
}
