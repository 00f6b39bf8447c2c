package render

import (
	"errors"
	"fmt"
	"os"

	"github.com/trafficlens/trafficlens/internal/parquet"
	"github.com/trafficlens/trafficlens/schema"
)

// printChannelsParquet exports ranked channels to a Parquet file. Parquet is
// a binary format, so a file path is required.
func printChannelsParquet(enriched []schema.EnrichedChannelResult, cfg *schema.Config) error {
	if cfg.OutputFile == "" {
		return errors.New("parquet output requires --output-file")
	}
	rows := parquet.FromEnriched(enriched)
	if err := parquet.WriteChannelsParquet(rows, cfg.OutputFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote Parquet to %s\n", cfg.OutputFile)
	return nil
}
