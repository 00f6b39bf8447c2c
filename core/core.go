// Package core computes analytics aggregates, channel classifications and
// rule-based insights from a normalized dataset.
package core

import (
	"errors"
	"math"

	"github.com/trafficlens/trafficlens/schema"
)

// ErrNilDataset indicates a logic defect where analysis was invoked without a
// dataset. Data-level gaps (missing columns, zero denominators) never error.
var ErrNilDataset = errors.New("core: nil dataset")

// Analyze runs every analysis stage over the dataset and joins the results.
// The summary, channel and behavior/event stages are independent of each
// other and read only immutable data, so they could run concurrently; the
// rule engine consumes all of them and must come last.
func Analyze(ds *schema.Dataset) (*schema.Metrics, error) {
	if ds == nil {
		return nil, ErrNilDataset
	}
	return &schema.Metrics{
		Summary:  SummarizeDataset(ds),
		Channels: AnalyzeChannels(ds),
		Behavior: AnalyzeBehavior(ds),
		Events:   AnalyzeEvents(ds),
	}, nil
}

// round2 rounds to two decimal places, the fixed display precision of every
// derived rate and ratio.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ptr is a small helper for the nullable derived ratios.
func ptr(v float64) *float64 {
	return &v
}
