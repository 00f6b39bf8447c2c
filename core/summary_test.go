package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trafficlens/trafficlens/schema"
)

// fullDataset mirrors a typical two-row export with every canonical column.
func fullDataset() *schema.Dataset {
	return &schema.Dataset{
		Columns: schema.ColumnSet{
			schema.ColSource:             true,
			schema.ColMedium:             true,
			schema.ColSourceMedium:       true,
			schema.ColUsers:              true,
			schema.ColSessions:           true,
			schema.ColPageviews:          true,
			schema.ColBounceRate:         true,
			schema.ColAvgSessionDuration: true,
			schema.ColConversions:        true,
			schema.ColRevenue:            true,
			schema.ColDate:               true,
		},
		Rows: []schema.Record{
			{
				Source: "google", Medium: "organic", SourceMedium: "google / organic",
				Date: "2024-01-01", Users: 100, Sessions: 120, Pageviews: 300,
				BounceRate: 40, AvgSessionDuration: 90, Conversions: 5, Revenue: 500,
			},
			{
				Source: "direct", Medium: "none", SourceMedium: "direct / none",
				Date: "2024-01-02", Users: 50, Sessions: 50, Pageviews: 80,
				BounceRate: 60, AvgSessionDuration: 45, Conversions: 1, Revenue: 100,
			},
		},
	}
}

func TestSummarizeDataset_FullExport(t *testing.T) {
	summary := SummarizeDataset(fullDataset())

	assert.Equal(t, 150.0, summary.TotalUsers)
	assert.Equal(t, 170.0, summary.TotalSessions)
	assert.Equal(t, 380.0, summary.TotalPageviews)
	assert.Equal(t, 6.0, summary.TotalConversions)
	assert.Equal(t, 600.0, summary.TotalRevenue)
	assert.Equal(t, 50.0, summary.AvgBounceRate)
	assert.Equal(t, 67.5, summary.AvgSessionDuration)
	assert.Equal(t, 2.24, summary.PagesPerSession) // 380/170 rounded
	assert.Equal(t, 3.53, summary.ConversionRate)  // 6/170*100 rounded
	assert.Equal(t, "2024-01-01", summary.DateRange.Start)
	assert.Equal(t, "2024-01-02", summary.DateRange.End)
}

func TestSummarizeDataset_MissingColumnsDefaultToZero(t *testing.T) {
	ds := &schema.Dataset{
		Columns: schema.ColumnSet{schema.ColUsers: true},
		Rows:    []schema.Record{{Users: 10}, {Users: 20}},
	}
	summary := SummarizeDataset(ds)

	assert.Equal(t, 30.0, summary.TotalUsers)
	assert.Zero(t, summary.TotalSessions)
	assert.Zero(t, summary.TotalRevenue)
	assert.Zero(t, summary.AvgBounceRate)
	assert.Zero(t, summary.PagesPerSession)
	assert.Zero(t, summary.ConversionRate)
	assert.Equal(t, "N/A", summary.DateRange.Start)
	assert.Equal(t, "N/A", summary.DateRange.End)
}

func TestSummarizeDataset_ZeroSessionsGuardsRatios(t *testing.T) {
	ds := &schema.Dataset{
		Columns: schema.ColumnSet{
			schema.ColSessions:    true,
			schema.ColPageviews:   true,
			schema.ColConversions: true,
		},
		Rows: []schema.Record{{Sessions: 0, Pageviews: 100, Conversions: 5}},
	}
	summary := SummarizeDataset(ds)

	assert.Zero(t, summary.PagesPerSession)
	assert.Zero(t, summary.ConversionRate)
}

func TestAnalyze_NilDataset(t *testing.T) {
	metrics, err := Analyze(nil)
	assert.Nil(t, metrics)
	assert.ErrorIs(t, err, ErrNilDataset)
}

func TestAnalyze_JoinsAllStages(t *testing.T) {
	metrics, err := Analyze(fullDataset())
	assert.NoError(t, err)
	assert.Equal(t, 150.0, metrics.Summary.TotalUsers)
	assert.True(t, metrics.Channels.Available)
	assert.False(t, metrics.Events.Available)
	assert.Equal(t, 170.0, metrics.Behavior.Sessions.TotalSessions)
}
