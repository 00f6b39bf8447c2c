package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trafficlens/trafficlens/schema"
)

func buildTestReport(t *testing.T, ds *schema.Dataset) *schema.Report {
	t.Helper()
	metrics, err := Analyze(ds)
	require.NoError(t, err)
	cfg := &schema.Config{Title: schema.DefaultReportTitle}
	return BuildReport(metrics, cfg)
}

func TestBuildReport_SectionOrderIsFixed(t *testing.T) {
	rep := buildTestReport(t, fullDataset())

	assert.NotEmpty(t, rep.ID)
	assert.Equal(t, schema.DefaultReportTitle, rep.Title)
	assert.False(t, rep.GeneratedAt.IsZero())

	require.Len(t, rep.Sections, 7)
	ids := make([]string, len(rep.Sections))
	for i, section := range rep.Sections {
		ids[i] = section.ID
	}
	assert.Equal(t, []string{
		schema.SectionExecutiveSummary,
		schema.SectionTrafficOverview,
		schema.SectionSourceMedium,
		schema.SectionUserBehavior,
		schema.SectionEvents,
		schema.SectionInsights,
		schema.SectionRecommendations,
	}, ids)
}

func TestBuildReport_ExecutiveSummaryKPIs(t *testing.T) {
	rep := buildTestReport(t, fullDataset())
	summary := rep.Sections[0]

	require.Len(t, summary.KPIs, 6)
	assert.Equal(t, "Total Users", summary.KPIs[0].Name)
	assert.Equal(t, "150", summary.KPIs[0].Value)
	assert.Equal(t, "Conversion Rate", summary.KPIs[2].Name)
	assert.Equal(t, "3.53%", summary.KPIs[2].Value)
	assert.Equal(t, "Total Revenue", summary.KPIs[5].Name)
	assert.Equal(t, "$600.00", summary.KPIs[5].Value)

	assert.Contains(t, summary.Description, "2024-01-01 to 2024-01-02")
}

func TestBuildReport_AllZeroRevenueFormats(t *testing.T) {
	ds := &schema.Dataset{
		Columns: schema.ColumnSet{schema.ColRevenue: true, schema.ColUsers: true},
		Rows:    []schema.Record{{Users: 1, Revenue: 0}},
	}
	rep := buildTestReport(t, ds)
	assert.Equal(t, "$0.00", rep.Sections[0].KPIs[5].Value)
}

func TestBuildReport_TrafficOverviewTable(t *testing.T) {
	rep := buildTestReport(t, fullDataset())
	overview := rep.Sections[1]

	require.NotNil(t, overview.Table)
	assert.Equal(t, "Channel Performance Details", overview.Table.Title)
	require.Len(t, overview.Table.Rows, 2)
	assert.Equal(t, "google / organic", overview.Table.Rows[0][0])
	require.Len(t, overview.Charts, 2)
	assert.Equal(t, "pie", overview.Charts[0].Type)
	assert.Equal(t, "bar", overview.Charts[1].Type)
}

func TestBuildReport_ChannelSectionsMarkAbsence(t *testing.T) {
	ds := &schema.Dataset{
		Columns: schema.ColumnSet{schema.ColUsers: true},
		Rows:    []schema.Record{{Users: 10}},
	}
	rep := buildTestReport(t, ds)

	assert.Equal(t, noChannelDataDescription, rep.Sections[1].Description)
	assert.Nil(t, rep.Sections[1].Table)
	assert.Equal(t, noChannelDataDescription, rep.Sections[2].Description)
	assert.Nil(t, rep.Sections[2].Data)
}

func TestBuildReport_EventAbsenceMarker(t *testing.T) {
	rep := buildTestReport(t, fullDataset())
	events := rep.Sections[4]

	assert.Equal(t, "Event Analysis", events.Title)
	assert.Equal(t, noEventDataDescription, events.Description)
	assert.Nil(t, events.TopEvents)

	// Other sections are unaffected by event absence.
	assert.NotEmpty(t, rep.Sections[5].Insights)
}

func TestBuildReport_EventsSectionWhenAvailable(t *testing.T) {
	rep := buildTestReport(t, eventDataset([]schema.Record{
		{EventName: "page_view", EventCount: 10},
		{EventName: "purchase", EventCount: 2},
	}))
	events := rep.Sections[4]

	assert.Equal(t, "Website Events Analysis", events.Title)
	require.NotNil(t, events.EventSummary)
	assert.Equal(t, 12.0, events.EventSummary.TotalEvents)
	require.NotNil(t, events.TopEvents)
	assert.Equal(t, "Most Frequent Events", events.TopEvents.Title)
	require.NotNil(t, events.ConversionEvents)
	assert.Equal(t, []string{"purchase"}, events.ConversionEvents.Data)
}

func TestBuildReport_BehaviorSection(t *testing.T) {
	rep := buildTestReport(t, fullDataset())
	behavior := rep.Sections[3]

	require.Len(t, behavior.Metrics, 4)
	assert.Equal(t, "Average Pages per Session", behavior.Metrics[0].Name)
	assert.Equal(t, "2.24", behavior.Metrics[0].Value)
	assert.NotEmpty(t, behavior.Metrics[0].Interpretation)
	require.Len(t, behavior.BehaviorNotes, 2)
}

func TestChannelExplanations_ListsUnderperformers(t *testing.T) {
	channels := &schema.ChannelAnalysis{
		Available: true,
		TopPerformers: []schema.PerformanceEntry{
			{Channel: "google / organic", Users: 1000, PerformanceScore: 25.5},
		},
		Underperformers: []schema.Underperformer{
			{Channel: "a", BounceRate: 90},
			{Channel: "b", BounceRate: 88},
			{Channel: "c", BounceRate: 86},
			{Channel: "d", BounceRate: 84},
		},
		Quality: schema.TrafficQuality{
			AvgBounceRate:         ptr(45.0),
			BestBounceRateChannel: "google / organic",
		},
	}
	explanations := channelExplanations(channels)

	require.Len(t, explanations, 3)
	assert.Equal(t, "Top Performing Channel", explanations[0].Title)
	assert.Contains(t, explanations[0].Content, "1,000 users")
	assert.Equal(t, "Traffic Quality Analysis", explanations[1].Title)
	// Only the first three underperformers are named.
	assert.Contains(t, explanations[2].Content, "a, b, c")
	assert.NotContains(t, explanations[2].Content, "d")
}
