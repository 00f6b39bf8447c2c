package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trafficlens/trafficlens/schema"
)

func TestAnalyzeBehavior_FullExport(t *testing.T) {
	behavior := AnalyzeBehavior(fullDataset())

	assert.Equal(t, 2.24, behavior.Engagement.AvgPagesPerSession)
	assert.Equal(t, 67.5, behavior.Engagement.AvgSessionDuration)
	assert.Equal(t, 50.0, behavior.Engagement.EngagementRate)

	assert.Equal(t, 170.0, behavior.Sessions.TotalSessions)
	assert.Equal(t, 1.13, behavior.Sessions.SessionsPerUser) // 170/150 rounded

	assert.Equal(t, 1.13, behavior.Retention.ReturningUserIndicator)

	assert.Equal(t, 2.24, behavior.Journey.AvgTouchpoints)
	assert.Equal(t, 3.53, behavior.Journey.ConversionFunnelRate)
}

func TestAnalyzeBehavior_ZeroUsersFloorsDenominator(t *testing.T) {
	ds := &schema.Dataset{
		Columns: schema.ColumnSet{schema.ColUsers: true, schema.ColSessions: true},
		Rows:    []schema.Record{{Users: 0, Sessions: 8}},
	}
	behavior := AnalyzeBehavior(ds)

	// Denominator floors at 1, so the ratio degrades to the raw session count.
	assert.Equal(t, 8.0, behavior.Sessions.SessionsPerUser)
	assert.Equal(t, 8.0, behavior.Retention.ReturningUserIndicator)
}

func TestAnalyzeBehavior_MissingBounceYieldsFullEngagement(t *testing.T) {
	ds := &schema.Dataset{
		Columns: schema.ColumnSet{schema.ColUsers: true},
		Rows:    []schema.Record{{Users: 10}},
	}
	behavior := AnalyzeBehavior(ds)
	// Mean bounce defaults to zero when the column is absent.
	assert.Equal(t, 100.0, behavior.Engagement.EngagementRate)
}
