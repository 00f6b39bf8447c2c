package core

import (
	"math"

	"github.com/trafficlens/trafficlens/schema"
)

// AnalyzeBehavior computes the engagement, session, retention and journey
// indicators over the whole dataset.
//
// The scalar SessionsPerUser here floors its denominator at 1 instead of
// going null on zero the way the per-channel ratio does. The floor biases the
// value low when total users is zero, but that case implies an empty export,
// so the simplification is kept to avoid silently changing reported numbers.
func AnalyzeBehavior(ds *schema.Dataset) schema.BehaviorAnalysis {
	totalUsers := ds.Sum(schema.ColUsers)
	totalSessions := ds.Sum(schema.ColSessions)
	userFloor := math.Max(totalUsers, 1)

	return schema.BehaviorAnalysis{
		Engagement: schema.EngagementMetrics{
			AvgPagesPerSession: pagesPerSession(ds),
			AvgSessionDuration: ds.Mean(schema.ColAvgSessionDuration),
			EngagementRate:     100 - ds.Mean(schema.ColBounceRate),
		},
		Sessions: schema.SessionAnalysis{
			TotalSessions:   totalSessions,
			SessionsPerUser: round2(totalSessions / userFloor),
		},
		Retention: schema.RetentionIndicators{
			ReturningUserIndicator: round2(totalSessions / userFloor),
		},
		Journey: schema.UserJourney{
			AvgTouchpoints:       pagesPerSession(ds),
			ConversionFunnelRate: conversionRate(ds),
		},
	}
}
