package core

import (
	"sort"

	"github.com/trafficlens/trafficlens/schema"
)

// channelGroupColumn picks the grouping key: the combined source/medium when
// the export carries it, the bare source otherwise. The second return value
// is false when the export has neither.
func channelGroupColumn(ds *schema.Dataset) (schema.Column, bool) {
	switch {
	case ds.Has(schema.ColSourceMedium):
		return schema.ColSourceMedium, true
	case ds.Has(schema.ColSource):
		return schema.ColSource, true
	default:
		return "", false
	}
}

// channelAccum accumulates one group's rows before the aggregate is built.
type channelAccum struct {
	users       float64
	sessions    float64
	pageviews   float64
	conversions float64
	revenue     float64
	bounceSum   float64
	durationSum float64
	rows        int
}

// AggregateChannels groups rows by channel, summing volume metrics and
// averaging rate metrics, then derives per-group ratios with null on zero
// denominators. Groups are ordered by total users descending; ties keep
// first-seen order, so repeated runs over the same dataset yield identical
// output.
func AggregateChannels(ds *schema.Dataset) (schema.Column, []schema.ChannelAggregate) {
	groupCol, ok := channelGroupColumn(ds)
	if !ok {
		return "", nil
	}

	accums := make(map[string]*channelAccum)
	var order []string
	for i := range ds.Rows {
		key := ds.StringAt(i, groupCol)
		acc, seen := accums[key]
		if !seen {
			acc = &channelAccum{}
			accums[key] = acc
			order = append(order, key)
		}
		r := &ds.Rows[i]
		acc.users += r.Users
		acc.sessions += r.Sessions
		acc.pageviews += r.Pageviews
		acc.conversions += r.Conversions
		acc.revenue += r.Revenue
		acc.bounceSum += r.BounceRate
		acc.durationSum += r.AvgSessionDuration
		acc.rows++
	}

	hasUsers := ds.Has(schema.ColUsers)
	hasSessions := ds.Has(schema.ColSessions)
	hasConversions := ds.Has(schema.ColConversions)

	grouped := make([]schema.ChannelAggregate, 0, len(order))
	for _, key := range order {
		acc := accums[key]
		agg := schema.ChannelAggregate{
			Channel:     key,
			Users:       acc.users,
			Sessions:    acc.sessions,
			Pageviews:   acc.pageviews,
			Conversions: acc.conversions,
			Revenue:     acc.revenue,
		}
		if ds.Has(schema.ColBounceRate) {
			agg.BounceRate = ptr(acc.bounceSum / float64(acc.rows))
		}
		if ds.Has(schema.ColAvgSessionDuration) {
			agg.AvgSessionDuration = ptr(acc.durationSum / float64(acc.rows))
		}
		if hasUsers && hasSessions && acc.users > 0 {
			agg.SessionsPerUser = ptr(acc.sessions / acc.users)
		}
		if hasConversions && hasSessions && acc.sessions > 0 {
			agg.ConversionRate = ptr(acc.conversions / acc.sessions * 100)
		}
		grouped = append(grouped, agg)
	}

	sort.SliceStable(grouped, func(i, j int) bool {
		return grouped[i].Users > grouped[j].Users
	})
	return groupCol, grouped
}

// AnalyzeChannels produces the full grouped channel analysis. When the export
// has neither source nor medium data the analysis is marked unavailable
// instead of failing.
func AnalyzeChannels(ds *schema.Dataset) schema.ChannelAnalysis {
	groupCol, grouped := AggregateChannels(ds)
	if groupCol == "" {
		return schema.ChannelAnalysis{Available: false}
	}

	analysis := schema.ChannelAnalysis{
		Available:       true,
		GroupedBy:       groupCol,
		ByChannel:       grouped,
		TopPerformers:   topPerformers(grouped),
		Underperformers: underperformers(grouped),
		Quality:         trafficQuality(grouped),
	}
	if ds.Has(schema.ColUsers) {
		analysis.Distribution = channelDistribution(grouped)
	}
	return analysis
}

// EnrichChannels adds rank and composite score to the grouped aggregates,
// keeping at most limit entries.
func EnrichChannels(grouped []schema.ChannelAggregate, limit int) []schema.EnrichedChannelResult {
	if limit > 0 && len(grouped) > limit {
		grouped = grouped[:limit]
	}
	output := make([]schema.EnrichedChannelResult, len(grouped))
	for i := range grouped {
		output[i] = schema.EnrichedChannelResult{
			Rank:             i + 1,
			PerformanceScore: PerformanceScore(&grouped[i]),
			ChannelAggregate: grouped[i],
		}
	}
	return output
}
