package core

import (
	"math"
	"sort"

	"github.com/trafficlens/trafficlens/schema"
)

// Composite score weights. The bounce-rate weight is negative: the metric is
// inverted as (100 - bounce) so lower bounce contributes positively.
const (
	weightConversionRate  = 0.4
	weightSessionsPerUser = 0.3
	weightBounceRate      = -0.3
)

// topPerformerLimit and underperformerLimit cap both classification lists.
const (
	topPerformerLimit   = 5
	underperformerLimit = 5
)

// PerformanceScore computes the composite channel score from the group's
// derived ratios, rounded to two decimals. A ratio missing from the group
// contributes nothing, so a group with no contributing metrics scores zero.
func PerformanceScore(agg *schema.ChannelAggregate) float64 {
	var score float64
	if agg.ConversionRate != nil {
		score += *agg.ConversionRate * weightConversionRate
	}
	if agg.SessionsPerUser != nil {
		score += *agg.SessionsPerUser * weightSessionsPerUser
	}
	if agg.BounceRate != nil {
		score += (100 - *agg.BounceRate) * math.Abs(weightBounceRate)
	}
	return round2(score)
}

// topPerformers annotates the first groups of the users-sorted aggregate list
// with their composite scores.
func topPerformers(grouped []schema.ChannelAggregate) []schema.PerformanceEntry {
	n := min(len(grouped), topPerformerLimit)
	performers := make([]schema.PerformanceEntry, 0, n)
	for i := range n {
		performers = append(performers, schema.PerformanceEntry{
			Channel:          grouped[i].Channel,
			Users:            grouped[i].Users,
			PerformanceScore: PerformanceScore(&grouped[i]),
		})
	}
	return performers
}

// underperformers flags groups whose bounce rate exceeds the population mean
// plus one standard deviation across all groups, keeping the highest-bounce
// offenders. Without bounce data the list is empty, not an error.
func underperformers(grouped []schema.ChannelAggregate) []schema.Underperformer {
	var bounces []float64
	for i := range grouped {
		if grouped[i].BounceRate != nil {
			bounces = append(bounces, *grouped[i].BounceRate)
		}
	}
	if len(bounces) == 0 {
		return nil
	}

	threshold := mean(bounces) + stddev(bounces)
	var flagged []schema.Underperformer
	for i := range grouped {
		if grouped[i].BounceRate == nil || *grouped[i].BounceRate <= threshold {
			continue
		}
		flagged = append(flagged, schema.Underperformer{
			Channel:    grouped[i].Channel,
			Issue:      "High bounce rate",
			BounceRate: round2(*grouped[i].BounceRate),
		})
	}

	sort.SliceStable(flagged, func(i, j int) bool {
		return flagged[i].BounceRate > flagged[j].BounceRate
	})
	if len(flagged) > underperformerLimit {
		flagged = flagged[:underperformerLimit]
	}
	return flagged
}

// channelDistribution computes each group's share of the users total. A zero
// total yields 0% for every entry rather than a fault.
func channelDistribution(grouped []schema.ChannelAggregate) []schema.DistributionEntry {
	var total float64
	for i := range grouped {
		total += grouped[i].Users
	}

	distribution := make([]schema.DistributionEntry, 0, len(grouped))
	for i := range grouped {
		entry := schema.DistributionEntry{
			Channel: grouped[i].Channel,
			Value:   grouped[i].Users,
		}
		if total > 0 {
			entry.Percentage = round2(grouped[i].Users / total * 100)
		}
		distribution = append(distribution, entry)
	}
	return distribution
}

// trafficQuality averages the grouped rate metrics and identifies the
// lowest-bounce and highest-conversion channels, breaking ties by first
// occurrence in aggregate order. Each field is omitted, not faulted, when its
// source metric is absent from every group.
func trafficQuality(grouped []schema.ChannelAggregate) schema.TrafficQuality {
	var quality schema.TrafficQuality

	var bounceSum float64
	bounceCount := 0
	bestBounce := math.Inf(1)
	for i := range grouped {
		if grouped[i].BounceRate == nil {
			continue
		}
		bounceSum += *grouped[i].BounceRate
		bounceCount++
		if *grouped[i].BounceRate < bestBounce {
			bestBounce = *grouped[i].BounceRate
			quality.BestBounceRateChannel = grouped[i].Channel
		}
	}
	if bounceCount > 0 {
		quality.AvgBounceRate = ptr(round2(bounceSum / float64(bounceCount)))
	}

	var convSum float64
	convCount := 0
	bestConv := math.Inf(-1)
	for i := range grouped {
		if grouped[i].ConversionRate == nil {
			continue
		}
		convSum += *grouped[i].ConversionRate
		convCount++
		if *grouped[i].ConversionRate > bestConv {
			bestConv = *grouped[i].ConversionRate
			quality.BestConversionChannel = grouped[i].Channel
		}
	}
	if convCount > 0 {
		quality.AvgConversionRate = ptr(round2(convSum / float64(convCount)))
	}

	return quality
}

// mean is the arithmetic mean; zero for an empty slice.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stddev is the population standard deviation; zero for an empty slice.
func stddev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	var sq float64
	for _, v := range values {
		sq += (v - m) * (v - m)
	}
	return math.Sqrt(sq / float64(len(values)))
}
