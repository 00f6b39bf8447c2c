package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trafficlens/trafficlens/schema"
)

func TestPerformanceScore_AllMetricsPresent(t *testing.T) {
	agg := &schema.ChannelAggregate{
		ConversionRate:  ptr(5.0),
		SessionsPerUser: ptr(2.0),
		BounceRate:      ptr(40.0),
	}
	// 5*0.4 + 2*0.3 + (100-40)*0.3 = 2 + 0.6 + 18
	assert.Equal(t, 20.6, PerformanceScore(agg))
}

func TestPerformanceScore_AbsentMetricsContributeNothing(t *testing.T) {
	assert.Zero(t, PerformanceScore(&schema.ChannelAggregate{}))

	onlyBounce := &schema.ChannelAggregate{BounceRate: ptr(100.0)}
	assert.Zero(t, PerformanceScore(onlyBounce))
}

func TestTopPerformers_CapsAtFive(t *testing.T) {
	grouped := make([]schema.ChannelAggregate, 7)
	for i := range grouped {
		grouped[i] = schema.ChannelAggregate{Channel: string(rune('a' + i)), Users: float64(100 - i)}
	}
	performers := topPerformers(grouped)
	require.Len(t, performers, 5)
	assert.Equal(t, "a", performers[0].Channel)
	assert.Equal(t, 100.0, performers[0].Users)
}

func TestUnderperformers_FlagsHighBounceOutliers(t *testing.T) {
	grouped := []schema.ChannelAggregate{
		{Channel: "steady-1", BounceRate: ptr(40.0)},
		{Channel: "steady-2", BounceRate: ptr(42.0)},
		{Channel: "steady-3", BounceRate: ptr(41.0)},
		{Channel: "leaky", BounceRate: ptr(90.0)},
	}
	flagged := underperformers(grouped)

	require.Len(t, flagged, 1)
	assert.Equal(t, "leaky", flagged[0].Channel)
	assert.Equal(t, "High bounce rate", flagged[0].Issue)
	assert.Equal(t, 90.0, flagged[0].BounceRate)
}

func TestUnderperformers_EmptyWhenUniform(t *testing.T) {
	grouped := []schema.ChannelAggregate{
		{Channel: "a", BounceRate: ptr(50.0)},
		{Channel: "b", BounceRate: ptr(50.0)},
	}
	// Zero spread means no group can exceed mean + stddev.
	assert.Empty(t, underperformers(grouped))
}

func TestUnderperformers_NoBounceData(t *testing.T) {
	grouped := []schema.ChannelAggregate{{Channel: "a"}, {Channel: "b"}}
	assert.Empty(t, underperformers(grouped))
}

func TestUnderperformers_SortedByBounceDescending(t *testing.T) {
	grouped := []schema.ChannelAggregate{
		{Channel: "low-1", BounceRate: ptr(10.0)},
		{Channel: "low-2", BounceRate: ptr(12.0)},
		{Channel: "low-3", BounceRate: ptr(11.0)},
		{Channel: "low-4", BounceRate: ptr(9.0)},
		{Channel: "bad", BounceRate: ptr(80.0)},
		{Channel: "worse", BounceRate: ptr(95.0)},
	}
	flagged := underperformers(grouped)

	require.Len(t, flagged, 2)
	assert.Equal(t, "worse", flagged[0].Channel)
	assert.Equal(t, "bad", flagged[1].Channel)
}

func TestTrafficQuality_BestChannelsAndAverages(t *testing.T) {
	grouped := []schema.ChannelAggregate{
		{Channel: "a", BounceRate: ptr(30.0), ConversionRate: ptr(2.0)},
		{Channel: "b", BounceRate: ptr(50.0), ConversionRate: ptr(6.0)},
	}
	quality := trafficQuality(grouped)

	require.NotNil(t, quality.AvgBounceRate)
	assert.Equal(t, 40.0, *quality.AvgBounceRate)
	require.NotNil(t, quality.AvgConversionRate)
	assert.Equal(t, 4.0, *quality.AvgConversionRate)
	assert.Equal(t, "a", quality.BestBounceRateChannel)
	assert.Equal(t, "b", quality.BestConversionChannel)
}

func TestTrafficQuality_TiesKeepFirstOccurrence(t *testing.T) {
	grouped := []schema.ChannelAggregate{
		{Channel: "first", BounceRate: ptr(30.0), ConversionRate: ptr(5.0)},
		{Channel: "second", BounceRate: ptr(30.0), ConversionRate: ptr(5.0)},
	}
	quality := trafficQuality(grouped)
	assert.Equal(t, "first", quality.BestBounceRateChannel)
	assert.Equal(t, "first", quality.BestConversionChannel)
}

func TestTrafficQuality_OmitsAbsentMetrics(t *testing.T) {
	quality := trafficQuality([]schema.ChannelAggregate{{Channel: "a"}})
	assert.Nil(t, quality.AvgBounceRate)
	assert.Nil(t, quality.AvgConversionRate)
	assert.Empty(t, quality.BestBounceRateChannel)
}
