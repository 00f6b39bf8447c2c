package core

import (
	"fmt"

	"github.com/trafficlens/trafficlens/internal"
	"github.com/trafficlens/trafficlens/schema"
)

// Rule thresholds. Conversion benchmark reflects the commonly cited 2-3%
// industry average; the bounce threshold marks where landing pages usually
// need attention.
const (
	conversionBenchmark = 3.0
	engagementFloor     = 50.0
	bounceCeiling       = 60.0
)

// insightRule inspects the computed metrics and returns at most one insight.
// Rules never fail; when a required metric is absent the rule does not fire.
type insightRule func(*schema.Metrics) *schema.Insight

// recommendationRule is the recommendation counterpart of insightRule.
type recommendationRule func(*schema.Metrics) *schema.Recommendation

// insightRules run in order; each fires independently of the others.
var insightRules = []insightRule{
	topChannelInsight,
	strongConversionInsight,
	weakConversionInsight,
	lowEngagementInsight,
}

// recommendationRules run in order; each fires independently of the others.
var recommendationRules = []recommendationRule{
	investInTopChannelRecommendation,
	conversionOptimizationRecommendation,
	reduceBounceRecommendation,
	auditUnderperformersRecommendation,
}

// EvaluateInsights runs every insight rule in order and collects the ones
// that fire.
func EvaluateInsights(m *schema.Metrics) []schema.Insight {
	var insights []schema.Insight
	for _, rule := range insightRules {
		if insight := rule(m); insight != nil {
			insights = append(insights, *insight)
		}
	}
	return insights
}

// EvaluateRecommendations runs every recommendation rule in order and
// collects the ones that fire.
func EvaluateRecommendations(m *schema.Metrics) []schema.Recommendation {
	var recommendations []schema.Recommendation
	for _, rule := range recommendationRules {
		if rec := rule(m); rec != nil {
			recommendations = append(recommendations, *rec)
		}
	}
	return recommendations
}

func topChannelInsight(m *schema.Metrics) *schema.Insight {
	if len(m.Channels.TopPerformers) == 0 {
		return nil
	}
	top := m.Channels.TopPerformers[0]
	return &schema.Insight{
		Category: "Traffic",
		Severity: schema.SeverityPositive,
		Title:    "Top Traffic Source Identified",
		Description: fmt.Sprintf("%s drives the most users to your site with %s visitors.",
			top.Channel, internal.FormatCount(top.Users)),
	}
}

func strongConversionInsight(m *schema.Metrics) *schema.Insight {
	if m.Summary.ConversionRate <= conversionBenchmark {
		return nil
	}
	return &schema.Insight{
		Category: "Conversion",
		Severity: schema.SeverityPositive,
		Title:    "Strong Conversion Rate",
		Description: fmt.Sprintf("Your %s conversion rate is above the industry average of 2-3%%.",
			internal.FormatRate(m.Summary.ConversionRate)),
	}
}

func weakConversionInsight(m *schema.Metrics) *schema.Insight {
	if m.Summary.ConversionRate <= 0 || m.Summary.ConversionRate > conversionBenchmark {
		return nil
	}
	return &schema.Insight{
		Category: "Conversion",
		Severity: schema.SeverityWarning,
		Title:    "Conversion Rate Optimization Needed",
		Description: fmt.Sprintf("Your %s conversion rate has room for improvement. Consider CRO testing.",
			internal.FormatRate(m.Summary.ConversionRate)),
	}
}

func lowEngagementInsight(m *schema.Metrics) *schema.Insight {
	if m.Behavior.Engagement.EngagementRate >= engagementFloor {
		return nil
	}
	return &schema.Insight{
		Category:    "Engagement",
		Severity:    schema.SeverityCritical,
		Title:       "High Bounce Rate Alert",
		Description: "More than half of visitors leave without engaging. Review landing page relevance and load times.",
	}
}

func investInTopChannelRecommendation(m *schema.Metrics) *schema.Recommendation {
	if len(m.Channels.TopPerformers) == 0 {
		return nil
	}
	top := m.Channels.TopPerformers[0]
	return &schema.Recommendation{
		Priority:       schema.PriorityHigh,
		Category:       "Traffic Acquisition",
		Title:          fmt.Sprintf("Increase investment in %s", top.Channel),
		Description:    "This channel shows the best performance. Consider increasing budget or content creation for this source.",
		ExpectedImpact: "Potential 15-25% increase in quality traffic",
	}
}

func conversionOptimizationRecommendation(m *schema.Metrics) *schema.Recommendation {
	if m.Summary.ConversionRate >= conversionBenchmark {
		return nil
	}
	return &schema.Recommendation{
		Priority:       schema.PriorityHigh,
		Category:       "Conversion Optimization",
		Title:          "Implement Conversion Rate Optimization",
		Description:    "A/B test landing pages, simplify conversion forms, and add trust signals near CTAs.",
		ExpectedImpact: "Potential 0.5-1% improvement in conversion rate",
	}
}

func reduceBounceRecommendation(m *schema.Metrics) *schema.Recommendation {
	if m.Summary.AvgBounceRate <= bounceCeiling {
		return nil
	}
	return &schema.Recommendation{
		Priority:       schema.PriorityMedium,
		Category:       "User Experience",
		Title:          "Reduce Bounce Rate",
		Description:    "Improve page load speed, ensure mobile optimization, and enhance above-the-fold content.",
		ExpectedImpact: "Potential 10-15% reduction in bounce rate",
	}
}

func auditUnderperformersRecommendation(m *schema.Metrics) *schema.Recommendation {
	if len(m.Channels.Underperformers) == 0 {
		return nil
	}
	return &schema.Recommendation{
		Priority:       schema.PriorityMedium,
		Category:       "Channel Optimization",
		Title:          "Review Underperforming Channels",
		Description:    "Audit landing pages and targeting for channels with high bounce rates. Consider pausing or reallocating budget.",
		ExpectedImpact: "Better ROI on marketing spend",
	}
}
