package core

import (
	"fmt"
	"strings"

	"github.com/trafficlens/trafficlens/internal"
	"github.com/trafficlens/trafficlens/schema"
)

// Plain-language interpretation bands for the behavioral metrics.

func interpretPagesPerSession(value float64) string {
	switch {
	case value < 1.5:
		return "Low engagement - users are leaving quickly. Consider improving content relevance and internal linking."
	case value < 3:
		return "Moderate engagement - users are exploring some content. Room for improvement in site navigation."
	default:
		return "Strong engagement - users are actively exploring multiple pages. Your content resonates well."
	}
}

func interpretSessionDuration(value float64) string {
	switch {
	case value < 60:
		return "Very short sessions - users may not be finding what they need quickly."
	case value < 180:
		return "Average session length - consider adding more engaging content to increase time on site."
	default:
		return "Excellent session duration - users are spending quality time with your content."
	}
}

func interpretEngagementRate(value float64) string {
	switch {
	case value < 50:
		return "Low engagement rate - more than half of visitors leave immediately. Review landing pages."
	case value < 70:
		return "Moderate engagement - room to improve landing page relevance and user experience."
	default:
		return "High engagement rate - your content successfully captures visitor interest."
	}
}

func interpretSessionsPerUser(value float64) string {
	switch {
	case value < 1.2:
		return "Most users visit only once - focus on retention strategies and email capture."
	case value < 2:
		return "Some repeat visitors - consider loyalty programs and remarketing campaigns."
	default:
		return "Strong repeat visitation - users find value in returning to your site."
	}
}

// behaviorNotes produces the short engagement observations shown alongside
// the behavioral metrics.
func behaviorNotes(b *schema.BehaviorAnalysis) []string {
	notes := make([]string, 0, 2)
	if b.Engagement.EngagementRate > 70 {
		notes = append(notes, "Your engagement rate is above industry average, indicating relevant traffic and good UX.")
	} else {
		notes = append(notes, "Consider A/B testing landing pages to improve engagement rate.")
	}
	if b.Engagement.AvgPagesPerSession > 2.5 {
		notes = append(notes, "Users are exploring your site deeply - your internal linking strategy is working.")
	} else {
		notes = append(notes, "Add more internal links and related content suggestions to increase page depth.")
	}
	return notes
}

// channelExplanations builds the narrative blocks of the source/medium deep
// dive from the classification results.
func channelExplanations(channels *schema.ChannelAnalysis) []schema.Explanation {
	var explanations []schema.Explanation

	if len(channels.TopPerformers) > 0 {
		top := channels.TopPerformers[0]
		explanations = append(explanations, schema.Explanation{
			Title: "Top Performing Channel",
			Content: fmt.Sprintf("%s is your top traffic source with %s users. "+
				"This channel has a performance score of %s, indicating strong engagement and conversion metrics. "+
				"Consider increasing investment in this channel to drive more qualified traffic.",
				top.Channel, internal.FormatCount(top.Users), internal.FormatDecimal(top.PerformanceScore)),
		})
	}

	quality := channels.Quality
	if quality.AvgBounceRate != nil || quality.AvgConversionRate != nil {
		bestConv := quality.BestConversionChannel
		if bestConv == "" {
			bestConv = "N/A"
		}
		bestBounce := quality.BestBounceRateChannel
		if bestBounce == "" {
			bestBounce = "N/A"
		}
		explanations = append(explanations, schema.Explanation{
			Title: "Traffic Quality Analysis",
			Content: fmt.Sprintf("Best Quality Traffic: %s shows the highest conversion rate, "+
				"making it your most valuable traffic source for driving business outcomes. "+
				"Engagement Leader: %s has the lowest bounce rate, with channels averaging %s overall.",
				bestConv, bestBounce, internal.FormatOptionalRate(quality.AvgBounceRate)),
		})
	}

	if len(channels.Underperformers) > 0 {
		names := make([]string, 0, 3)
		for i, u := range channels.Underperformers {
			if i == 3 {
				break
			}
			names = append(names, u.Channel)
		}
		explanations = append(explanations, schema.Explanation{
			Title: "Channels Requiring Attention",
			Content: fmt.Sprintf("The following channels show concerning metrics: %s. "+
				"These sources have higher than average bounce rates, suggesting potential issues with "+
				"landing page relevance, traffic quality, or user intent mismatch. "+
				"Consider reviewing landing pages and audience targeting for these channels.",
				strings.Join(names, ", ")),
		})
	}

	return explanations
}
