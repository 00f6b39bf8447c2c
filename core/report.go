package core

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/trafficlens/trafficlens/internal"
	"github.com/trafficlens/trafficlens/schema"
)

// Fixed copy used by the assembled sections.
const (
	trafficOverviewDescription = "This section breaks down your website traffic by acquisition source and medium. " +
		"Understanding where your visitors come from helps optimize marketing spend and identify high-value traffic channels."
	userBehaviorDescription = "Understanding how users interact with your website is crucial for optimization. " +
		"This section analyzes engagement patterns, session behavior, and user journey metrics."
	eventsDescription = "Events track specific user interactions on your website beyond pageviews. " +
		"This includes clicks, form submissions, video plays, downloads, and conversion actions."
	noChannelDataDescription = "No source/medium data available in this export."
	noEventDataDescription   = "No event data available in this export."
)

// maxOverviewChannels caps the bar chart in the traffic overview section.
const maxOverviewChannels = 10

// BuildReport packages the computed metrics into the fixed section structure
// consumed by the renderers. Display values are pre-formatted here so every
// renderer shows identical numbers.
func BuildReport(m *schema.Metrics, cfg *schema.Config) *schema.Report {
	return &schema.Report{
		ID:          uuid.NewString(),
		Title:       cfg.Title,
		GeneratedAt: time.Now(),
		Sections: []schema.Section{
			executiveSummarySection(m),
			trafficOverviewSection(m),
			sourceMediumSection(m),
			userBehaviorSection(m),
			eventsSection(m),
			insightsSection(m),
			recommendationsSection(m),
		},
	}
}

func executiveSummarySection(m *schema.Metrics) schema.Section {
	s := m.Summary
	return schema.Section{
		ID:          schema.SectionExecutiveSummary,
		Title:       "Executive Summary",
		Description: summaryNarrative(&s),
		KPIs: []schema.KPI{
			{
				Name:        "Total Users",
				Value:       internal.FormatCount(s.TotalUsers),
				Description: "Unique visitors to your website during this period",
			},
			{
				Name:        "Total Sessions",
				Value:       internal.FormatCount(s.TotalSessions),
				Description: "Total number of visits (a user can have multiple sessions)",
			},
			{
				Name:        "Conversion Rate",
				Value:       internal.FormatRate(s.ConversionRate),
				Description: "Percentage of sessions that resulted in a conversion",
			},
			{
				Name:        "Bounce Rate",
				Value:       internal.FormatRate(s.AvgBounceRate),
				Description: "Percentage of single-page sessions (lower is generally better)",
			},
			{
				Name:        "Pages/Session",
				Value:       internal.FormatDecimal(s.PagesPerSession),
				Description: "Average number of pages viewed per session",
			},
			{
				Name:        "Total Revenue",
				Value:       internal.FormatMoney(s.TotalRevenue),
				Description: "Total revenue generated during this period",
			},
		},
	}
}

// summaryNarrative builds the executive summary paragraph.
func summaryNarrative(s *schema.SummaryMetrics) string {
	return fmt.Sprintf("During the reporting period (%s to %s), your website attracted %s users who initiated %s sessions. "+
		"Users viewed an average of %s pages per session, with an overall bounce rate of %s. "+
		"The conversion rate stood at %s, generating %s in total revenue.",
		s.DateRange.Start, s.DateRange.End,
		internal.FormatCount(s.TotalUsers), internal.FormatCount(s.TotalSessions),
		internal.FormatDecimal(s.PagesPerSession), internal.FormatRate(s.AvgBounceRate),
		internal.FormatRate(s.ConversionRate), internal.FormatMoney(s.TotalRevenue))
}

func trafficOverviewSection(m *schema.Metrics) schema.Section {
	section := schema.Section{
		ID:    schema.SectionTrafficOverview,
		Title: "Traffic Overview by Source/Medium",
	}
	if !m.Channels.Available {
		section.Description = noChannelDataDescription
		return section
	}
	section.Description = trafficOverviewDescription

	barData := m.Channels.ByChannel
	if len(barData) > maxOverviewChannels {
		barData = barData[:maxOverviewChannels]
	}
	section.Charts = []schema.Chart{
		{Type: "pie", Title: "Traffic Distribution by Channel", Data: m.Channels.Distribution},
		{Type: "bar", Title: "Users by Source/Medium", Data: barData},
	}

	rows := make([][]string, 0, len(m.Channels.ByChannel))
	for i := range m.Channels.ByChannel {
		agg := &m.Channels.ByChannel[i]
		rows = append(rows, []string{
			agg.Channel,
			internal.FormatCount(agg.Users),
			internal.FormatCount(agg.Sessions),
			internal.FormatOptionalRate(agg.BounceRate),
			internal.FormatOptionalRate(agg.ConversionRate),
		})
	}
	section.Table = &schema.Table{
		Title:   "Channel Performance Details",
		Columns: []string{"Channel", "Users", "Sessions", "Bounce Rate", "Conv. Rate"},
		Rows:    rows,
	}
	return section
}

func sourceMediumSection(m *schema.Metrics) schema.Section {
	section := schema.Section{
		ID:    schema.SectionSourceMedium,
		Title: "Source/Medium Deep Dive",
	}
	if !m.Channels.Available {
		section.Description = noChannelDataDescription
		return section
	}
	section.Description = "Detailed analysis of traffic acquisition channels with performance insights"
	section.Explanations = channelExplanations(&m.Channels)
	section.Data = &schema.ChannelDeepDive{
		TopPerformers:   m.Channels.TopPerformers,
		Underperformers: m.Channels.Underperformers,
		Quality:         m.Channels.Quality,
	}
	return section
}

func userBehaviorSection(m *schema.Metrics) schema.Section {
	engagement := m.Behavior.Engagement
	sessions := m.Behavior.Sessions
	return schema.Section{
		ID:          schema.SectionUserBehavior,
		Title:       "User Behavior Analysis",
		Description: userBehaviorDescription,
		Metrics: []schema.MetricReading{
			{
				Name:           "Average Pages per Session",
				Value:          internal.FormatDecimal(engagement.AvgPagesPerSession),
				Interpretation: interpretPagesPerSession(engagement.AvgPagesPerSession),
			},
			{
				Name:           "Average Session Duration",
				Value:          internal.FormatSeconds(engagement.AvgSessionDuration),
				Interpretation: interpretSessionDuration(engagement.AvgSessionDuration),
			},
			{
				Name:           "Engagement Rate",
				Value:          internal.FormatRate(engagement.EngagementRate),
				Interpretation: interpretEngagementRate(engagement.EngagementRate),
			},
			{
				Name:           "Sessions per User",
				Value:          internal.FormatDecimal(sessions.SessionsPerUser),
				Interpretation: interpretSessionsPerUser(sessions.SessionsPerUser),
			},
		},
		BehaviorNotes: behaviorNotes(&m.Behavior),
	}
}

func eventsSection(m *schema.Metrics) schema.Section {
	section := schema.Section{
		ID:    schema.SectionEvents,
		Title: "Website Events Analysis",
	}
	if !m.Events.Available {
		section.Title = "Event Analysis"
		section.Description = noEventDataDescription
		return section
	}
	section.Description = eventsDescription
	summary := m.Events.Summary
	section.EventSummary = &summary
	section.TopEvents = &schema.TopEventsBlock{
		Title:       "Most Frequent Events",
		Description: "These events occur most often on your website",
		Data:        m.Events.TopEvents,
	}
	section.ConversionEvents = &schema.ConversionEventsBlock{
		Title:       "Conversion Events",
		Description: "Events that indicate valuable user actions",
		Data:        m.Events.ConversionEvents,
	}
	categories := m.Events.Categories
	section.EventCategories = &categories
	return section
}

func insightsSection(m *schema.Metrics) schema.Section {
	return schema.Section{
		ID:          schema.SectionInsights,
		Title:       "Key Insights & Findings",
		Description: "Automated analysis of your data has revealed these important insights:",
		Insights:    EvaluateInsights(m),
	}
}

func recommendationsSection(m *schema.Metrics) schema.Section {
	return schema.Section{
		ID:              schema.SectionRecommendations,
		Title:           "Actionable Recommendations",
		Description:     "Based on the analysis, here are prioritized recommendations to improve performance:",
		Recommendations: EvaluateRecommendations(m),
	}
}
