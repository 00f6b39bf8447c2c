package schema

// DateRange is the string-compared min/max of the date column, or "N/A" on
// both ends when the export has no dates.
type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// SummaryMetrics holds the dataset-wide KPI scalars. Totals over an absent
// column are zero, never an error.
type SummaryMetrics struct {
	TotalUsers         float64   `json:"total_users"`
	TotalSessions      float64   `json:"total_sessions"`
	TotalPageviews     float64   `json:"total_pageviews"`
	TotalConversions   float64   `json:"total_conversions"`
	TotalRevenue       float64   `json:"total_revenue"`
	AvgBounceRate      float64   `json:"avg_bounce_rate"`
	AvgSessionDuration float64   `json:"avg_session_duration"`
	PagesPerSession    float64   `json:"pages_per_session"`
	ConversionRate     float64   `json:"conversion_rate"`
	DateRange          DateRange `json:"date_range"`
}

// ChannelAggregate is one row per distinct channel: summed volume metrics,
// averaged rate metrics, and derived ratios. Derived ratios are pointers so a
// zero denominator (or an absent source column) yields null instead of a
// divide-by-zero fault.
type ChannelAggregate struct {
	Channel            string   `json:"channel"`
	Users              float64  `json:"users"`
	Sessions           float64  `json:"sessions"`
	Pageviews          float64  `json:"pageviews"`
	Conversions        float64  `json:"conversions"`
	Revenue            float64  `json:"revenue"`
	BounceRate         *float64 `json:"bounce_rate,omitempty"`
	AvgSessionDuration *float64 `json:"avg_session_duration,omitempty"`
	SessionsPerUser    *float64 `json:"sessions_per_user,omitempty"`
	ConversionRate     *float64 `json:"conversion_rate,omitempty"`
}

// PerformanceEntry annotates a top channel with its composite score.
type PerformanceEntry struct {
	Channel          string  `json:"channel"`
	Users            float64 `json:"users"`
	PerformanceScore float64 `json:"performance_score"`
}

// Underperformer flags a channel whose bounce rate sits above the population
// mean plus one standard deviation.
type Underperformer struct {
	Channel    string  `json:"channel"`
	Issue      string  `json:"issue"`
	BounceRate float64 `json:"bounce_rate"`
}

// DistributionEntry is one channel's share of a metric total.
type DistributionEntry struct {
	Channel    string  `json:"channel"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
}

// TrafficQuality summarizes how valuable the traffic from each channel is.
// Fields stay unset when their source column is absent from the export.
type TrafficQuality struct {
	AvgBounceRate         *float64 `json:"avg_bounce_rate,omitempty"`
	BestBounceRateChannel string   `json:"best_bounce_rate_channel,omitempty"`
	AvgConversionRate     *float64 `json:"avg_conversion_rate,omitempty"`
	BestConversionChannel string   `json:"best_conversion_channel,omitempty"`
}

// ChannelAnalysis is the grouped source/medium breakdown. Available is false
// when the export has neither a source nor a medium column, in which case all
// other fields are empty.
type ChannelAnalysis struct {
	Available       bool                `json:"available"`
	GroupedBy       Column              `json:"grouped_by,omitempty"`
	ByChannel       []ChannelAggregate  `json:"by_channel,omitempty"`
	TopPerformers   []PerformanceEntry  `json:"top_performers,omitempty"`
	Underperformers []Underperformer    `json:"underperformers,omitempty"`
	Distribution    []DistributionEntry `json:"channel_distribution,omitempty"`
	Quality         TrafficQuality      `json:"quality_analysis"`
}

// EngagementMetrics are the dataset-wide engagement indicators.
type EngagementMetrics struct {
	AvgPagesPerSession float64 `json:"avg_pages_per_session"`
	AvgSessionDuration float64 `json:"avg_session_duration"`
	EngagementRate     float64 `json:"engagement_rate"`
}

// SessionAnalysis holds session volume and frequency indicators. Unlike the
// per-channel ratio, SessionsPerUser floors its denominator at 1, so a
// dataset with zero users reports zero instead of null.
type SessionAnalysis struct {
	TotalSessions   float64 `json:"total_sessions"`
	SessionsPerUser float64 `json:"sessions_per_user"`
}

// RetentionIndicators approximate repeat-visit behavior. This is a proxy, not
// a true cohort-retention measure.
type RetentionIndicators struct {
	ReturningUserIndicator float64 `json:"returning_user_indicator"`
}

// UserJourney tracks how deeply users travel before converting.
type UserJourney struct {
	AvgTouchpoints       float64 `json:"avg_touchpoints"`
	ConversionFunnelRate float64 `json:"conversion_funnel_rate"`
}

// BehaviorAnalysis joins the behavioral sub-analyses.
type BehaviorAnalysis struct {
	Engagement EngagementMetrics   `json:"engagement_metrics"`
	Sessions   SessionAnalysis     `json:"session_analysis"`
	Retention  RetentionIndicators `json:"retention_indicators"`
	Journey    UserJourney         `json:"user_journey"`
}

// EventCount is one event name with its summed occurrence count.
type EventCount struct {
	Event string  `json:"event"`
	Count float64 `json:"count"`
}

// EventSummary holds event volume totals.
type EventSummary struct {
	TotalEvents      float64 `json:"total_events"`
	UniqueEventTypes int     `json:"unique_event_types"`
}

// EventCategories buckets distinct event names by semantic category. An event
// lands in at most one bucket; names matching no category are dropped.
type EventCategories struct {
	Navigation  []string `json:"navigation"`
	Interaction []string `json:"interaction"`
	Conversion  []string `json:"conversion"`
}

// EventAnalysis is the discrete-event breakdown. Available is false when the
// export has no event_name column.
type EventAnalysis struct {
	Available        bool            `json:"available"`
	Summary          EventSummary    `json:"event_summary"`
	TopEvents        []EventCount    `json:"top_events,omitempty"`
	ConversionEvents []string        `json:"conversion_events,omitempty"`
	Categories       EventCategories `json:"engagement_events"`
}

// Metrics joins every analysis computed from one dataset. The three analyses
// are independent of each other; only the rule engine consumes all of them.
type Metrics struct {
	Summary  SummaryMetrics   `json:"summary"`
	Channels ChannelAnalysis  `json:"source_medium_analysis"`
	Behavior BehaviorAnalysis `json:"user_behavior"`
	Events   EventAnalysis    `json:"event_analysis"`
}

// EnrichedChannelResult adds presentation data to a ChannelAggregate.
type EnrichedChannelResult struct {
	Rank             int     `json:"rank"`
	PerformanceScore float64 `json:"performance_score"`
	ChannelAggregate
}
