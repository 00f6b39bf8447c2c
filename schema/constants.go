package schema

// Custom string types for type safety.
type (
	// Column represents a canonical column name in a normalized dataset.
	Column string

	// OutputMode represents the format of tabular command output.
	OutputMode string

	// RenderFormat represents a report delivery format.
	RenderFormat string

	// Severity represents how urgent an insight is.
	Severity string

	// Priority represents how important a recommendation is.
	Priority string
)

// Canonical column vocabulary shared by the loader and the analyses.
const (
	ColSource             Column = "source"
	ColMedium             Column = "medium"
	ColSourceMedium       Column = "source_medium"
	ColCampaign           Column = "campaign"
	ColUsers              Column = "users"
	ColSessions           Column = "sessions"
	ColPageviews          Column = "pageviews"
	ColBounceRate         Column = "bounce_rate"
	ColAvgSessionDuration Column = "avg_session_duration"
	ColConversions        Column = "conversions"
	ColRevenue            Column = "revenue"
	ColEventName          Column = "event_name"
	ColEventCount         Column = "event_count"
	ColDate               Column = "date"
)

// NumericColumns are the columns whose cells the loader coerces to
// non-negative floats, filling missing or unparseable values with zero.
var NumericColumns = []Column{
	ColUsers,
	ColSessions,
	ColPageviews,
	ColBounceRate,
	ColAvgSessionDuration,
	ColConversions,
	ColRevenue,
	ColEventCount,
}

// All output modes supported by tabular commands.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All report delivery formats.
const (
	FormatJSON     RenderFormat = "json"
	FormatHTML     RenderFormat = "html"
	FormatMarkdown RenderFormat = "markdown"
	FormatAll      RenderFormat = "all"
)

// Insight severities.
const (
	SeverityPositive Severity = "positive"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Recommendation priorities.
const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Fixed section identifiers of an assembled report, in rendering order.
const (
	SectionExecutiveSummary = "executive_summary"
	SectionTrafficOverview  = "traffic_overview"
	SectionSourceMedium     = "source_medium_analysis"
	SectionUserBehavior     = "user_behavior"
	SectionEvents           = "events"
	SectionInsights         = "insights"
	SectionRecommendations  = "recommendations"
)
