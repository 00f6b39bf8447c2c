package schema

import "time"

// Insight is a generated observation about the data, tagged by severity.
// Insights are produced by the rule engine and never mutated afterwards.
type Insight struct {
	Category    string   `json:"category"`
	Severity    Severity `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
}

// Recommendation is a generated action item, tagged by priority and a fixed
// qualitative impact estimate.
type Recommendation struct {
	Priority       Priority `json:"priority"`
	Category       string   `json:"category"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	ExpectedImpact string   `json:"expected_impact"`
}

// KPI is a headline number with its display value pre-formatted.
type KPI struct {
	Name        string `json:"name"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

// MetricReading is a behavioral metric paired with a plain-language
// interpretation of its value.
type MetricReading struct {
	Name           string `json:"name"`
	Value          string `json:"value"`
	Interpretation string `json:"interpretation"`
}

// Chart describes a visualization for the rendering collaborator.
type Chart struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	Data  any    `json:"data"`
}

// Table is a pre-formatted tabular block.
type Table struct {
	Title   string     `json:"title"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"data"`
}

// Explanation is a titled narrative block within a section.
type Explanation struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ChannelDeepDive carries the raw classification results of the
// source/medium section.
type ChannelDeepDive struct {
	TopPerformers   []PerformanceEntry `json:"top_performers"`
	Underperformers []Underperformer   `json:"underperformers"`
	Quality         TrafficQuality     `json:"quality_metrics"`
}

// TopEventsBlock lists the most frequent events.
type TopEventsBlock struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Data        []EventCount `json:"data"`
}

// ConversionEventsBlock lists the events that signal conversion intent.
type ConversionEventsBlock struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Data        []string `json:"data"`
}

// Section is one fixed block of the assembled report. Only the fields
// relevant to the section's identifier are populated.
type Section struct {
	ID               string                 `json:"section_id"`
	Title            string                 `json:"title"`
	Description      string                 `json:"description"`
	KPIs             []KPI                  `json:"kpis,omitempty"`
	Charts           []Chart                `json:"charts,omitempty"`
	Table            *Table                 `json:"table,omitempty"`
	Explanations     []Explanation          `json:"explanations,omitempty"`
	Data             *ChannelDeepDive       `json:"data,omitempty"`
	Metrics          []MetricReading        `json:"metrics,omitempty"`
	BehaviorNotes    []string               `json:"behavior_insights,omitempty"`
	EventSummary     *EventSummary          `json:"summary,omitempty"`
	TopEvents        *TopEventsBlock        `json:"top_events,omitempty"`
	ConversionEvents *ConversionEventsBlock `json:"conversion_events,omitempty"`
	EventCategories  *EventCategories       `json:"event_categories,omitempty"`
	Insights         []Insight              `json:"insights,omitempty"`
	Recommendations  []Recommendation       `json:"recommendations,omitempty"`
}

// Report is the nested structure handed to the rendering collaborator. Every
// display value inside it is pre-formatted; renderers only lay content out.
type Report struct {
	ID          string    `json:"report_id"`
	Title       string    `json:"title"`
	GeneratedAt time.Time `json:"generated_at"`
	Sections    []Section `json:"sections"`
}
