package core

import (
	"sort"
	"strings"

	"github.com/trafficlens/trafficlens/schema"
)

// topEventLimit caps the most-frequent-events list.
const topEventLimit = 10

// conversionKeywords mark event names that signal conversion intent, matched
// as case-insensitive substrings.
var conversionKeywords = []string{"purchase", "signup", "submit", "complete", "conversion", "lead"}

// eventCategories buckets event names by substring match. Categories are
// checked in order and the first match wins; names matching none are dropped
// from every bucket.
var eventCategories = []struct {
	name     string
	keywords []string
}{
	{"navigation", []string{"page_view", "scroll", "click"}},
	{"interaction", []string{"video_play", "file_download", "form_start"}},
	{"conversion", []string{"purchase", "sign_up", "generate_lead"}},
}

// AnalyzeEvents summarizes, ranks and categorizes discrete user events. The
// whole sub-analysis reports absence when the export has no event_name
// column.
func AnalyzeEvents(ds *schema.Dataset) schema.EventAnalysis {
	if !ds.Has(schema.ColEventName) {
		return schema.EventAnalysis{Available: false}
	}

	// Distinct event names in first-seen order with summed counts. The order
	// doubles as the deterministic tiebreak for the top-events ranking.
	counts := make(map[string]float64)
	var names []string
	for i := range ds.Rows {
		name := ds.Rows[i].EventName
		if _, seen := counts[name]; !seen {
			counts[name] = 0
			names = append(names, name)
		}
		counts[name] += ds.Rows[i].EventCount
	}

	return schema.EventAnalysis{
		Available: true,
		Summary: schema.EventSummary{
			TotalEvents:      ds.Sum(schema.ColEventCount),
			UniqueEventTypes: len(names),
		},
		TopEvents:        topEvents(names, counts),
		ConversionEvents: conversionEvents(names),
		Categories:       categorizeEvents(names),
	}
}

// topEvents ranks event names by summed count descending, first-seen order on
// ties, capped at topEventLimit.
func topEvents(names []string, counts map[string]float64) []schema.EventCount {
	ranked := append([]string(nil), names...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return counts[ranked[i]] > counts[ranked[j]]
	})
	if len(ranked) > topEventLimit {
		ranked = ranked[:topEventLimit]
	}

	top := make([]schema.EventCount, 0, len(ranked))
	for _, name := range ranked {
		top = append(top, schema.EventCount{Event: name, Count: counts[name]})
	}
	return top
}

// conversionEvents keeps the distinct names that signal conversion intent.
func conversionEvents(names []string) []string {
	var matched []string
	for _, name := range names {
		if IsConversionEvent(name) {
			matched = append(matched, name)
		}
	}
	return matched
}

// categorizeEvents buckets each distinct name into its first matching
// category.
func categorizeEvents(names []string) schema.EventCategories {
	var categories schema.EventCategories
	for _, name := range names {
		switch EventCategory(name) {
		case "navigation":
			categories.Navigation = append(categories.Navigation, name)
		case "interaction":
			categories.Interaction = append(categories.Interaction, name)
		case "conversion":
			categories.Conversion = append(categories.Conversion, name)
		}
	}
	return categories
}

// IsConversionEvent reports whether an event name signals conversion intent.
func IsConversionEvent(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range conversionKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// EventCategory returns the semantic category of an event name, or "" when
// the name matches no category.
func EventCategory(name string) string {
	lower := strings.ToLower(name)
	for _, cat := range eventCategories {
		for _, kw := range cat.keywords {
			if strings.Contains(lower, kw) {
				return cat.name
			}
		}
	}
	return ""
}
