package render

import (
	"fmt"
	"strings"

	"github.com/trafficlens/trafficlens/schema"
)

// severityMarkers decorate insights in Markdown output.
var severityMarkers = map[schema.Severity]string{
	schema.SeverityPositive: "✅",
	schema.SeverityWarning:  "⚠️",
	schema.SeverityCritical: "🚨",
}

// Markdown renders the report as a Markdown document.
func Markdown(rep *schema.Report) string {
	var md strings.Builder
	fmt.Fprintf(&md, "# %s\n\n", rep.Title)
	fmt.Fprintf(&md, "*Generated: %s*\n\n", rep.GeneratedAt.Format("2006-01-02 15:04:05 MST"))

	for i := range rep.Sections {
		writeSection(&md, &rep.Sections[i])
	}
	return md.String()
}

func writeSection(md *strings.Builder, section *schema.Section) {
	fmt.Fprintf(md, "## %s\n\n", section.Title)
	if section.Description != "" {
		fmt.Fprintf(md, "%s\n\n", section.Description)
	}

	if len(section.KPIs) > 0 {
		md.WriteString("| Metric | Value |\n|--------|-------|\n")
		for _, kpi := range section.KPIs {
			fmt.Fprintf(md, "| %s | %s |\n", kpi.Name, kpi.Value)
		}
		md.WriteString("\n")
	}

	for _, metric := range section.Metrics {
		fmt.Fprintf(md, "- **%s**: %s — %s\n", metric.Name, metric.Value, metric.Interpretation)
	}
	if len(section.Metrics) > 0 {
		md.WriteString("\n")
	}

	if section.Table != nil {
		fmt.Fprintf(md, "### %s\n\n", section.Table.Title)
		fmt.Fprintf(md, "| %s |\n", strings.Join(section.Table.Columns, " | "))
		fmt.Fprintf(md, "|%s\n", strings.Repeat("---|", len(section.Table.Columns)))
		for _, row := range section.Table.Rows {
			fmt.Fprintf(md, "| %s |\n", strings.Join(row, " | "))
		}
		md.WriteString("\n")
	}

	for _, explanation := range section.Explanations {
		fmt.Fprintf(md, "### %s\n\n%s\n\n", explanation.Title, explanation.Content)
	}

	if section.TopEvents != nil && len(section.TopEvents.Data) > 0 {
		fmt.Fprintf(md, "### %s\n\n", section.TopEvents.Title)
		for _, event := range section.TopEvents.Data {
			fmt.Fprintf(md, "- %s: %.0f\n", event.Event, event.Count)
		}
		md.WriteString("\n")
	}

	if section.ConversionEvents != nil && len(section.ConversionEvents.Data) > 0 {
		fmt.Fprintf(md, "### %s\n\n%s\n\n", section.ConversionEvents.Title,
			strings.Join(section.ConversionEvents.Data, ", "))
	}

	for _, insight := range section.Insights {
		marker, ok := severityMarkers[insight.Severity]
		if !ok {
			marker = "ℹ️"
		}
		fmt.Fprintf(md, "%s **%s**: %s\n\n", marker, insight.Title, insight.Description)
	}

	for _, rec := range section.Recommendations {
		fmt.Fprintf(md, "### [%s] %s\n", rec.Priority, rec.Title)
		fmt.Fprintf(md, "%s\n", rec.Description)
		fmt.Fprintf(md, "*Expected Impact: %s*\n\n", rec.ExpectedImpact)
	}
}
