package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/trafficlens/trafficlens/schema"
)

// htmlTemplate lays the report out as a self-contained page. The styling
// mirrors the severity/priority color coding used in terminal output.
const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>{{.Title}}</title>
	<style>
		body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
			margin: 0; padding: 20px; background: #f5f5f5; }
		.report { max-width: 1400px; margin: 0 auto; }
		.section { background: white; border-radius: 8px; padding: 24px; margin-bottom: 20px;
			box-shadow: 0 1px 3px rgba(0,0,0,0.1); }
		.section-title { font-size: 1.5rem; color: #1a73e8; margin-bottom: 16px; }
		.kpi-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 16px; }
		.kpi-card { background: #f8f9fa; padding: 16px; border-radius: 8px; text-align: center; }
		.kpi-value { font-size: 2rem; font-weight: bold; color: #1a73e8; }
		.kpi-name { font-size: 0.875rem; color: #666; margin-top: 8px; }
		.metric { padding: 12px; margin: 8px 0; background: #f8f9fa; border-radius: 4px; }
		.insight { padding: 12px; margin: 8px 0; border-radius: 4px; }
		.insight.positive { background: #e6f4ea; border-left: 4px solid #34a853; }
		.insight.warning { background: #fef7e0; border-left: 4px solid #fbbc04; }
		.insight.critical { background: #fce8e6; border-left: 4px solid #ea4335; }
		.recommendation { padding: 16px; margin: 8px 0; background: #e8f0fe; border-radius: 4px; }
		table { width: 100%; border-collapse: collapse; }
		th, td { padding: 12px; text-align: left; border-bottom: 1px solid #eee; }
		th { background: #f8f9fa; font-weight: 600; }
	</style>
</head>
<body>
	<div class="report">
		<h1>{{.Title}}</h1>
		<p>Generated: {{.GeneratedAt.Format "2006-01-02 15:04:05 MST"}}</p>
{{- range .Sections}}
		<div class="section">
			<h2 class="section-title">{{.Title}}</h2>
			<p>{{.Description}}</p>
{{- if .KPIs}}
			<div class="kpi-grid">
{{- range .KPIs}}
				<div class="kpi-card">
					<div class="kpi-value">{{.Value}}</div>
					<div class="kpi-name">{{.Name}}</div>
					<small>{{.Description}}</small>
				</div>
{{- end}}
			</div>
{{- end}}
{{- if .Metrics}}
{{- range .Metrics}}
			<div class="metric">
				<strong>{{.Name}}: {{.Value}}</strong>
				<p>{{.Interpretation}}</p>
			</div>
{{- end}}
{{- end}}
{{- if .Table}}
			<h3>{{.Table.Title}}</h3>
			<table>
				<tr>{{range .Table.Columns}}<th>{{.}}</th>{{end}}</tr>
{{- range .Table.Rows}}
				<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{- end}}
			</table>
{{- end}}
{{- range .Explanations}}
			<h3>{{.Title}}</h3>
			<p>{{.Content}}</p>
{{- end}}
{{- if .TopEvents}}
			<h3>{{.TopEvents.Title}}</h3>
			<table>
				<tr><th>Event</th><th>Count</th></tr>
{{- range .TopEvents.Data}}
				<tr><td>{{.Event}}</td><td>{{printf "%.0f" .Count}}</td></tr>
{{- end}}
			</table>
{{- end}}
{{- if .ConversionEvents}}
			<h3>{{.ConversionEvents.Title}}</h3>
			<p>{{join .ConversionEvents.Data ", "}}</p>
{{- end}}
{{- range .Insights}}
			<div class="insight {{.Severity}}">
				<strong>{{.Title}}</strong>
				<p>{{.Description}}</p>
			</div>
{{- end}}
{{- range .Recommendations}}
			<div class="recommendation">
				<strong>[{{.Priority}}] {{.Title}}</strong>
				<p>{{.Description}}</p>
				<small>Expected Impact: {{.ExpectedImpact}}</small>
			</div>
{{- end}}
		</div>
{{- end}}
	</div>
</body>
</html>
`

var htmlTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"join": strings.Join,
}).Parse(htmlTemplate))

// HTML renders the report as a standalone HTML page.
func HTML(rep *schema.Report) (string, error) {
	var sb strings.Builder
	if err := htmlTmpl.Execute(&sb, rep); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return sb.String(), nil
}
