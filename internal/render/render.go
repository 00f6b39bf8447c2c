// Package render serializes assembled reports into their delivery formats
// and prints analysis tables to the terminal.
package render

import (
	"fmt"

	"github.com/trafficlens/trafficlens/schema"
)

// Report renders the report in the given delivery format.
func Report(rep *schema.Report, format schema.RenderFormat) (string, error) {
	switch format {
	case schema.FormatJSON:
		return JSON(rep)
	case schema.FormatHTML:
		return HTML(rep)
	case schema.FormatMarkdown:
		return Markdown(rep), nil
	default:
		return "", fmt.Errorf("unsupported render format %q", format)
	}
}

// FileExtension returns the filename extension for a render format.
func FileExtension(format schema.RenderFormat) string {
	if format == schema.FormatMarkdown {
		return "md"
	}
	return string(format)
}
