// Package internal has helpers that are only useful within the trafficlens
// runtime.
package internal

import (
	"github.com/fatih/color"
	"github.com/trafficlens/trafficlens/schema"
)

var (
	criticalColor = color.New(color.FgRed, color.Bold)    // Critical insights: Red and Bold
	warningColor  = color.New(color.FgYellow, color.Bold) // Warnings: Yellow and Bold
	positiveColor = color.New(color.FgGreen)              // Positive findings: Green
	neutralColor  = color.New(color.FgHiBlack)            // Everything else: Dark Grey/HiBlack
)

// SeverityLabel returns the display label for an insight severity, colored
// when useColors is set.
func SeverityLabel(s schema.Severity, useColors bool) string {
	text := string(s)
	if !useColors {
		return text
	}
	switch s {
	case schema.SeverityCritical:
		return criticalColor.Sprint(text)
	case schema.SeverityWarning:
		return warningColor.Sprint(text)
	case schema.SeverityPositive:
		return positiveColor.Sprint(text)
	default:
		return neutralColor.Sprint(text)
	}
}

// PriorityLabel returns the display label for a recommendation priority,
// colored when useColors is set.
func PriorityLabel(p schema.Priority, useColors bool) string {
	text := string(p)
	if !useColors {
		return text
	}
	switch p {
	case schema.PriorityHigh:
		return criticalColor.Sprint(text)
	case schema.PriorityMedium:
		return warningColor.Sprint(text)
	default:
		return neutralColor.Sprint(text)
	}
}

// TruncateChannel shortens a channel name to a maximum width with an ellipsis
// suffix so tables stay within the terminal.
func TruncateChannel(name string, maxWidth int) string {
	runes := []rune(name)
	if maxWidth > 3 && len(runes) > maxWidth {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}
