package internal

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// Display formatting for the report output contract: counts get thousands
// separators, rates and ratios two decimals, revenue a currency symbol.

// FormatCount renders a volume metric with thousands separators and no
// decimals.
func FormatCount(v float64) string {
	return humanize.Comma(int64(math.Round(v)))
}

// FormatRate renders a percentage with two decimals.
func FormatRate(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

// FormatDecimal renders a ratio with two decimals.
func FormatDecimal(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// FormatMoney renders a currency amount with a dollar sign, thousands
// separators and two decimals.
func FormatMoney(v float64) string {
	return "$" + humanize.FormatFloat("#,###.##", v)
}

// FormatSeconds renders a duration metric in whole seconds.
func FormatSeconds(v float64) string {
	return fmt.Sprintf("%.0f seconds", v)
}

// FormatOptionalRate renders a nullable percentage, "N/A" when null.
func FormatOptionalRate(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return FormatRate(*v)
}

// FormatOptionalDecimal renders a nullable ratio, "N/A" when null.
func FormatOptionalDecimal(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return FormatDecimal(*v)
}
