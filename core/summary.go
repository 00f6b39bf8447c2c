package core

import "github.com/trafficlens/trafficlens/schema"

// SummarizeDataset computes the dataset-wide KPI scalars. Every computation
// is null-safe: a column missing from the export contributes its documented
// default (zero, or "N/A" for the date range) instead of failing.
func SummarizeDataset(ds *schema.Dataset) schema.SummaryMetrics {
	return schema.SummaryMetrics{
		TotalUsers:         ds.Sum(schema.ColUsers),
		TotalSessions:      ds.Sum(schema.ColSessions),
		TotalPageviews:     ds.Sum(schema.ColPageviews),
		TotalConversions:   ds.Sum(schema.ColConversions),
		TotalRevenue:       ds.Sum(schema.ColRevenue),
		AvgBounceRate:      ds.Mean(schema.ColBounceRate),
		AvgSessionDuration: ds.Mean(schema.ColAvgSessionDuration),
		PagesPerSession:    pagesPerSession(ds),
		ConversionRate:     conversionRate(ds),
		DateRange:          dateRange(ds),
	}
}

// pagesPerSession is total pageviews over total sessions, zero-guarded and
// rounded to two decimals.
func pagesPerSession(ds *schema.Dataset) float64 {
	if !ds.Has(schema.ColPageviews) || !ds.Has(schema.ColSessions) {
		return 0
	}
	totalSessions := ds.Sum(schema.ColSessions)
	if totalSessions <= 0 {
		return 0
	}
	return round2(ds.Sum(schema.ColPageviews) / totalSessions)
}

// conversionRate is total conversions over total sessions as a percentage,
// zero-guarded and rounded to two decimals.
func conversionRate(ds *schema.Dataset) float64 {
	if !ds.Has(schema.ColConversions) || !ds.Has(schema.ColSessions) {
		return 0
	}
	totalSessions := ds.Sum(schema.ColSessions)
	if totalSessions <= 0 {
		return 0
	}
	return round2(ds.Sum(schema.ColConversions) / totalSessions * 100)
}

// dateRange returns the lexicographic min/max of the date column. Dates stay
// as strings; exports already use sortable formats like 2024-01-31.
func dateRange(ds *schema.Dataset) schema.DateRange {
	if !ds.Has(schema.ColDate) || len(ds.Rows) == 0 {
		return schema.DateRange{Start: "N/A", End: "N/A"}
	}
	start := ds.Rows[0].Date
	end := ds.Rows[0].Date
	for i := range ds.Rows {
		d := ds.Rows[i].Date
		if d < start {
			start = d
		}
		if d > end {
			end = d
		}
	}
	return schema.DateRange{Start: start, End: end}
}
