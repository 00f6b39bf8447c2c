// Package schema has configs, models and constants for all parts of trafficlens.
package schema

// Record is one normalized row of an analytics export. Numeric cells are
// pre-coerced by the loader, so a zero may mean either "zero" or "the cell was
// missing"; whether a column carried data at all is tracked by the dataset's
// ColumnSet, which is the unit of optionality for every downstream analysis.
type Record struct {
	Source             string
	Medium             string
	SourceMedium       string
	Campaign           string
	Date               string
	EventName          string
	Users              float64
	Sessions           float64
	Pageviews          float64
	BounceRate         float64
	AvgSessionDuration float64
	Conversions        float64
	Revenue            float64
	EventCount         float64
}

// ColumnSet records which canonical columns were present in the source export.
type ColumnSet map[Column]bool

// Dataset is an ordered sequence of records sharing one column set. It is
// built once by the loader and never mutated afterwards.
type Dataset struct {
	Columns ColumnSet
	Rows    []Record
}

// numericField maps each numeric column to its record field.
var numericField = map[Column]func(*Record) float64{
	ColUsers:              func(r *Record) float64 { return r.Users },
	ColSessions:           func(r *Record) float64 { return r.Sessions },
	ColPageviews:          func(r *Record) float64 { return r.Pageviews },
	ColBounceRate:         func(r *Record) float64 { return r.BounceRate },
	ColAvgSessionDuration: func(r *Record) float64 { return r.AvgSessionDuration },
	ColConversions:        func(r *Record) float64 { return r.Conversions },
	ColRevenue:            func(r *Record) float64 { return r.Revenue },
	ColEventCount:         func(r *Record) float64 { return r.EventCount },
}

// stringField maps each string column to its record field.
var stringField = map[Column]func(*Record) string{
	ColSource:       func(r *Record) string { return r.Source },
	ColMedium:       func(r *Record) string { return r.Medium },
	ColSourceMedium: func(r *Record) string { return r.SourceMedium },
	ColCampaign:     func(r *Record) string { return r.Campaign },
	ColDate:         func(r *Record) string { return r.Date },
	ColEventName:    func(r *Record) string { return r.EventName },
}

// Has reports whether the source export carried the given column.
func (d *Dataset) Has(col Column) bool {
	return d.Columns[col]
}

// Sum adds a numeric column across all rows. A column that is not part of the
// dataset sums to zero rather than failing.
func (d *Dataset) Sum(col Column) float64 {
	if !d.Has(col) {
		return 0
	}
	field, ok := numericField[col]
	if !ok {
		return 0
	}
	var total float64
	for i := range d.Rows {
		total += field(&d.Rows[i])
	}
	return total
}

// Mean averages a numeric column across all rows. An absent column, or a
// dataset with no rows, averages to zero rather than failing.
func (d *Dataset) Mean(col Column) float64 {
	if !d.Has(col) || len(d.Rows) == 0 {
		return 0
	}
	return d.Sum(col) / float64(len(d.Rows))
}

// NumericAt returns the numeric value of col for row i, or zero when the
// column is absent.
func (d *Dataset) NumericAt(i int, col Column) float64 {
	if !d.Has(col) {
		return 0
	}
	if field, ok := numericField[col]; ok {
		return field(&d.Rows[i])
	}
	return 0
}

// StringAt returns the string value of col for row i, or "" when the column
// is absent.
func (d *Dataset) StringAt(i int, col Column) string {
	if !d.Has(col) {
		return ""
	}
	if field, ok := stringField[col]; ok {
		return field(&d.Rows[i])
	}
	return ""
}
