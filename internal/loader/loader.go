// Package loader ingests delimited analytics exports and normalizes them
// into the canonical dataset consumed by the core analyses. It harmonizes
// header spellings across export tools, coerces numeric cells to non-negative
// floats (unparseable or missing values become zero) and derives the combined
// source/medium channel key.
package loader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/trafficlens/trafficlens/schema"
	"golang.org/x/text/encoding/charmap"
)

// ErrEmptyFile indicates an export with no header row.
var ErrEmptyFile = errors.New("loader: empty csv file")

// columnVariants maps canonical column names to the header spellings used by
// the common export tools. The first variant present in the header wins.
var columnVariants = map[schema.Column][]string{
	schema.ColSource:             {"source", "sessionsource", "session_source"},
	schema.ColMedium:             {"medium", "sessionmedium", "session_medium"},
	schema.ColSourceMedium:       {"source_medium", "sessionsourcemedium", "session_source_medium"},
	schema.ColCampaign:           {"campaign", "sessioncampaign", "session_campaign"},
	schema.ColUsers:              {"users", "totalusers", "total_users", "activeusers"},
	schema.ColSessions:           {"sessions", "sessioncount", "session_count"},
	schema.ColPageviews:          {"pageviews", "screenpageviews", "screen_page_views"},
	schema.ColBounceRate:         {"bouncerate", "bounce_rate"},
	schema.ColAvgSessionDuration: {"avgsessionduration", "averagesessionduration", "avg_session_duration"},
	schema.ColConversions:        {"conversions", "goalcompletions"},
	schema.ColRevenue:            {"revenue", "totalrevenue", "purchaserevenue"},
	schema.ColEventName:          {"eventname", "event_name"},
	schema.ColEventCount:         {"eventcount", "event_count"},
	schema.ColDate:               {"date", "daterange", "daterangestart"},
}

// LoadCSV reads and normalizes a CSV export from disk.
func LoadCSV(path string) (*schema.Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	ds, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return ds, nil
}

// Parse decodes raw export bytes into a normalized dataset.
func Parse(raw []byte) (*schema.Dataset, error) {
	raw = bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF})
	if !utf8.Valid(raw) {
		// Legacy export tools commonly emit Latin-1; transcode before parsing.
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
		if err != nil {
			return nil, fmt.Errorf("decode charset: %w", err)
		}
		raw = decoded
	}

	reader := csv.NewReader(bytes.NewReader(raw))
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}

	colIndex, columns := mapHeader(rows[0])

	ds := &schema.Dataset{
		Columns: columns,
		Rows:    make([]schema.Record, 0, len(rows)-1),
	}
	for _, row := range rows[1:] {
		ds.Rows = append(ds.Rows, buildRecord(row, colIndex))
	}

	deriveSourceMedium(ds)
	return ds, nil
}

// mapHeader normalizes header cells and resolves them against the variant
// table, returning the per-column field index and the resulting column set.
func mapHeader(header []string) (map[schema.Column]int, schema.ColumnSet) {
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(h)), " ", "_")
	}

	colIndex := make(map[schema.Column]int)
	columns := make(schema.ColumnSet)
	for col, variants := range columnVariants {
		for _, variant := range variants {
			for i, h := range normalized {
				if h == variant {
					colIndex[col] = i
					columns[col] = true
					break
				}
			}
			if columns[col] {
				break
			}
		}
	}
	return colIndex, columns
}

// buildRecord fills one typed record from a raw CSV row.
func buildRecord(row []string, colIndex map[schema.Column]int) schema.Record {
	cell := func(col schema.Column) string {
		idx, ok := colIndex[col]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	return schema.Record{
		Source:             cell(schema.ColSource),
		Medium:             cell(schema.ColMedium),
		SourceMedium:       cell(schema.ColSourceMedium),
		Campaign:           cell(schema.ColCampaign),
		Date:               cell(schema.ColDate),
		EventName:          cell(schema.ColEventName),
		Users:              coerceNumeric(cell(schema.ColUsers)),
		Sessions:           coerceNumeric(cell(schema.ColSessions)),
		Pageviews:          coerceNumeric(cell(schema.ColPageviews)),
		BounceRate:         coerceNumeric(cell(schema.ColBounceRate)),
		AvgSessionDuration: coerceNumeric(cell(schema.ColAvgSessionDuration)),
		Conversions:        coerceNumeric(cell(schema.ColConversions)),
		Revenue:            coerceNumeric(cell(schema.ColRevenue)),
		EventCount:         coerceNumeric(cell(schema.ColEventCount)),
	}
}

// coerceNumeric parses a numeric cell. Unparseable, negative or non-finite
// values coerce to zero so downstream math never sees a bad number.
func coerceNumeric(cell string) float64 {
	if cell == "" {
		return 0
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// deriveSourceMedium fills the combined channel key when the export carries
// both inputs, overwriting any tool-provided value for consistency.
func deriveSourceMedium(ds *schema.Dataset) {
	if !ds.Has(schema.ColSource) || !ds.Has(schema.ColMedium) {
		return
	}
	ds.Columns[schema.ColSourceMedium] = true
	for i := range ds.Rows {
		ds.Rows[i].SourceMedium = fmt.Sprintf("%s / %s", ds.Rows[i].Source, ds.Rows[i].Medium)
	}
}
