package sheet

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Field is the value bundle stored under a canonical field name. Text fields
// (SerialNumber, JobDetails, Comments) carry only RawValue; every other field
// additionally carries the status bundle.
type Field struct {
	RawValue    string     `json:"rawValue"`
	Status      string     `json:"status,omitempty"`
	StatusColor string     `json:"statusColor,omitempty"`
	StatusKind  StatusKind `json:"statusKind,omitempty"`
}

// RowRecord is one admitted data row.
type RowRecord struct {
	ID              string           `json:"id"`
	RowIndex        float64          `json:"rowIndex"`
	ImportTimestamp time.Time        `json:"importTimestamp"`
	Fields          map[string]Field `json:"fields"`
}

// Result is the normalized view of one sheet.
type Result struct {
	Headers []string    `json:"headers"`
	Rows    []RowRecord `json:"rows"`
}

// Normalizer turns a cell grid into headers plus admitted, ordered row
// records. It is pure apart from the import timestamp, which is injected so
// tests can pin it.
type Normalizer struct {
	now func() time.Time
}

// NewNormalizer creates a normalizer stamping rows with the wall clock.
func NewNormalizer() *Normalizer {
	return &Normalizer{now: time.Now}
}

// NewNormalizerAt creates a normalizer with a fixed clock.
func NewNormalizerAt(now func() time.Time) *Normalizer {
	return &Normalizer{now: now}
}

// Normalize runs the full pipeline: header extraction, row extraction with
// field classification, the admission filter, and the final stable ordering.
// It never fails; malformed rows are silently excluded.
func (n *Normalizer) Normalize(g *Grid) Result {
	headers := extractHeaders(g)

	// non-nil so an all-rejected upload still serializes as a JSON array
	rows := []RowRecord{}
	for r := g.StartRow + 1; r <= g.EndRow; r++ {
		record, ok := n.buildRow(g, headers, r)
		if !ok {
			continue
		}
		rows = append(rows, record)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].RowIndex < rows[j].RowIndex
	})

	return Result{Headers: headers, Rows: rows}
}

// extractHeaders reads the header row. Empty header cells get a synthetic
// placeholder carrying the column's 1-based position.
func extractHeaders(g *Grid) []string {
	var headers []string
	for c := g.StartCol; c <= g.EndCol; c++ {
		cell, ok := g.Cell(g.StartRow, c)
		label := FormatCell(cell, ok)
		if label == "" {
			label = syntheticHeader(c - g.StartCol + 1)
		}
		headers = append(headers, label)
	}
	return headers
}

func syntheticHeader(position int) string {
	return fmt.Sprintf("Column%d", position)
}

// isSyntheticHeader reports whether a header label is a placeholder for an
// empty header cell. Such columns contribute no fields to row records.
func isSyntheticHeader(label string, position int) bool {
	return label == "" || label == syntheticHeader(position)
}

// buildRow assembles one candidate row record and applies the admission
// predicate. The boolean result is false for rejected rows.
func (n *Normalizer) buildRow(g *Grid, headers []string, row int) (RowRecord, bool) {
	fields := make(map[string]Field)

	for c := g.StartCol; c <= g.EndCol; c++ {
		position := c - g.StartCol + 1
		label := headers[position-1]
		if isSyntheticHeader(label, position) {
			continue
		}

		cell, ok := g.Cell(row, c)
		value := FormatCell(cell, ok)

		name := CanonicalField(label)
		if IsTextField(name) {
			fields[name] = Field{RawValue: value}
			continue
		}

		status := ClassifyStatus(value)
		fields[name] = Field{
			RawValue:    value,
			Status:      status.Text,
			StatusColor: status.Color,
			StatusKind:  status.Kind,
		}
	}

	serial, ok := admit(fields)
	if !ok {
		return RowRecord{}, false
	}

	return RowRecord{
		ID:              "row-" + fields[FieldSerialNumber].RawValue,
		RowIndex:        serial,
		ImportTimestamp: n.now(),
		Fields:          fields,
	}, true
}

// admit applies the admission predicate: a numeric, non-empty serial number
// and a job detail that is non-blank after trimming. It returns the parsed
// serial for use as the row index.
func admit(fields map[string]Field) (float64, bool) {
	serialField, ok := fields[FieldSerialNumber]
	if !ok || serialField.RawValue == "" {
		return 0, false
	}
	serial, err := strconv.ParseFloat(serialField.RawValue, 64)
	if err != nil || math.IsNaN(serial) || math.IsInf(serial, 0) {
		// ParseFloat accepts "NaN" and "Inf", which would break ordering
		return 0, false
	}

	details, ok := fields[FieldJobDetails]
	if !ok || strings.TrimSpace(details.RawValue) == "" {
		return 0, false
	}

	return serial, true
}
