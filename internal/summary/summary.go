package summary

import (
	"statusboard/domain/sheet"

	"github.com/montanaflynn/stats"
)

// Profile is a descriptive snapshot of one normalized upload, used for
// operator logging and the audit trail. It never retains row contents.
type Profile struct {
	TotalRows   int                      `json:"totalRows"`
	ColumnCount int                      `json:"columnCount"`
	KindCounts  map[sheet.StatusKind]int `json:"kindCounts"`
	BlankRate   float64                  `json:"blankRate"`
	Serials     SerialStats              `json:"serials"`
}

// SerialStats summarizes the distribution of admitted serial numbers.
type SerialStats struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
}

// Build computes the descriptive profile of a normalized result.
func Build(res sheet.Result) Profile {
	p := Profile{
		TotalRows:   len(res.Rows),
		ColumnCount: len(res.Headers),
		KindCounts:  make(map[sheet.StatusKind]int),
	}

	serials := make([]float64, 0, len(res.Rows))
	statusFields := 0
	blankFields := 0

	for _, row := range res.Rows {
		serials = append(serials, row.RowIndex)
		for name, field := range row.Fields {
			if sheet.IsTextField(name) {
				continue
			}
			statusFields++
			p.KindCounts[field.StatusKind]++
			if field.RawValue == "" {
				blankFields++
			}
		}
	}

	if statusFields > 0 {
		p.BlankRate = float64(blankFields) / float64(statusFields)
	}

	if len(serials) > 0 {
		// montanaflynn errors only on empty input, which is guarded above
		p.Serials.Min, _ = stats.Min(serials)
		p.Serials.Max, _ = stats.Max(serials)
		p.Serials.Mean, _ = stats.Mean(serials)
		p.Serials.Median, _ = stats.Median(serials)
	}

	return p
}
