package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCell_AbsentCellIsEmpty(t *testing.T) {
	assert.Equal(t, "", FormatCell(Cell{}, false))
}

func TestFormatCell_DisplayStringWinsOverRaw(t *testing.T) {
	c := Cell{Display: "12:30 PM", HasDisplay: true, Raw: 0.5208333}
	assert.Equal(t, "12:30 PM", FormatCell(c, true))
}

func TestFormatCell_TimeSerial(t *testing.T) {
	tests := []struct {
		name string
		raw  float64
		want string
	}{
		{"noon", 0.5, "12:00"},
		{"midnight", 0.0, "00:00"},
		{"quarter past nine", 0.385417, "09:15"},
		{"end of day rounds up and wraps", 0.9999, "00:00"},
		{"one minute", 1.0 / 1440.0, "00:01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCell(Cell{Raw: tt.raw}, true))
		})
	}
}

func TestFormatCell_NumbersOutsideDayFractionPassThrough(t *testing.T) {
	assert.Equal(t, "42", FormatCell(Cell{Raw: 42.0}, true))
	assert.Equal(t, "1.5", FormatCell(Cell{Raw: 1.5}, true))
	assert.Equal(t, "-0.5", FormatCell(Cell{Raw: -0.5}, true))
}

func TestFormatCell_TextPassesThroughUnchanged(t *testing.T) {
	assert.Equal(t, "  Fix pump  ", FormatCell(Cell{Raw: "  Fix pump  "}, true))
}

func TestFormatCell_NilRawIsEmpty(t *testing.T) {
	assert.Equal(t, "", FormatCell(Cell{}, true))
}
