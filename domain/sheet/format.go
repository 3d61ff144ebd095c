package sheet

import (
	"fmt"
	"math"
	"strconv"
)

// FormatCell resolves a cell to its display string.
//
// Precedence: decoder-provided display string, then the Excel time-serial
// convention (a numeric raw value in [0,1) is a fraction of a day and renders
// as zero-padded HH:MM), then the raw value unchanged.
func FormatCell(c Cell, present bool) string {
	if !present {
		return ""
	}
	if c.HasDisplay {
		return c.Display
	}
	switch v := c.Raw.(type) {
	case float64:
		if v >= 0 && v < 1 {
			return formatTimeSerial(v)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// formatTimeSerial converts a fraction-of-day value to HH:MM. Rounding to
// whole minutes can carry 23:59.x over to 24:00, so hours wrap mod 24.
func formatTimeSerial(v float64) string {
	totalMinutes := int(math.Round(v * 1440))
	hours := (totalMinutes / 60) % 24
	minutes := totalMinutes % 60
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}
