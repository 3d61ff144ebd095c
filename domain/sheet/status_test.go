package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// One case per cascade rule, plus the normalization and fallthrough paths.
// The cascade is order-sensitive, so each rule is pinned individually.
func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  Status
	}{
		{"empty is NA", "", Status{Text: "NA", Color: "#d9d9d9", Kind: KindDefault}},
		{"whitespace only is NA", "   ", Status{Text: "NA", Color: "#d9d9d9", Kind: KindDefault}},

		{"active", "ACTIVE", Status{Text: "ACTIVE", Color: "#00B050", Kind: KindSuccess}},
		{"lowercase active normalizes", "active", Status{Text: "ACTIVE", Color: "#00B050", Kind: KindSuccess}},
		{"padded active normalizes", "  Active  ", Status{Text: "ACTIVE", Color: "#00B050", Kind: KindSuccess}},
		{"pass", "pass", Status{Text: "PASS", Color: "#00B050", Kind: KindSuccess}},
		{"enabled", "Enabled", Status{Text: "ENABLED", Color: "#00B050", Kind: KindSuccess}},
		{"unsuspended", "UNSUSPENDED", Status{Text: "UNSUSPENDED", Color: "#00B050", Kind: KindSuccess}},

		{"off", "off", Status{Text: "OFF", Color: "#FF0000", Kind: KindError}},
		{"failed", "Failed", Status{Text: "FAILED", Color: "#FF0000", Kind: KindError}},
		{"inactive", "inactive", Status{Text: "INACTIVE", Color: "#FF0000", Kind: KindError}},
		{"suspended", "SUSPENDED", Status{Text: "SUSPENDED", Color: "#FF0000", Kind: KindError}},

		{"pending", "pending", Status{Text: "PENDING", Color: "#FFC000", Kind: KindWarning}},

		{"time of day", "9:30", Status{Text: "9:30", Color: "#0070C0", Kind: KindProcessing}},
		{"padded hour time", "18:45", Status{Text: "18:45", Color: "#0070C0", Kind: KindProcessing}},
		{"midnight time is idle", "00:00", Status{Text: "00:00", Color: "#d9d9d9", Kind: KindDefault}},

		{"day-month", "05-Jan", Status{Text: "05-JAN", Color: "#7030A0", Kind: KindPurple}},
		{"single digit day-month", "5-dec", Status{Text: "5-DEC", Color: "#7030A0", Kind: KindPurple}},

		{"explicit NA", "na", Status{Text: "NA", Color: "#d9d9d9", Kind: KindDefault}},

		{"unmatched falls through to info", "In Review", Status{Text: "IN REVIEW", Color: "#0070C0", Kind: KindInfo}},
		{"numbers fall through to info", "37", Status{Text: "37", Color: "#0070C0", Kind: KindInfo}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyStatus(tt.value))
		})
	}
}

// INACTIVE contains "ACTIVE" as a substring; the keyword rules must match
// whole values, not substrings.
func TestClassifyStatus_KeywordsMatchWholeValue(t *testing.T) {
	got := ClassifyStatus("INACTIVE")
	assert.Equal(t, KindError, got.Kind)
	assert.Equal(t, "#FF0000", got.Color)
}

// A value that would match the day-month pattern never reaches it if a
// keyword rule fires first; exactly one rule fires per value.
func TestClassifyStatus_FirstMatchWins(t *testing.T) {
	for _, v := range []string{"ACTIVE", "00:00", "12:15", "05-JAN", "NA", "anything else"} {
		got := ClassifyStatus(v)
		assert.NotEmpty(t, got.Kind, "value %q must classify", v)
		assert.NotEmpty(t, got.Color, "value %q must carry a color", v)
	}
}
