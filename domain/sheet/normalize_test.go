package sheet

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testClock = func() time.Time {
	return time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
}

// jobGrid builds the grid most tests share:
//
//	S.No | Job Details | Status  | Comments
//	2    | Check lines | active  | ok
//	1    | Fix pump    | pending |
func jobGrid() *Grid {
	g := NewGrid(0, 0, 2, 3)
	g.SetText(0, 0, "S.No")
	g.SetText(0, 1, "Job Details")
	g.SetText(0, 2, "Status")
	g.SetText(0, 3, "Comments")

	g.SetText(1, 0, "2")
	g.SetText(1, 1, "Check lines")
	g.SetText(1, 2, "active")
	g.SetText(1, 3, "ok")

	g.SetText(2, 0, "1")
	g.SetText(2, 1, "Fix pump")
	g.SetText(2, 2, "pending")
	return g
}

func TestNormalize_HeadersAndCanonicalFields(t *testing.T) {
	res := NewNormalizerAt(testClock).Normalize(jobGrid())

	assert.Equal(t, []string{"S.No", "Job Details", "Status", "Comments"}, res.Headers)
	require.Len(t, res.Rows, 2)

	row := res.Rows[1] // serial 2 sorts second
	assert.Equal(t, "row-2", row.ID)
	assert.Equal(t, 2.0, row.RowIndex)
	assert.Equal(t, testClock(), row.ImportTimestamp)
	assert.Equal(t, Field{RawValue: "2"}, row.Fields[FieldSerialNumber])
	assert.Equal(t, Field{RawValue: "Check lines"}, row.Fields[FieldJobDetails])
	assert.Equal(t, Field{RawValue: "ok"}, row.Fields[FieldComments])
	assert.Equal(t, Field{
		RawValue:    "active",
		Status:      "ACTIVE",
		StatusColor: "#00B050",
		StatusKind:  KindSuccess,
	}, row.Fields["Status"])
}

func TestNormalize_SortsAscendingByRowIndex(t *testing.T) {
	res := NewNormalizerAt(testClock).Normalize(jobGrid())

	require.Len(t, res.Rows, 2)
	assert.Equal(t, 1.0, res.Rows[0].RowIndex)
	assert.Equal(t, 2.0, res.Rows[1].RowIndex)
}

func TestNormalize_IsDeterministic(t *testing.T) {
	n := NewNormalizerAt(testClock)
	first := n.Normalize(jobGrid())
	second := n.Normalize(jobGrid())
	assert.Equal(t, first, second)
}

func TestNormalize_RejectsBlankJobDetails(t *testing.T) {
	g := NewGrid(0, 0, 1, 1)
	g.SetText(0, 0, "S.No")
	g.SetText(0, 1, "Job Details")
	g.SetText(1, 0, "3")
	g.SetText(1, 1, "  ")

	res := NewNormalizerAt(testClock).Normalize(g)
	assert.Empty(t, res.Rows)
}

func TestNormalize_RejectsNonNumericSerial(t *testing.T) {
	g := NewGrid(0, 0, 1, 1)
	g.SetText(0, 0, "S.No")
	g.SetText(0, 1, "Job Details")
	g.SetText(1, 0, "abc")
	g.SetText(1, 1, "Fix pump")

	res := NewNormalizerAt(testClock).Normalize(g)
	assert.Empty(t, res.Rows)
}

func TestNormalize_RejectsNonFiniteSerial(t *testing.T) {
	for _, serial := range []string{"NaN", "Inf", "-Inf", "+Inf"} {
		g := NewGrid(0, 0, 1, 1)
		g.SetText(0, 0, "S.No")
		g.SetText(0, 1, "Job Details")
		g.SetText(1, 0, serial)
		g.SetText(1, 1, "Fix pump")

		res := NewNormalizerAt(testClock).Normalize(g)
		assert.Empty(t, res.Rows, "serial %q must not admit", serial)
	}
}

func TestNormalize_AllRowsRejectedYieldsJSONArray(t *testing.T) {
	g := NewGrid(0, 0, 1, 1)
	g.SetText(0, 0, "S.No")
	g.SetText(0, 1, "Job Details")
	g.SetText(1, 0, "abc")
	g.SetText(1, 1, "Fix pump")

	res := NewNormalizerAt(testClock).Normalize(g)
	require.NotNil(t, res.Rows)

	raw, err := json.Marshal(res.Rows)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestNormalize_RejectsMissingSerialColumn(t *testing.T) {
	g := NewGrid(0, 0, 1, 0)
	g.SetText(0, 0, "Job Details")
	g.SetText(1, 0, "Fix pump")

	res := NewNormalizerAt(testClock).Normalize(g)
	assert.Empty(t, res.Rows)
}

func TestNormalize_EmptyHeaderGetsPlaceholderAndIsExcluded(t *testing.T) {
	g := NewGrid(0, 0, 1, 2)
	g.SetText(0, 0, "S.No")
	g.SetText(0, 1, "Job Details")
	// column index 2 has no header cell
	g.SetText(1, 0, "1")
	g.SetText(1, 1, "Fix pump")
	g.SetText(1, 2, "should not appear")

	res := NewNormalizerAt(testClock).Normalize(g)

	assert.Equal(t, []string{"S.No", "Job Details", "Column3"}, res.Headers)
	require.Len(t, res.Rows, 1)
	assert.NotContains(t, res.Rows[0].Fields, "Column3")
	assert.Len(t, res.Rows[0].Fields, 2)
}

func TestNormalize_TimeSerialCellsRenderAsClockText(t *testing.T) {
	g := NewGrid(0, 0, 1, 2)
	g.SetText(0, 0, "S.No")
	g.SetText(0, 1, "Job Details")
	g.SetText(0, 2, "Window Start")
	g.SetText(1, 0, "1")
	g.SetText(1, 1, "Fix pump")
	g.SetNumber(1, 2, 0.5)

	res := NewNormalizerAt(testClock).Normalize(g)

	require.Len(t, res.Rows, 1)
	f := res.Rows[0].Fields["Window Start"]
	assert.Equal(t, "12:00", f.RawValue)
	assert.Equal(t, KindProcessing, f.StatusKind)
	assert.Equal(t, "#0070C0", f.StatusColor)
}

func TestNormalize_MidnightSerialClassifiesDefault(t *testing.T) {
	g := NewGrid(0, 0, 1, 2)
	g.SetText(0, 0, "S.No")
	g.SetText(0, 1, "Job Details")
	g.SetText(0, 2, "Window Start")
	g.SetText(1, 0, "1")
	g.SetText(1, 1, "Fix pump")
	g.SetNumber(1, 2, 0.0)

	res := NewNormalizerAt(testClock).Normalize(g)

	require.Len(t, res.Rows, 1)
	f := res.Rows[0].Fields["Window Start"]
	assert.Equal(t, "00:00", f.RawValue)
	assert.Equal(t, KindDefault, f.StatusKind)
	assert.Equal(t, "#d9d9d9", f.StatusColor)
}

func TestNormalize_FractionalSerialAdmitsAndOrders(t *testing.T) {
	g := NewGrid(0, 0, 3, 1)
	g.SetText(0, 0, "S.No")
	g.SetText(0, 1, "Job Details")
	g.SetText(1, 0, "4")
	g.SetText(1, 1, "last")
	g.SetText(2, 0, "3.5")
	g.SetText(2, 1, "middle")
	g.SetText(3, 0, "3")
	g.SetText(3, 1, "first")

	res := NewNormalizerAt(testClock).Normalize(g)

	require.Len(t, res.Rows, 3)
	assert.Equal(t, []float64{3, 3.5, 4}, []float64{
		res.Rows[0].RowIndex, res.Rows[1].RowIndex, res.Rows[2].RowIndex,
	})
}

func TestRowRecord_JSONRoundTrip(t *testing.T) {
	res := NewNormalizerAt(testClock).Normalize(jobGrid())

	raw, err := json.Marshal(res.Rows)
	require.NoError(t, err)

	var decoded []RowRecord
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, res.Rows, decoded)
}
