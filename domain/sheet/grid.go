package sheet

// Cell is one decoded spreadsheet cell. Decoders may provide a pre-formatted
// display string (the value the spreadsheet application would show), a raw
// value (float64 or string), or both.
type Cell struct {
	Display    string
	HasDisplay bool
	Raw        any
}

// Grid is a rectangular block of cells addressed by (row, col) within an
// inclusive range. Row StartRow is the header row; rows StartRow+1..EndRow
// are data rows. Lookups outside the range or at never-set addresses report
// the cell as absent.
type Grid struct {
	StartRow, StartCol int
	EndRow, EndCol     int

	cells map[[2]int]Cell
}

// NewGrid creates an empty grid covering the given inclusive range.
func NewGrid(startRow, startCol, endRow, endCol int) *Grid {
	return &Grid{
		StartRow: startRow,
		StartCol: startCol,
		EndRow:   endRow,
		EndCol:   endCol,
		cells:    make(map[[2]int]Cell),
	}
}

// Set stores a cell at (row, col). Addresses outside the range are ignored.
func (g *Grid) Set(row, col int, c Cell) {
	if row < g.StartRow || row > g.EndRow || col < g.StartCol || col > g.EndCol {
		return
	}
	g.cells[[2]int{row, col}] = c
}

// SetText stores a cell whose raw value is a string.
func (g *Grid) SetText(row, col int, value string) {
	g.Set(row, col, Cell{Raw: value})
}

// SetNumber stores a cell whose raw value is numeric.
func (g *Grid) SetNumber(row, col int, value float64) {
	g.Set(row, col, Cell{Raw: value})
}

// Cell returns the cell at (row, col) and whether it is present.
func (g *Grid) Cell(row, col int) (Cell, bool) {
	c, ok := g.cells[[2]int{row, col}]
	return c, ok
}

// Empty reports whether the grid holds no cells at all.
func (g *Grid) Empty() bool {
	return len(g.cells) == 0
}
