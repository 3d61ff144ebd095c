package excel

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"statusboard/domain/sheet"
	"statusboard/internal"
	"statusboard/internal/errors"

	"github.com/xuri/excelize/v2"
)

var log = internal.NewLogger("excel-reader")

// DataReader decodes Excel and CSV files into a cell grid for the
// normalization pipeline. Only the first sheet of a workbook is read.
type DataReader struct {
	filePath string
	fileType string // "xlsx" or "csv"
}

// NewDataReader creates a data reader for the given file. Anything without a
// .csv extension is treated as a workbook and handed to excelize.
func NewDataReader(filePath string) *DataReader {
	fileType := "xlsx"
	if strings.ToLower(filepath.Ext(filePath)) == ".csv" {
		fileType = "csv"
	}
	return &DataReader{filePath: filePath, fileType: fileType}
}

// ReadGrid decodes the file into a grid. All failures here are whole-file
// decode failures; per-cell problems never surface as errors.
func (r *DataReader) ReadGrid() (*sheet.Grid, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, errors.DecodeFailure("file not found", err)
	}

	switch r.fileType {
	case "csv":
		return r.readCSVGrid()
	default:
		return r.readExcelGrid()
	}
}

// readExcelGrid reads the first worksheet through two excelize passes: one
// for the formatted display layer and one for raw cell values. A cell whose
// display text differs from its raw value carries a decoder display string;
// otherwise only the raw value is kept.
func (r *DataReader) readExcelGrid() (*sheet.Grid, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, errors.DecodeFailure("failed to open workbook", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, errors.DecodeFailure("workbook has no sheets", nil)
	}

	display, err := f.GetRows(sheetName)
	if err != nil {
		return nil, errors.DecodeFailure("failed to read sheet "+sheetName, err)
	}
	raw, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.DecodeFailure("failed to read raw values from "+sheetName, err)
	}

	width := maxWidth(display)
	if len(display) == 0 || width == 0 {
		return nil, errors.DecodeFailure("sheet has no populated range", nil)
	}

	log.Debug("sheet %s decoded (%d rows)", sheetName, len(display))

	grid := sheet.NewGrid(0, 0, len(display)-1, width-1)
	for rowIdx, row := range display {
		for colIdx, displayVal := range row {
			rawVal := ""
			if rowIdx < len(raw) && colIdx < len(raw[rowIdx]) {
				rawVal = raw[rowIdx][colIdx]
			}
			if displayVal == "" && rawVal == "" {
				continue
			}
			grid.Set(rowIdx, colIdx, buildCell(displayVal, rawVal))
		}
	}
	if grid.Empty() {
		return nil, errors.DecodeFailure("sheet has no populated range", nil)
	}
	return grid, nil
}

// readCSVGrid reads a CSV file. CSV has no display layer; numeric-looking
// cells are parsed so the time-serial convention applies uniformly.
func (r *DataReader) readCSVGrid() (*sheet.Grid, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, errors.DecodeFailure("failed to open CSV file", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.DecodeFailure("failed to read CSV file", err)
	}

	width := maxWidth(rows)
	if len(rows) == 0 || width == 0 {
		return nil, errors.DecodeFailure("CSV has no populated range", nil)
	}

	log.Debug("csv decoded (%d rows)", len(rows))

	grid := sheet.NewGrid(0, 0, len(rows)-1, width-1)
	for rowIdx, row := range rows {
		for colIdx, value := range row {
			value = strings.TrimSpace(value)
			if value == "" {
				continue
			}
			grid.Set(rowIdx, colIdx, rawCell(value))
		}
	}
	if grid.Empty() {
		return nil, errors.DecodeFailure("CSV has no populated range", nil)
	}
	return grid, nil
}

// buildCell assembles a cell from excelize's two value layers.
func buildCell(display, raw string) sheet.Cell {
	if display != raw {
		c := rawCell(raw)
		c.Display = display
		c.HasDisplay = true
		return c
	}
	return rawCell(raw)
}

// rawCell wraps a decoded string, parsing numerics to float64.
func rawCell(value string) sheet.Cell {
	if n, err := strconv.ParseFloat(value, 64); err == nil {
		return sheet.Cell{Raw: n}
	}
	return sheet.Cell{Raw: value}
}

func maxWidth(rows [][]string) int {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}
