package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/eurofuel/gasbalance-go/pkg/gasbalance/models"
	"github.com/xuri/excelize/v2"
)

// periodLayout is the uniform text form of date headers.
const periodLayout = "2006-01-02"

// ReadTable reads a sheet into an uncleaned SeriesTable. The first row of
// the sheet's data region holds the period labels and the first column holds
// the country names. Cells that are empty or not numeric become NaN. Print
// areas are ignored.
func ReadTable(f *excelize.File, sheetName, name string) (*models.SeriesTable, error) {
	return readTable(f, sheetName, name, false)
}

// ReadPrintArea is ReadTable limited to the sheet's print area. A sheet
// without one is read whole.
func ReadPrintArea(f *excelize.File, sheetName, name string) (*models.SeriesTable, error) {
	return readTable(f, sheetName, name, true)
}

func readTable(f *excelize.File, sheetName, name string, usePrintArea bool) (*models.SeriesTable, error) {
	raw, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	shown, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	if area, ok := printArea(f, sheetName); ok && usePrintArea {
		raw, shown = clip(raw, area), clip(shown, area)
	}

	table := &models.SeriesTable{Name: name}
	bounds := findDataBounds(raw)
	if bounds.empty() {
		return table, nil
	}

	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	seen := make(map[string]int)
	for col := bounds.minCol + 1; col <= bounds.maxCol; col++ {
		label := headerLabel(cellAt(raw, bounds.minRow, col), cellAt(shown, bounds.minRow, col), date1904)
		if label == "" {
			label = fmt.Sprintf("Unnamed: %d", col)
		}
		// Repeated labels get a numeric suffix so period keys stay unique.
		if n := seen[label]; n > 0 {
			seen[label] = n + 1
			label = fmt.Sprintf("%s.%d", label, n)
		} else {
			seen[label] = 1
		}
		table.Periods = append(table.Periods, label)
	}

	for row := bounds.minRow + 1; row <= bounds.maxRow; row++ {
		values := make([]float64, len(table.Periods))
		for i := range values {
			values[i] = parseNumber(cellAt(raw, row, bounds.minCol+1+i))
		}
		table.Countries = append(table.Countries, strings.TrimSpace(cellAt(raw, row, bounds.minCol)))
		table.Values = append(table.Values, values)
	}

	return table, nil
}

// headerLabel coerces a header cell to text. A numeric cell that Excel
// displays as something other than a number is a date serial and is
// rendered as an ISO date.
func headerLabel(raw, shown string, date1904 bool) string {
	raw = strings.TrimSpace(raw)
	shown = strings.TrimSpace(shown)
	if raw == "" {
		return ""
	}
	serial, err := strconv.ParseFloat(raw, 64)
	if err != nil || serial <= 0 || shown == "" || shown == raw || isNumericText(shown) {
		return raw
	}
	t, err := excelize.ExcelDateToTime(serial, date1904)
	if err != nil {
		return raw
	}
	return t.Format(periodLayout)
}

// isNumericText reports whether s is a number once grouping separators and
// currency-style decorations are removed.
func isNumericText(s string) bool {
	s = strings.NewReplacer(",", "", " ", "", "%", "").Replace(s)
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// parseNumber attempts to parse a cell as a number.
// Returns NaN for empty or non-numeric cells.
func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN()
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return float64(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) {
		return f
	}
	return math.NaN()
}
