// Package testutil builds workbook fixtures for tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// Row is one country line of a fixture sheet.
type Row struct {
	Country string
	Values  []any // nil entries leave the cell empty
}

// Sheet is a fixture sheet with a header row of periods.
type Sheet struct {
	Name    string
	Periods []string
	Rows    []Row
}

// Nums converts numbers to fixture cell values.
func Nums(values ...float64) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// WriteWorkbook saves the sheets, in order, to dir/name and returns the path.
func WriteWorkbook(t *testing.T, dir, name string, sheets ...Sheet) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				t.Fatalf("Failed to rename sheet: %v", err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			t.Fatalf("Failed to add sheet %q: %v", sheet.Name, err)
		}

		header := make([]any, 0, len(sheet.Periods)+1)
		header = append(header, "Country")
		for _, p := range sheet.Periods {
			header = append(header, p)
		}
		if err := f.SetSheetRow(sheet.Name, "A1", &header); err != nil {
			t.Fatalf("Failed to write header: %v", err)
		}

		for r, row := range sheet.Rows {
			cell, _ := excelize.CoordinatesToCellName(1, r+2)
			if err := f.SetCellValue(sheet.Name, cell, row.Country); err != nil {
				t.Fatalf("Failed to write country: %v", err)
			}
			for c, v := range row.Values {
				if v == nil {
					continue
				}
				cell, _ := excelize.CoordinatesToCellName(c+2, r+2)
				if err := f.SetCellValue(sheet.Name, cell, v); err != nil {
					t.Fatalf("Failed to write value: %v", err)
				}
			}
		}
	}

	path := filepath.Join(dir, name)
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save workbook: %v", err)
	}
	return path
}

// MarketWorkbook writes the two-country example used across tests:
// Demand FR [10 20 30], DE [5 5 5]; Supply FR [15 15 15], DE [0 10 20].
func MarketWorkbook(t *testing.T, dir string) string {
	t.Helper()
	periods := []string{"2024-01-01", "2024-02-01", "2024-03-01"}
	return WriteWorkbook(t, dir, "gasoline_data.xlsx",
		Sheet{Name: "Demand", Periods: periods, Rows: []Row{
			{Country: "FR", Values: Nums(10, 20, 30)},
			{Country: "DE", Values: Nums(5, 5, 5)},
		}},
		Sheet{Name: "Supply", Periods: periods, Rows: []Row{
			{Country: "FR", Values: Nums(15, 15, 15)},
			{Country: "DE", Values: Nums(0, 10, 20)},
		}},
	)
}
