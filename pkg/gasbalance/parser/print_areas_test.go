package parser

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestParsePrintAreaReference(t *testing.T) {
	tests := []struct {
		ref   string
		sheet string
		area  region
		ok    bool
	}{
		{"Sheet1!$A$1:$D$10", "Sheet1", region{0, 9, 0, 3}, true},
		{"'EU Demand'!$B$2:$C$5", "EU Demand", region{1, 4, 1, 2}, true},
		{"'It''s'!$D$4:$B$2", "It's", region{1, 3, 1, 3}, true},
		{"Sheet1!$A$1:$B$2,Sheet1!$D$1:$E$2", "Sheet1", region{0, 1, 0, 1}, true},
		{"$A$1:$B$2", "", region{}, false},
		{"Sheet1!$A$1", "Sheet1", region{}, false},
		{"Sheet1!#REF!", "Sheet1#REF", region{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			sheet, area, ok := parsePrintAreaReference(tt.ref)
			if ok != tt.ok {
				t.Fatalf("Expected ok=%v, got %v", tt.ok, ok)
			}
			if !ok {
				return
			}
			if sheet != tt.sheet {
				t.Errorf("Expected sheet %q, got %q", tt.sheet, sheet)
			}
			if area != tt.area {
				t.Errorf("Expected area %+v, got %+v", tt.area, area)
			}
		})
	}
}

// printAreaBook has a two-row print area over a three-country sheet.
func printAreaBook(t *testing.T) *excelize.File {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Country")
	f.SetCellValue(sheetName, "B1", "2016-01")
	f.SetCellValue(sheetName, "C1", "2016-02")
	f.SetCellValue(sheetName, "A2", "France")
	f.SetCellValue(sheetName, "B2", 100)
	f.SetCellValue(sheetName, "C2", 110)
	f.SetCellValue(sheetName, "A3", "Germany")
	f.SetCellValue(sheetName, "B3", 200)
	f.SetCellValue(sheetName, "A4", "Spain")
	f.SetCellValue(sheetName, "C4", 50)
	if err := f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: "Sheet1!$A$1:$B$2",
		Scope:    sheetName,
	}); err != nil {
		t.Fatalf("Failed to set print area: %v", err)
	}
	return saveAndReopen(t, f)
}

func TestReadTableIgnoresPrintArea(t *testing.T) {
	f := printAreaBook(t)
	if !HasPrintArea(f, "Sheet1") {
		t.Fatal("Expected Sheet1 to have a print area")
	}

	table, err := ReadTable(f, "Sheet1", "Demand")
	if err != nil {
		t.Fatalf("ReadTable failed: %v", err)
	}
	want := []string{"France", "Germany", "Spain"}
	if len(table.Countries) != len(want) {
		t.Fatalf("Expected countries %v, got %v", want, table.Countries)
	}
	for i, c := range want {
		if table.Countries[i] != c {
			t.Errorf("Country %d: expected %q, got %q", i, c, table.Countries[i])
		}
	}
	if len(table.Periods) != 2 {
		t.Errorf("Expected two periods, got %v", table.Periods)
	}
	if table.Values[2][1] != 50 {
		t.Errorf("Expected Spain 2016-02 = 50, got %v", table.Values[2][1])
	}
}

func TestReadPrintArea(t *testing.T) {
	table, err := ReadPrintArea(printAreaBook(t), "Sheet1", "Demand")
	if err != nil {
		t.Fatalf("ReadPrintArea failed: %v", err)
	}
	if len(table.Countries) != 1 || table.Countries[0] != "France" {
		t.Errorf("Expected only France, got %v", table.Countries)
	}
	if len(table.Periods) != 1 || table.Periods[0] != "2016-01" {
		t.Errorf("Expected one period, got %v", table.Periods)
	}
}

func TestReadTablePrintAreaOtherSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet("Other"); err != nil {
		t.Fatalf("Failed to add sheet: %v", err)
	}
	f.SetCellValue("Sheet1", "A1", "Country")
	f.SetCellValue("Sheet1", "B1", "2016-01")
	f.SetCellValue("Sheet1", "C1", "2016-02")
	f.SetCellValue("Sheet1", "A2", "France")
	f.SetCellValue("Sheet1", "B2", 1)
	f.SetCellValue("Sheet1", "C2", 2)
	if err := f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: "Other!$A$1:$A$1",
		Scope:    "Other",
	}); err != nil {
		t.Fatalf("Failed to set print area: %v", err)
	}

	book := saveAndReopen(t, f)
	if HasPrintArea(book, "Sheet1") {
		t.Error("Expected no print area on Sheet1")
	}
	table, err := ReadPrintArea(book, "Sheet1", "Demand")
	if err != nil {
		t.Fatalf("ReadPrintArea failed: %v", err)
	}
	if len(table.Periods) != 2 {
		t.Errorf("Expected the whole sheet, got periods %v", table.Periods)
	}
}

func TestClip(t *testing.T) {
	rows := [][]string{
		{"a", "b", "c"},
		{"d", "e"},
		{"g", "h", "i"},
	}
	got := clip(rows, region{minRow: 1, maxRow: 2, minCol: 1, maxCol: 2})

	if len(got[0]) != 0 {
		t.Errorf("Expected first row cleared, got %v", got[0])
	}
	if got[1][0] != "" || got[1][1] != "e" {
		t.Errorf("Unexpected second row %v", got[1])
	}
	if got[2][0] != "" || got[2][1] != "h" || got[2][2] != "i" {
		t.Errorf("Unexpected third row %v", got[2])
	}
	if rows[0][0] != "a" {
		t.Error("Input was modified")
	}
}
