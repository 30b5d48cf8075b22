package parser

import (
	"errors"
	"testing"
)

func TestSelectSheets(t *testing.T) {
	tests := []struct {
		name         string
		sheets       []string
		demand       string
		supply       string
		demandByName bool
		supplyByName bool
		skipped      string
	}{
		{"named", []string{"Demand", "Supply"}, "Demand", "Supply", true, true, ""},
		{"named any case and position", []string{"Notes", "SUPPLY 2016-2025", "Readme", "gasoline demand"}, "gasoline demand", "SUPPLY 2016-2025", true, true, ""},
		{"positional", []string{"Sheet1", "Sheet2"}, "Sheet1", "Sheet2", false, false, ""},
		{"positional with extra sheets", []string{"A", "B", "C"}, "A", "B", false, false, ""},
		{"last match wins", []string{"Demand old", "Demand new", "Supply"}, "Demand new", "Supply", true, true, ""},
		{"positional skips named sheet", []string{"Data", "Demand"}, "Demand", "Data", true, false, "Demand"},
		{"demand positional skips supply", []string{"Supply", "Other"}, "Other", "Supply", false, true, "Supply"},
		{"positional not at claimed slot", []string{"Other", "Supply"}, "Other", "Supply", false, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := SelectSheets(tt.sheets)
			if err != nil {
				t.Fatalf("SelectSheets(%v) failed: %v", tt.sheets, err)
			}
			if sel.Demand != tt.demand || sel.Supply != tt.supply {
				t.Errorf("SelectSheets(%v) = (%q, %q), expected (%q, %q)",
					tt.sheets, sel.Demand, sel.Supply, tt.demand, tt.supply)
			}
			if sel.DemandByName != tt.demandByName || sel.SupplyByName != tt.supplyByName {
				t.Errorf("SelectSheets(%v) by name = (%v, %v), expected (%v, %v)",
					tt.sheets, sel.DemandByName, sel.SupplyByName, tt.demandByName, tt.supplyByName)
			}
			if sel.Skipped != tt.skipped {
				t.Errorf("SelectSheets(%v) skipped = %q, expected %q", tt.sheets, sel.Skipped, tt.skipped)
			}
		})
	}
}

func TestSelectSheetsUnresolved(t *testing.T) {
	tests := []struct {
		sheets []string
		table  string
	}{
		{nil, "demand"},
		{[]string{"Only"}, "supply"},
		{[]string{"Supply"}, "demand"},
		{[]string{"Demand"}, "supply"},
	}

	for _, tt := range tests {
		_, err := SelectSheets(tt.sheets)
		if !errors.Is(err, ErrSheetNotFound) {
			t.Fatalf("SelectSheets(%v) error = %v, expected ErrSheetNotFound", tt.sheets, err)
		}
		var sheetErr *SheetError
		if !errors.As(err, &sheetErr) || sheetErr.Table != tt.table {
			t.Errorf("SelectSheets(%v) unresolved table = %v, expected %q", tt.sheets, err, tt.table)
		}
	}
}
