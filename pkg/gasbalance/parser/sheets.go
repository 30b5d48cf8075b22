// Package parser reads demand and supply tables out of Excel workbooks.
package parser

import (
	"errors"
	"strings"
)

// ErrSheetNotFound indicates the workbook has no sheet for one of the tables.
var ErrSheetNotFound = errors.New("sheet not found")

// Selection names the sheets chosen for the demand and supply tables.
type Selection struct {
	Demand string
	Supply string
	// DemandByName is true when the demand sheet was matched by name
	// rather than by position.
	DemandByName bool
	// SupplyByName is the same for the supply sheet.
	SupplyByName bool
	// Skipped is the sheet a positional pick passed over because the other
	// table had already claimed it by name. Empty when nothing was skipped.
	Skipped string
}

// SelectSheets picks the demand and supply sheets from the workbook's sheet
// list. A sheet whose name contains "demand" or "supply" (any case) is
// preferred; when several match, the last one wins. Otherwise the first
// sheet is demand and the second is supply. A positional pick never reuses
// the sheet already claimed by name for the other table.
func SelectSheets(names []string) (Selection, error) {
	var sel Selection
	for _, name := range names {
		lower := strings.ToLower(name)
		if strings.Contains(lower, "demand") {
			sel.Demand = name
			sel.DemandByName = true
		}
		if strings.Contains(lower, "supply") {
			sel.Supply = name
			sel.SupplyByName = true
		}
	}

	if sel.Demand == "" {
		sel.Demand, sel.Skipped = positional(names, 0, sel.Supply)
	}
	if sel.Supply == "" {
		sel.Supply, sel.Skipped = positional(names, 1, sel.Demand)
	}

	if sel.Demand == "" {
		return sel, &SheetError{Table: "demand", Sheets: names}
	}
	if sel.Supply == "" {
		return sel, &SheetError{Table: "supply", Sheets: names}
	}
	return sel, nil
}

// positional returns the sheet at pos, or the first other sheet when the
// one at pos is taken. skipped names the taken sheet it passed over.
func positional(names []string, pos int, taken string) (name, skipped string) {
	if pos >= len(names) {
		return "", ""
	}
	if names[pos] != taken {
		return names[pos], ""
	}
	for _, name := range names {
		if name != taken {
			return name, taken
		}
	}
	return "", taken
}

// SheetError reports which table could not be matched to a sheet.
type SheetError struct {
	Table  string
	Sheets []string
}

func (e *SheetError) Error() string {
	return "no " + e.Table + " sheet among [" + strings.Join(e.Sheets, ", ") + "]"
}

func (e *SheetError) Unwrap() error {
	return ErrSheetNotFound
}
