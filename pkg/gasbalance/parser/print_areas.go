package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

const printAreaName = "_xlnm.Print_Area"

// HasPrintArea reports whether sheet defines a print area.
func HasPrintArea(f *excelize.File, sheet string) bool {
	_, ok := printArea(f, sheet)
	return ok
}

// printArea returns the first print area defined for sheet, zero-based.
func printArea(f *excelize.File, sheet string) (region, bool) {
	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, printAreaName) {
			continue
		}
		ref, area, ok := parsePrintAreaReference(dn.RefersTo)
		if !ok {
			continue
		}
		if dn.Scope == sheet || (dn.Scope == "Workbook" && ref == sheet) {
			return area, true
		}
	}
	return region{}, false
}

// parsePrintAreaReference parses 'Sheet Name'!$A$1:$D$10 or Sheet!$A$1:$D$10.
// Only the first range of a multi-range reference is kept.
func parsePrintAreaReference(ref string) (string, region, bool) {
	part, _, _ := strings.Cut(ref, ",")
	idx := strings.LastIndex(part, "!")
	if idx < 0 {
		return "", region{}, false
	}
	sheet := strings.Trim(strings.TrimSpace(part[:idx]), "'")
	sheet = strings.ReplaceAll(sheet, "''", "'")

	area, ok := parseRange(part[idx+1:])
	return sheet, area, ok
}

// parseRange parses $A$1:$D$10 into a zero-based region.
func parseRange(s string) (region, bool) {
	start, end, ok := strings.Cut(strings.ReplaceAll(strings.TrimSpace(s), "$", ""), ":")
	if !ok {
		return region{}, false
	}
	c1, r1, err := excelize.CellNameToCoordinates(start)
	if err != nil {
		return region{}, false
	}
	c2, r2, err := excelize.CellNameToCoordinates(end)
	if err != nil {
		return region{}, false
	}
	return region{
		minRow: min(r1, r2) - 1,
		maxRow: max(r1, r2) - 1,
		minCol: min(c1, c2) - 1,
		maxCol: max(c1, c2) - 1,
	}, true
}

// clip blanks every cell outside area.
func clip(rows [][]string, area region) [][]string {
	out := make([][]string, len(rows))
	for r, row := range rows {
		if r < area.minRow || r > area.maxRow {
			continue
		}
		out[r] = make([]string, len(row))
		for c, cell := range row {
			if c >= area.minCol && c <= area.maxCol {
				out[r][c] = cell
			}
		}
	}
	return out
}
