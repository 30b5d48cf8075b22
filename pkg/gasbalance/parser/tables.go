package parser

import "strings"

// region is the bounding box of the non-empty cells of a sheet, zero-based
// and inclusive.
type region struct {
	minRow, maxRow int
	minCol, maxCol int
}

func (r region) empty() bool {
	return r.minRow < 0
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) region {
	b := region{minRow: -1, maxRow: -1, minCol: -1, maxCol: -1}

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if strings.TrimSpace(cell) == "" {
				continue
			}
			if b.minRow < 0 || rowIdx < b.minRow {
				b.minRow = rowIdx
			}
			if b.maxRow < 0 || rowIdx > b.maxRow {
				b.maxRow = rowIdx
			}
			if b.minCol < 0 || colIdx < b.minCol {
				b.minCol = colIdx
			}
			if b.maxCol < 0 || colIdx > b.maxCol {
				b.maxCol = colIdx
			}
		}
	}

	return b
}

// cellAt returns the cell at (row, col) or "" when the row is short.
// excelize trims trailing empty cells from each row.
func cellAt(rows [][]string, row, col int) string {
	if row < 0 || row >= len(rows) {
		return ""
	}
	if col < 0 || col >= len(rows[row]) {
		return ""
	}
	return rows[row][col]
}
