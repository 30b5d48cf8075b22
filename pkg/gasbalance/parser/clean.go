package parser

import (
	"errors"
	"io"
	"log/slog"
	"math"

	"github.com/eurofuel/gasbalance-go/pkg/gasbalance/models"
)

// ErrEmptyTable indicates a sheet had no usable rows or columns.
var ErrEmptyTable = errors.New("table is empty after cleaning")

// Clean returns a copy of t with all-missing rows and columns removed,
// rows without a country name removed, repeated country names collapsed to
// their first occurrence, and the remaining missing values set to zero.
// Cleaning a cleaned table returns an equal table.
func Clean(t *models.SeriesTable, logger *slog.Logger) *models.SeriesTable {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	out := &models.SeriesTable{Name: t.Name}

	keepCol := make([]bool, len(t.Periods))
	var keepRows []int
	seen := make(map[string]bool)
	for i, row := range t.Values {
		if allMissing(row) {
			continue
		}
		country := t.Countries[i]
		if country == "" {
			logger.Warn("dropping row without a country name",
				slog.String("table", t.Name),
				slog.Int("row", i))
			continue
		}
		if seen[country] {
			logger.Warn("dropping repeated country row",
				slog.String("table", t.Name),
				slog.String("country", country))
			continue
		}
		seen[country] = true
		keepRows = append(keepRows, i)
		for j, v := range row {
			if !math.IsNaN(v) {
				keepCol[j] = true
			}
		}
	}

	var cols []int
	for j, keep := range keepCol {
		if keep {
			cols = append(cols, j)
			out.Periods = append(out.Periods, t.Periods[j])
		}
	}

	filled := 0
	for _, i := range keepRows {
		values := make([]float64, len(cols))
		for k, j := range cols {
			v := t.Values[i][j]
			if math.IsNaN(v) {
				v = 0
				filled++
			}
			values[k] = v
		}
		out.Countries = append(out.Countries, t.Countries[i])
		out.Values = append(out.Values, values)
	}

	rows, periods := out.Shape()
	logger.Info("cleaned table",
		slog.String("table", t.Name),
		slog.Int("countries", rows),
		slog.Int("periods", periods),
		slog.Int("dropped_rows", len(t.Countries)-rows),
		slog.Int("dropped_columns", len(t.Periods)-periods),
		slog.Int("filled_cells", filled))

	return out
}

func allMissing(row []float64) bool {
	for _, v := range row {
		if !math.IsNaN(v) {
			return false
		}
	}
	return true
}
