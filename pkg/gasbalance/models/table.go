// Package models defines data structures for the gasoline dataset.
package models

import (
	"math"

	"github.com/montanaflynn/stats"
)

// SeriesTable is a country by time-period table of volumes.
type SeriesTable struct {
	// Name labels the quantity held by the table ("Demand" or "Supply").
	Name string `json:"name"`
	// Countries holds the row keys in sheet order.
	Countries []string `json:"countries"`
	// Periods holds the column keys in sheet order.
	Periods []string `json:"periods"`
	// Values is indexed [country][period]. Missing cells are NaN until the
	// table has been cleaned.
	Values [][]float64 `json:"values"`
}

// CountryValue pairs a country with a single statistic.
type CountryValue struct {
	Country string  `json:"country"`
	Value   float64 `json:"value"`
}

// Shape returns the number of countries and periods.
func (t *SeriesTable) Shape() (rows, cols int) {
	return len(t.Countries), len(t.Periods)
}

// Empty reports whether the table has no rows or no columns.
func (t *SeriesTable) Empty() bool {
	return t == nil || len(t.Countries) == 0 || len(t.Periods) == 0
}

// RowIndex returns the position of country, or -1.
func (t *SeriesTable) RowIndex(country string) int {
	for i, c := range t.Countries {
		if c == country {
			return i
		}
	}
	return -1
}

// PeriodIndex returns the position of the period label, or -1.
func (t *SeriesTable) PeriodIndex(label string) int {
	for i, p := range t.Periods {
		if p == label {
			return i
		}
	}
	return -1
}

// Row returns the series for country.
func (t *SeriesTable) Row(country string) ([]float64, bool) {
	i := t.RowIndex(country)
	if i < 0 {
		return nil, false
	}
	return t.Values[i], true
}

// Total returns the grand sum of all cells. NaN cells are skipped.
func (t *SeriesTable) Total() float64 {
	var total float64
	for _, row := range t.Values {
		for _, v := range row {
			if !math.IsNaN(v) {
				total += v
			}
		}
	}
	return total
}

// Means returns the mean of every row in row order. NaN cells are skipped;
// a row without values has a NaN mean.
func (t *SeriesTable) Means() []CountryValue {
	means := make([]CountryValue, len(t.Countries))
	for i, country := range t.Countries {
		means[i] = CountryValue{Country: country, Value: RowMean(t.Values[i])}
	}
	return means
}

// RowMean is the mean of the non-NaN values in row.
func RowMean(row []float64) float64 {
	mean, err := stats.Mean(finite(row))
	if err != nil {
		return math.NaN()
	}
	return mean
}

// Clone returns a deep copy of the table.
func (t *SeriesTable) Clone() *SeriesTable {
	if t == nil {
		return nil
	}
	out := &SeriesTable{
		Name:      t.Name,
		Countries: append([]string(nil), t.Countries...),
		Periods:   append([]string(nil), t.Periods...),
		Values:    make([][]float64, len(t.Values)),
	}
	for i, row := range t.Values {
		out.Values[i] = append([]float64(nil), row...)
	}
	return out
}

func finite(row []float64) stats.Float64Data {
	out := make(stats.Float64Data, 0, len(row))
	for _, v := range row {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}
