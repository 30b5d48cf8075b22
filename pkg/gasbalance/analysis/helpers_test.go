package analysis

import (
	"fmt"

	"github.com/eurofuel/gasbalance-go/pkg/gasbalance/models"
)

func table(name string, periods []string, rows map[string][]float64, order ...string) *models.SeriesTable {
	t := &models.SeriesTable{Name: name, Countries: order, Periods: periods}
	for _, c := range order {
		t.Values = append(t.Values, rows[c])
	}
	return t
}

// monthly returns n month labels starting at year-01.
func monthly(year, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%d-%02d-01", year+i/12, i%12+1)
	}
	return out
}

func countries(values []models.CountryValue) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.Country
	}
	return out
}

var market = struct {
	demand, supply *models.SeriesTable
}{
	demand: table("Demand", []string{"2024-01-01", "2024-02-01", "2024-03-01"}, map[string][]float64{
		"FR": {10, 20, 30},
		"DE": {5, 5, 5},
	}, "FR", "DE"),
	supply: table("Supply", []string{"2024-01-01", "2024-02-01", "2024-03-01"}, map[string][]float64{
		"FR": {15, 15, 15},
		"DE": {0, 10, 20},
	}, "FR", "DE"),
}
