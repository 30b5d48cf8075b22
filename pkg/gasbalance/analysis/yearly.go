package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/eurofuel/gasbalance-go/pkg/gasbalance/models"
)

// YearTotals is the market volume of one calendar year.
type YearTotals struct {
	Year   int     `json:"year"`
	Demand float64 `json:"demand"`
	Supply float64 `json:"supply"`
	// Balance is Supply minus Demand.
	Balance float64 `json:"balance"`
	// Growth is the percent change from the previous year, NaN for the
	// first year or when the previous total is zero.
	DemandGrowth float64 `json:"demand_growth_pct"`
	SupplyGrowth float64 `json:"supply_growth_pct"`
}

// Surplus reports whether supply exceeded demand.
func (y YearTotals) Surplus() bool {
	return y.Balance > 0
}

// Yearly sums each table over countries and months per calendar year.
// Years are ascending and cover every year either table observes.
func Yearly(demand, supply *models.SeriesTable) ([]YearTotals, error) {
	dYears, err := yearSums(demand)
	if err != nil {
		return nil, err
	}
	sYears, err := yearSums(supply)
	if err != nil {
		return nil, err
	}

	years := make([]int, 0, len(dYears))
	for y := range dYears {
		years = append(years, y)
	}
	for y := range sYears {
		if _, ok := dYears[y]; !ok {
			years = append(years, y)
		}
	}
	sort.Ints(years)

	out := make([]YearTotals, len(years))
	for i, y := range years {
		out[i] = YearTotals{
			Year:         y,
			Demand:       dYears[y],
			Supply:       sYears[y],
			Balance:      sYears[y] - dYears[y],
			DemandGrowth: math.NaN(),
			SupplyGrowth: math.NaN(),
		}
		if i > 0 {
			out[i].DemandGrowth = growth(out[i-1].Demand, out[i].Demand)
			out[i].SupplyGrowth = growth(out[i-1].Supply, out[i].Supply)
		}
	}
	return out, nil
}

func growth(prev, cur float64) float64 {
	if prev == 0 {
		return math.NaN()
	}
	return (cur - prev) / prev * 100
}

func yearSums(t *models.SeriesTable) (map[int]float64, error) {
	out := make(map[int]float64)
	if t.Empty() {
		return out, nil
	}
	groups, err := groupByYear(t)
	if err != nil {
		return nil, err
	}
	for _, g := range groups {
		var total float64
		for _, row := range t.Values {
			for _, c := range g.cols {
				if !math.IsNaN(row[c]) {
					total += row[c]
				}
			}
		}
		out[g.year] = total
	}
	return out, nil
}

type yearGroup struct {
	year int
	cols []int
}

// groupByYear buckets the table's columns by calendar year, ascending.
func groupByYear(t *models.SeriesTable) ([]yearGroup, error) {
	times, err := ParsePeriods(t.Periods)
	if err != nil {
		return nil, fmt.Errorf("%s periods: %w", t.Name, err)
	}
	index := make(map[int]int)
	var groups []yearGroup
	for c, ts := range times {
		y := ts.Year()
		i, ok := index[y]
		if !ok {
			i = len(groups)
			index[y] = i
			groups = append(groups, yearGroup{year: y})
		}
		groups[i].cols = append(groups[i].cols, c)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].year < groups[j].year })
	return groups, nil
}
