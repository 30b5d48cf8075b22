// Package analysis computes market statistics from cleaned demand and
// supply tables.
package analysis

import "github.com/eurofuel/gasbalance-go/pkg/gasbalance/models"

// pairing lines demand and supply up on the countries and periods both
// tables carry, in demand order.
type pairing struct {
	countries []string
	periods   []string
	demand    [][]float64
	supply    [][]float64
}

func pair(demand, supply *models.SeriesTable) pairing {
	var p pairing
	if demand.Empty() || supply.Empty() {
		return p
	}

	var dCols, sCols []int
	for i, label := range demand.Periods {
		if j := supply.PeriodIndex(label); j >= 0 {
			p.periods = append(p.periods, label)
			dCols = append(dCols, i)
			sCols = append(sCols, j)
		}
	}

	for i, country := range demand.Countries {
		j := supply.RowIndex(country)
		if j < 0 {
			continue
		}
		p.countries = append(p.countries, country)
		p.demand = append(p.demand, pick(demand.Values[i], dCols))
		p.supply = append(p.supply, pick(supply.Values[j], sCols))
	}
	return p
}

func pick(row []float64, cols []int) []float64 {
	out := make([]float64, len(cols))
	for i, c := range cols {
		out[i] = row[c]
	}
	return out
}
