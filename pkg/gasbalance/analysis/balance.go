package analysis

import "github.com/eurofuel/gasbalance-go/pkg/gasbalance/models"

// TopImbalances is how many countries the balance and volatility rankings show.
const TopImbalances = 15

// Region is a named group of countries traded as one hub.
type Region struct {
	Name      string   `yaml:"name" json:"name"`
	Countries []string `yaml:"countries" json:"countries"`
}

// CountryBalance returns, for each country in both tables, the mean of
// supply minus demand over the shared periods, most negative first.
func CountryBalance(demand, supply *models.SeriesTable) []models.CountryValue {
	p := pair(demand, supply)
	out := make([]models.CountryValue, 0, len(p.countries))
	for i, country := range p.countries {
		gap := make([]float64, len(p.periods))
		for j := range p.periods {
			gap[j] = p.supply[i][j] - p.demand[i][j]
		}
		out = append(out, models.CountryValue{Country: country, Value: models.RowMean(gap)})
	}
	return models.SortAscending(out)
}

// RegionBalance sums the country balances of every region, most negative
// first. Countries absent from balances contribute nothing.
func RegionBalance(balances []models.CountryValue, regions []Region) []models.CountryValue {
	byCountry := make(map[string]float64, len(balances))
	for _, b := range balances {
		byCountry[b.Country] = b.Value
	}

	out := make([]models.CountryValue, 0, len(regions))
	for _, r := range regions {
		var total float64
		for _, c := range r.Countries {
			if v, ok := byCountry[c]; ok {
				total += v
			}
		}
		out = append(out, models.CountryValue{Country: r.Name, Value: total})
	}
	return models.SortAscending(out)
}
