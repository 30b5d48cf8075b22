package analysis

import "github.com/eurofuel/gasbalance-go/pkg/gasbalance/models"

// DefaultTopMarkets is the size of the market ranking in an Overview.
const DefaultTopMarkets = 5

// Overview is the headline picture of the market.
type Overview struct {
	TotalDemand float64 `json:"total_demand"`
	TotalSupply float64 `json:"total_supply"`
	// NetBalance is TotalSupply minus TotalDemand.
	NetBalance float64 `json:"net_balance"`
	// TopMarkets ranks countries by mean demand.
	TopMarkets []models.CountryValue `json:"top_markets"`
	// Exporters and Importers list countries whose mean supply is above
	// or below their mean demand, in demand order.
	Exporters []string `json:"net_exporters"`
	Importers []string `json:"net_importers"`
}

// NewOverview summarizes the market. top limits TopMarkets; a negative
// value keeps every country.
func NewOverview(demand, supply *models.SeriesTable, top int) Overview {
	var o Overview
	if demand.Empty() || supply.Empty() {
		return o
	}

	o.TotalDemand = demand.Total()
	o.TotalSupply = supply.Total()
	o.NetBalance = o.TotalSupply - o.TotalDemand
	o.TopMarkets = models.Largest(demand.Means(), top)

	for _, p := range NetPositions(demand, supply) {
		switch {
		case p.Value > 0:
			o.Exporters = append(o.Exporters, p.Country)
		case p.Value < 0:
			o.Importers = append(o.Importers, p.Country)
		}
	}
	return o
}

// NetPositions returns mean supply minus mean demand for every country
// present in both tables, in demand order. Means run over each table's own
// periods.
func NetPositions(demand, supply *models.SeriesTable) []models.CountryValue {
	if demand.Empty() || supply.Empty() {
		return nil
	}
	var out []models.CountryValue
	for i, country := range demand.Countries {
		row, ok := supply.Row(country)
		if !ok {
			continue
		}
		out = append(out, models.CountryValue{
			Country: country,
			Value:   models.RowMean(row) - models.RowMean(demand.Values[i]),
		})
	}
	return out
}
