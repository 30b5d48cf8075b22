package gasbalance

import "github.com/eurofuel/gasbalance-go/pkg/gasbalance/models"

// TopCountries is the size of the ranking in a TableSummary.
const TopCountries = 5

// TableSummary describes one SeriesTable.
type TableSummary struct {
	Countries   int      `json:"n_countries"`
	Periods     int      `json:"n_time_periods"`
	Start       string   `json:"start"`
	End         string   `json:"end"`
	CountryList []string `json:"countries"`
	// TotalVolume is the grand sum over all countries and periods.
	TotalVolume float64 `json:"total_volume"`
	// AveragePerCountry is the mean over periods, in row order.
	AveragePerCountry []models.CountryValue `json:"average_per_country"`
	// Top lists the TopCountries largest averages.
	Top []models.CountryValue `json:"top_countries"`
}

// Summary describes the demand and supply tables independently.
type Summary struct {
	Demand TableSummary `json:"demand"`
	Supply TableSummary `json:"supply"`
}

// Summarize computes a Summary. It returns nil if either table is nil.
func Summarize(demand, supply *models.SeriesTable) *Summary {
	if demand == nil || supply == nil {
		return nil
	}
	return &Summary{
		Demand: summarizeTable(demand),
		Supply: summarizeTable(supply),
	}
}

func summarizeTable(t *models.SeriesTable) TableSummary {
	means := t.Means()
	s := TableSummary{
		Countries:         len(t.Countries),
		Periods:           len(t.Periods),
		CountryList:       append([]string(nil), t.Countries...),
		TotalVolume:       t.Total(),
		AveragePerCountry: means,
		Top:               models.Largest(means, TopCountries),
	}
	if len(t.Periods) > 0 {
		s.Start = t.Periods[0]
		s.End = t.Periods[len(t.Periods)-1]
	}
	return s
}
