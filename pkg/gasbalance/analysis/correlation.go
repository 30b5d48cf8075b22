package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/eurofuel/gasbalance-go/pkg/gasbalance/models"
)

// Efficiency verdicts for the average demand/supply correlation.
const (
	EfficiencyHigh  = "efficient"
	EfficiencyMixed = "mixed"
	EfficiencyLow   = "low"
)

// Correlations is how closely supply tracks demand, per country.
type Correlations struct {
	// Countries is sorted by correlation, strongest first, NaN last.
	Countries []models.CountryValue `json:"countries"`
	// Average is the mean over the countries with a defined correlation.
	Average float64 `json:"average"`
}

// Efficiency classifies the average correlation.
func (c Correlations) Efficiency() string {
	switch {
	case c.Average > 0.7:
		return EfficiencyHigh
	case c.Average > 0.4:
		return EfficiencyMixed
	default:
		return EfficiencyLow
	}
}

// Correlate computes the Pearson correlation between each shared country's
// demand and supply series over the shared periods. A constant series has
// no defined correlation and yields NaN.
func Correlate(demand, supply *models.SeriesTable) Correlations {
	p := pair(demand, supply)
	values := make([]models.CountryValue, len(p.countries))
	for i, country := range p.countries {
		values[i] = models.CountryValue{Country: country, Value: pearson(p.demand[i], p.supply[i])}
	}
	return Correlations{
		Countries: models.SortDescending(values),
		Average:   meanOf(values),
	}
}

func pearson(x, y []float64) float64 {
	if len(x) < 2 {
		return math.NaN()
	}
	r := stat.Correlation(x, y, nil)
	if math.IsInf(r, 0) {
		return math.NaN()
	}
	return r
}

// meanOf averages the defined values; it is NaN when there are none.
func meanOf(values []models.CountryValue) float64 {
	row := make([]float64, len(values))
	for i, v := range values {
		row[i] = v.Value
	}
	return models.RowMean(row)
}
