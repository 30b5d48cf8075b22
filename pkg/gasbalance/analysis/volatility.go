package analysis

import (
	"math"

	"github.com/montanaflynn/stats"

	"github.com/eurofuel/gasbalance-go/pkg/gasbalance/models"
)

// Volatility holds coefficients of variation for one table.
type Volatility struct {
	// Countries is sorted most volatile first, NaN last.
	Countries []models.CountryValue `json:"countries"`
	// Average ignores countries with an undefined coefficient.
	Average float64 `json:"average"`
}

// Top returns the n most volatile countries.
func (v Volatility) Top(n int) []models.CountryValue {
	return models.Largest(v.Countries, n)
}

// MeasureVolatility computes, per country, the sample standard deviation
// divided by the mean. The coefficient is NaN when the mean is zero or the
// series has fewer than two values.
func MeasureVolatility(t *models.SeriesTable) Volatility {
	if t.Empty() {
		return Volatility{Average: math.NaN()}
	}
	values := make([]models.CountryValue, len(t.Countries))
	for i, country := range t.Countries {
		values[i] = models.CountryValue{Country: country, Value: CoefficientOfVariation(t.Values[i])}
	}
	return Volatility{
		Countries: models.SortDescending(values),
		Average:   meanOf(values),
	}
}

// CoefficientOfVariation is the sample standard deviation of row over its mean.
func CoefficientOfVariation(row []float64) float64 {
	data := stats.Float64Data(row)
	mean, err := data.Mean()
	if err != nil || mean == 0 {
		return math.NaN()
	}
	std, err := stats.StandardDeviationSample(data)
	if err != nil || math.IsNaN(std) {
		return math.NaN()
	}
	return std / mean
}
