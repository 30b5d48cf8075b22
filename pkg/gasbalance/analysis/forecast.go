package analysis

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/eurofuel/gasbalance-go/pkg/gasbalance/models"
)

// Method names the model that produced a forecast.
type Method string

const (
	MethodHoltWinters Method = "holt-winters"
	MethodLinear      Method = "linear"
)

var (
	// ErrShortSeries is returned when a series holds fewer than two seasons.
	ErrShortSeries = errors.New("series shorter than two seasons")
	// ErrNonFinite is returned when a fitted model diverges.
	ErrNonFinite = errors.New("forecast is not finite")
)

// smoothingGrid is searched for alpha, beta and gamma.
var smoothingGrid = []float64{0.05, 0.1, 0.2, 0.3, 0.5, 0.7, 0.9}

// ForecastConfig controls ForecastTable.
type ForecastConfig struct {
	Horizon      int
	SeasonLength int
	// Countries is how many of the largest countries are forecast.
	Countries int
}

// DefaultForecastConfig returns a monthly config: twelve months ahead with
// a yearly season for the six largest countries.
func DefaultForecastConfig() ForecastConfig {
	return ForecastConfig{Horizon: 12, SeasonLength: 12, Countries: 6}
}

// Forecast is the projection of one country's series.
type Forecast struct {
	Country string      `json:"country"`
	Method  Method      `json:"method"`
	Periods []time.Time `json:"periods"`
	Values  []float64   `json:"values"`
	// Current is the last observed value.
	Current float64 `json:"current"`
	// Err is why the seasonal model was not used, if it was not.
	Err error `json:"-"`
}

// Mean is the average forecast value.
func (f Forecast) Mean() float64 {
	return models.RowMean(f.Values)
}

// Change is the percent difference between Mean and Current, NaN when
// Current is zero.
func (f Forecast) Change() float64 {
	if f.Current == 0 {
		return math.NaN()
	}
	return (f.Mean() - f.Current) / f.Current * 100
}

// ForecastTable projects the series of the largest countries of t. A country
// whose seasonal fit fails falls back to a linear trend without affecting
// the others. The table's period labels must parse as dates.
func ForecastTable(t *models.SeriesTable, cfg ForecastConfig, logger *slog.Logger) ([]Forecast, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if t.Empty() {
		return nil, nil
	}
	if cfg.Horizon <= 0 || cfg.SeasonLength <= 0 {
		return nil, fmt.Errorf("invalid forecast config: horizon %d, season %d", cfg.Horizon, cfg.SeasonLength)
	}

	times, err := ParsePeriods(t.Periods)
	if err != nil {
		return nil, fmt.Errorf("%s periods: %w", t.Name, err)
	}
	periods := MonthsAfter(times[len(times)-1], cfg.Horizon)

	top := models.Largest(t.Means(), cfg.Countries)
	out := make([]Forecast, 0, len(top))
	for _, c := range top {
		row, _ := t.Row(c.Country)
		f := forecastSeries(row, cfg)
		f.Country = c.Country
		f.Periods = periods
		if f.Err != nil {
			logger.Warn("seasonal forecast failed, using linear trend",
				slog.String("table", t.Name),
				slog.String("country", c.Country),
				slog.String("error", f.Err.Error()))
		}
		out = append(out, f)
	}
	logger.Info("forecast complete", slog.String("table", t.Name), slog.Int("countries", len(out)))
	return out, nil
}

func forecastSeries(series []float64, cfg ForecastConfig) Forecast {
	f := Forecast{Current: math.NaN()}
	if len(series) > 0 {
		f.Current = series[len(series)-1]
	}

	values, err := HoltWinters(series, cfg.SeasonLength, cfg.Horizon)
	if err == nil {
		f.Method = MethodHoltWinters
		f.Values = values
		return f
	}
	f.Method = MethodLinear
	f.Values = LinearTrend(series, cfg.Horizon)
	f.Err = err
	return f
}

// HoltWinters forecasts horizon steps with additive trend and seasonality.
// The smoothing constants are chosen from a grid by in-sample squared
// one-step error.
func HoltWinters(series []float64, season, horizon int) ([]float64, error) {
	if season < 1 || len(series) < 2*season {
		return nil, fmt.Errorf("%w: %d values, season %d", ErrShortSeries, len(series), season)
	}

	best := math.Inf(1)
	var bestFit *holtWinters
	for _, a := range smoothingGrid {
		for _, b := range smoothingGrid {
			for _, g := range smoothingGrid {
				hw := newHoltWinters(series, season, a, b, g)
				if sse := hw.fit(series); sse < best {
					best, bestFit = sse, hw
				}
			}
		}
	}
	if bestFit == nil {
		return nil, ErrNonFinite
	}

	out := make([]float64, horizon)
	for h := range out {
		out[h] = bestFit.predict(len(series), h+1)
		if math.IsNaN(out[h]) || math.IsInf(out[h], 0) {
			return nil, ErrNonFinite
		}
	}
	return out, nil
}

type holtWinters struct {
	alpha, beta, gamma float64
	level, trend       float64
	seasonal           []float64
}

func newHoltWinters(series []float64, season int, alpha, beta, gamma float64) *holtWinters {
	first := stat.Mean(series[:season], nil)
	second := stat.Mean(series[season:2*season], nil)
	hw := &holtWinters{
		alpha:    alpha,
		beta:     beta,
		gamma:    gamma,
		level:    first,
		trend:    (second - first) / float64(season),
		seasonal: make([]float64, season),
	}
	for i := range hw.seasonal {
		hw.seasonal[i] = series[i] - first
	}
	return hw
}

// fit runs the smoothing recursions over series and returns the sum of
// squared one-step errors, +Inf if the model diverges.
func (hw *holtWinters) fit(series []float64) float64 {
	m := len(hw.seasonal)
	var sse float64
	for t, y := range series {
		s := hw.seasonal[t%m]
		e := y - (hw.level + hw.trend + s)
		sse += e * e

		level := hw.alpha*(y-s) + (1-hw.alpha)*(hw.level+hw.trend)
		hw.trend = hw.beta*(level-hw.level) + (1-hw.beta)*hw.trend
		hw.level = level
		hw.seasonal[t%m] = hw.gamma*(y-level) + (1-hw.gamma)*s
	}
	if math.IsNaN(sse) {
		return math.Inf(1)
	}
	return sse
}

// predict returns the value h steps after the n fitted observations.
func (hw *holtWinters) predict(n, h int) float64 {
	m := len(hw.seasonal)
	return hw.level + float64(h)*hw.trend + hw.seasonal[(n-1+h)%m]
}

// LinearTrend extends series from its last value by the least-squares
// slope over its index.
func LinearTrend(series []float64, horizon int) []float64 {
	out := make([]float64, horizon)
	n := len(series)
	if n == 0 {
		for i := range out {
			out[i] = math.NaN()
		}
		return out
	}

	var slope float64
	if n > 1 {
		x := make([]float64, n)
		for i := range x {
			x[i] = float64(i)
		}
		_, slope = stat.LinearRegression(x, series, nil, false)
	}
	last := series[n-1]
	for i := range out {
		out[i] = last + slope*float64(i+1)
	}
	return out
}
