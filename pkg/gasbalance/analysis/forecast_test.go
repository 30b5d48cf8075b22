package analysis

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seasonShape = []float64{-6, -4, -1, 2, 5, 8, 7, 4, 0, -3, -5, -7}

func periodic(level float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = level + seasonShape[i%len(seasonShape)]
	}
	return out
}

func constant(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestHoltWintersPeriodic(t *testing.T) {
	got, err := HoltWinters(periodic(100, 36), 12, 12)
	require.NoError(t, err)
	require.Len(t, got, 12)
	for i, v := range got {
		assert.InDelta(t, 100+seasonShape[i], v, 1e-9, "step %d", i+1)
	}
}

func TestHoltWintersConstant(t *testing.T) {
	got, err := HoltWinters(constant(7, 24), 12, 3)
	require.NoError(t, err)
	for _, v := range got {
		assert.InDelta(t, 7, v, 1e-9)
	}
}

func TestHoltWintersShortSeries(t *testing.T) {
	_, err := HoltWinters(constant(7, 23), 12, 3)
	assert.ErrorIs(t, err, ErrShortSeries)

	_, err = HoltWinters(constant(7, 10), 0, 3)
	assert.ErrorIs(t, err, ErrShortSeries)
}

func TestHoltWintersDiverges(t *testing.T) {
	series := constant(math.MaxFloat64, 24)
	series[5] = -math.MaxFloat64

	_, err := HoltWinters(series, 12, 3)
	assert.ErrorIs(t, err, ErrNonFinite)
}

func TestLinearTrend(t *testing.T) {
	assertSeries(t, []float64{5, 6, 7}, LinearTrend([]float64{1, 2, 3, 4}, 3))
	// slope comes from the fit, the start from the last value
	assertSeries(t, []float64{13, 16}, LinearTrend([]float64{0, 4, 4, 10}, 2))
	assertSeries(t, []float64{3, 3}, LinearTrend([]float64{3}, 2))

	for _, v := range LinearTrend(nil, 2) {
		assert.True(t, math.IsNaN(v))
	}
}

func assertSeries(t *testing.T, want, got []float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9, "index %d", i)
	}
}

func TestForecastTable(t *testing.T) {
	periods := monthly(2022, 24)
	tbl := table("Demand", periods, map[string][]float64{
		"Small": constant(1, 24),
		"Big":   periodic(100, 24),
		"Mid":   constant(7, 24),
	}, "Small", "Big", "Mid")

	cfg := ForecastConfig{Horizon: 6, SeasonLength: 12, Countries: 2}
	got, err := ForecastTable(tbl, cfg, nil)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "Big", got[0].Country)
	assert.Equal(t, "Mid", got[1].Country)
	for _, f := range got {
		assert.Equal(t, MethodHoltWinters, f.Method)
		assert.NoError(t, f.Err)
		require.Len(t, f.Values, 6)
		require.Len(t, f.Periods, 6)
		assert.True(t, month(2024, 1).Equal(f.Periods[0]))
		assert.True(t, month(2024, 6).Equal(f.Periods[5]))
	}
	assert.InDelta(t, 100+seasonShape[11], got[0].Current, 1e-9)
	assert.InDelta(t, 7, got[1].Mean(), 1e-9)
	assert.InDelta(t, 0, got[1].Change(), 1e-9)
}

func TestForecastTableFallsBack(t *testing.T) {
	tbl := table("Supply", monthly(2024, 4), map[string][]float64{
		"A": {1, 2, 3, 4},
		"B": {10, 10, 10, 10},
	}, "A", "B")

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	got, err := ForecastTable(tbl, ForecastConfig{Horizon: 2, SeasonLength: 12, Countries: 6}, logger)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "B", got[0].Country)
	assert.Equal(t, MethodLinear, got[0].Method)
	assert.True(t, errors.Is(got[0].Err, ErrShortSeries))
	assertSeries(t, []float64{10, 10}, got[0].Values)

	assert.Equal(t, "A", got[1].Country)
	assertSeries(t, []float64{5, 6}, got[1].Values)
	assert.InDelta(t, 37.5, got[1].Change(), 1e-9)

	assert.Contains(t, buf.String(), "country=A")
	assert.Contains(t, buf.String(), "country=B")
}

func TestForecastTableErrors(t *testing.T) {
	tbl := table("Demand", []string{"Unnamed: 1"}, map[string][]float64{"A": {1}}, "A")

	_, err := ForecastTable(tbl, DefaultForecastConfig(), nil)
	assert.ErrorIs(t, err, ErrPeriodFormat)

	_, err = ForecastTable(market.demand, ForecastConfig{Horizon: 0, SeasonLength: 12}, nil)
	assert.Error(t, err)

	got, err := ForecastTable(nil, DefaultForecastConfig(), nil)
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestForecastChange(t *testing.T) {
	f := Forecast{Current: 100, Values: []float64{110, 130}}
	assert.InDelta(t, 120, f.Mean(), 1e-9)
	assert.InDelta(t, 20, f.Change(), 1e-9)

	f.Current = 0
	assert.True(t, math.IsNaN(f.Change()))
}
