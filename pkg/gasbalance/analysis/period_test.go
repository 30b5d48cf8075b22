package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		label string
		want  time.Time
	}{
		{"2024-03-01", month(2024, 3)},
		{"2024-03-15", month(2024, 3)},
		{"2024-03-01 00:00:00", month(2024, 3)},
		{"2024-03-01T00:00:00Z", month(2024, 3)},
		{"2024-03", month(2024, 3)},
		{"2024/03", month(2024, 3)},
		{"03/2024", month(2024, 3)},
		{"3/2024", month(2024, 3)},
		{"Mar 2024", month(2024, 3)},
		{"March 2024", month(2024, 3)},
		{"Mar-24", month(2024, 3)},
		{"Mar-2024", month(2024, 3)},
		{" 2024-03-01 ", month(2024, 3)},
		{"2024", month(2024, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, err := ParsePeriod(tt.label)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}
}

func TestParsePeriodInvalid(t *testing.T) {
	for _, label := range []string{"", "Unnamed: 3", "total", "2024-13"} {
		_, err := ParsePeriod(label)
		assert.ErrorIs(t, err, ErrPeriodFormat, label)
	}
}

func TestParsePeriods(t *testing.T) {
	got, err := ParsePeriods([]string{"2024-01", "2024-02-01"})
	require.NoError(t, err)
	assert.Equal(t, []time.Time{month(2024, 1), month(2024, 2)}, got)

	_, err = ParsePeriods([]string{"2024-01", "x"})
	assert.ErrorIs(t, err, ErrPeriodFormat)
}

func TestMonthsAfter(t *testing.T) {
	got := MonthsAfter(time.Date(2024, 11, 15, 8, 0, 0, 0, time.UTC), 3)
	assert.Equal(t, []time.Time{month(2024, 12), month(2025, 1), month(2025, 2)}, got)
	assert.Empty(t, MonthsAfter(month(2024, 1), 0))
}

func month(year int, m time.Month) time.Time {
	return time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
}
