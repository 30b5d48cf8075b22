package analysis

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrPeriodFormat is returned when a column label is not a recognizable date.
var ErrPeriodFormat = errors.New("unrecognized period label")

var periodLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01",
	"2006/01",
	"01/2006",
	"1/2006",
	"Jan 2006",
	"January 2006",
	"Jan-06",
	"Jan-2006",
	"1/2/2006",
	"01-02-06",
	"2006",
}

// ParsePeriod converts a column label into the first day of its month.
func ParsePeriod(label string) (time.Time, error) {
	s := strings.TrimSpace(label)
	for _, layout := range periodLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrPeriodFormat, label)
}

// ParsePeriods parses every label, failing on the first bad one.
func ParsePeriods(labels []string) ([]time.Time, error) {
	out := make([]time.Time, len(labels))
	for i, label := range labels {
		t, err := ParsePeriod(label)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

// MonthsAfter returns n consecutive month starts following last.
func MonthsAfter(last time.Time, n int) []time.Time {
	start := time.Date(last.Year(), last.Month(), 1, 0, 0, 0, 0, time.UTC)
	out := make([]time.Time, n)
	for i := range out {
		out[i] = start.AddDate(0, i+1, 0)
	}
	return out
}
