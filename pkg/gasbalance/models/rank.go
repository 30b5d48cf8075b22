package models

import (
	"math"
	"sort"
)

// Largest returns up to n entries with the highest values, highest first.
// NaN values are skipped and ties keep their input order.
func Largest(values []CountryValue, n int) []CountryValue {
	return ranked(values, n, func(a, b float64) bool { return a > b })
}

// Smallest returns up to n entries with the lowest values, lowest first.
// NaN values are skipped and ties keep their input order.
func Smallest(values []CountryValue, n int) []CountryValue {
	return ranked(values, n, func(a, b float64) bool { return a < b })
}

// SortDescending orders values highest first with NaN values last. The
// input is not modified.
func SortDescending(values []CountryValue) []CountryValue {
	out := append([]CountryValue(nil), values...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Value, out[j].Value
		if math.IsNaN(b) {
			return !math.IsNaN(a)
		}
		return a > b
	})
	return out
}

// SortAscending orders values lowest first with NaN values last. The input
// is not modified.
func SortAscending(values []CountryValue) []CountryValue {
	out := append([]CountryValue(nil), values...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].Value, out[j].Value
		if math.IsNaN(b) {
			return !math.IsNaN(a)
		}
		return a < b
	})
	return out
}

func ranked(values []CountryValue, n int, less func(a, b float64) bool) []CountryValue {
	out := make([]CountryValue, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v.Value) {
			out = append(out, v)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i].Value, out[j].Value) })
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
