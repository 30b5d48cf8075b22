package gasbalance

import (
	"io"
	"log/slog"
	"math"

	"github.com/eurofuel/gasbalance-go/pkg/gasbalance/models"
)

// Validation check names.
const (
	CheckDemandNulls     = "demand_has_nulls"
	CheckSupplyNulls     = "supply_has_nulls"
	CheckDemandNegatives = "demand_has_negatives"
	CheckSupplyNegatives = "supply_has_negatives"
	CheckIndicesMatch    = "indices_match"
	CheckColumnsMatch    = "columns_match"
)

// Check is the outcome of a single validation.
type Check struct {
	// Name identifies the check.
	Name string `json:"name"`
	// Observed is the fact the check measured, e.g. "has nulls".
	Observed bool `json:"observed"`
	// Passed is true when Observed is the healthy answer.
	Passed bool `json:"passed"`
}

// ValidationReport holds the checks in a fixed order.
type ValidationReport struct {
	Checks []Check `json:"checks"`
}

// Get returns the check with the given name.
func (r ValidationReport) Get(name string) (Check, bool) {
	for _, c := range r.Checks {
		if c.Name == name {
			return c, true
		}
	}
	return Check{}, false
}

// Passed reports whether the report has checks and all of them passed.
func (r ValidationReport) Passed() bool {
	if len(r.Checks) == 0 {
		return false
	}
	for _, c := range r.Checks {
		if !c.Passed {
			return false
		}
	}
	return true
}

// Validate checks the pair of tables for missing and negative values and
// for matching country and period key sets. If either table is nil the
// report is empty.
func Validate(demand, supply *models.SeriesTable, logger *slog.Logger) ValidationReport {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if demand == nil || supply == nil {
		logger.Error("cannot validate: missing table")
		return ValidationReport{}
	}

	problem := func(name string, observed bool) Check {
		return Check{Name: name, Observed: observed, Passed: !observed}
	}
	agreement := func(name string, observed bool) Check {
		return Check{Name: name, Observed: observed, Passed: observed}
	}

	report := ValidationReport{Checks: []Check{
		problem(CheckDemandNulls, anyCell(demand, math.IsNaN)),
		problem(CheckSupplyNulls, anyCell(supply, math.IsNaN)),
		problem(CheckDemandNegatives, anyCell(demand, negative)),
		problem(CheckSupplyNegatives, anyCell(supply, negative)),
		agreement(CheckIndicesMatch, sameKeys(demand.Countries, supply.Countries)),
		agreement(CheckColumnsMatch, sameKeys(demand.Periods, supply.Periods)),
	}}

	for _, c := range report.Checks {
		status := "PASS"
		if !c.Passed {
			status = "FAIL"
		}
		logger.Info("validation", slog.String("check", c.Name), slog.String("status", status))
	}
	return report
}

func negative(v float64) bool {
	return v < 0
}

func anyCell(t *models.SeriesTable, pred func(float64) bool) bool {
	for _, row := range t.Values {
		for _, v := range row {
			if pred(v) {
				return true
			}
		}
	}
	return false
}

func sameKeys(a, b []string) bool {
	set := make(map[string]bool, len(a))
	for _, k := range a {
		set[k] = true
	}
	other := make(map[string]bool, len(b))
	for _, k := range b {
		if !set[k] {
			return false
		}
		other[k] = true
	}
	return len(other) == len(set)
}
