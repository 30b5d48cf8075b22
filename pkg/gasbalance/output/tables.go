package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/eurofuel/gasbalance-go/pkg/gasbalance"
	"github.com/eurofuel/gasbalance-go/pkg/gasbalance/analysis"
	"github.com/eurofuel/gasbalance-go/pkg/gasbalance/models"
)

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	t := tablewriter.NewWriter(w)
	t.SetHeader(header)
	t.SetAutoFormatHeaders(false)
	t.SetAlignment(tablewriter.ALIGN_RIGHT)
	return t
}

func heading(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n", title)
}

func rankTable(w io.Writer, label string, values []models.CountryValue, cell func(float64) string) {
	t := newTable(w, "#", "Country", label)
	for i, v := range values {
		t.Append([]string{strconv.Itoa(i + 1), v.Country, cell(v.Value)})
	}
	t.Render()
}

// WriteSummary prints the dataset summary and the validation checks.
func WriteSummary(w io.Writer, s *gasbalance.Summary, report gasbalance.ValidationReport) {
	if s == nil {
		fmt.Fprintln(w, "No data")
		return
	}
	heading(w, "Dataset summary")
	t := newTable(w, "Table", "Countries", "Periods", "Start", "End", "Total volume")
	for _, row := range []struct {
		name string
		ts   gasbalance.TableSummary
	}{{"Demand", s.Demand}, {"Supply", s.Supply}} {
		t.Append([]string{
			row.name,
			strconv.Itoa(row.ts.Countries),
			strconv.Itoa(row.ts.Periods),
			row.ts.Start,
			row.ts.End,
			Volume(row.ts.TotalVolume),
		})
	}
	t.Render()

	heading(w, "Top demand markets")
	rankTable(w, "Mean demand", s.Demand.Top, Volume)
	heading(w, "Top supply markets")
	rankTable(w, "Mean supply", s.Supply.Top, Volume)

	WriteValidation(w, report)
}

// WriteValidation prints one line per check.
func WriteValidation(w io.Writer, report gasbalance.ValidationReport) {
	heading(w, "Validation")
	t := newTable(w, "Check", "Observed", "Status")
	for _, c := range report.Checks {
		status := "PASS"
		if !c.Passed {
			status = "FAIL"
		}
		t.Append([]string{c.Name, strconv.FormatBool(c.Observed), status})
	}
	t.Render()
}

// WriteOverview prints market totals and the net traders.
func WriteOverview(w io.Writer, o analysis.Overview) {
	heading(w, "Market overview")
	t := newTable(w, "Measure", "Value")
	t.Append([]string{"Total demand", Volume(o.TotalDemand)})
	t.Append([]string{"Total supply", Volume(o.TotalSupply)})
	t.Append([]string{"Net balance", Signed(o.NetBalance)})
	t.Append([]string{"Net exporters", strconv.Itoa(len(o.Exporters))})
	t.Append([]string{"Net importers", strconv.Itoa(len(o.Importers))})
	t.Render()

	heading(w, "Top markets by demand")
	rankTable(w, "Mean demand", o.TopMarkets, Volume)
}

// WriteBalance prints the most imbalanced countries and the regional sums.
func WriteBalance(w io.Writer, countries, regions []models.CountryValue) {
	heading(w, "Country balance (supply - demand)")
	if len(countries) > analysis.TopImbalances {
		countries = countries[:analysis.TopImbalances]
	}
	rankTable(w, "Mean balance", countries, Signed)

	heading(w, "Regional balance")
	t := newTable(w, "Region", "Balance", "Position")
	for _, r := range regions {
		position := "deficit"
		if r.Value >= 0 {
			position = "surplus"
		}
		t.Append([]string{r.Country, Signed(r.Value), position})
	}
	t.Render()
}

// WriteCorrelations prints the strongest and weakest trackers and the verdict.
func WriteCorrelations(w io.Writer, c analysis.Correlations, n int) {
	heading(w, "Demand/supply correlation")
	fmt.Fprintf(w, "Average market correlation: %s (%s)\n", Ratio(c.Average), c.Efficiency())

	heading(w, "Strongest tracking")
	rankTable(w, "Correlation", models.Largest(c.Countries, n), Ratio)
	heading(w, "Weakest tracking")
	rankTable(w, "Correlation", models.Smallest(c.Countries, n), Ratio)
}

// WriteVolatility compares demand and supply volatility.
func WriteVolatility(w io.Writer, demand, supply analysis.Volatility) {
	heading(w, "Volatility (coefficient of variation)")
	fmt.Fprintf(w, "Average demand volatility: %s\n", Ratio(demand.Average))
	fmt.Fprintf(w, "Average supply volatility: %s\n", Ratio(supply.Average))
	if demand.Average > supply.Average {
		fmt.Fprintln(w, "Demand more volatile overall")
	} else {
		fmt.Fprintln(w, "Supply more volatile overall")
	}

	heading(w, "Most volatile demand markets")
	rankTable(w, "CV", demand.Top(analysis.TopImbalances), Ratio)
	heading(w, "Most volatile supply markets")
	rankTable(w, "CV", supply.Top(analysis.TopImbalances), Ratio)
}

// WriteYearly prints yearly totals and growth.
func WriteYearly(w io.Writer, years []analysis.YearTotals) {
	heading(w, "Yearly market trends")
	t := newTable(w, "Year", "Demand", "Supply", "Net", "Demand YoY", "Supply YoY")
	for _, y := range years {
		t.Append([]string{
			strconv.Itoa(y.Year),
			Volume(y.Demand),
			Volume(y.Supply),
			Signed(y.Balance),
			Percent(y.DemandGrowth),
			Percent(y.SupplyGrowth),
		})
	}
	t.Render()

	if len(years) == 0 {
		return
	}
	last := years[len(years)-1]
	status := "deficit"
	if last.Surplus() {
		status = "surplus"
	}
	fmt.Fprintf(w, "Market balance %d: %s\n", last.Year, status)
	fmt.Fprintf(w, "Period: %d-%d\n", years[0].Year, last.Year)
}

// WritePlayers prints market leaders and net traders.
func WritePlayers(w io.Writer, p analysis.Players) {
	heading(w, "Top consumers")
	rankTable(w, "Mean demand", p.Consumers, Volume)
	heading(w, "Top producers")
	rankTable(w, "Mean supply", p.Producers, Volume)

	fmt.Fprintf(w, "Top %d consumers hold %s of demand\n", len(p.Consumers), printer.Sprintf("%.1f%%", p.ConsumerShare))
	fmt.Fprintf(w, "Top %d producers hold %s of supply\n", len(p.Producers), printer.Sprintf("%.1f%%", p.ProducerShare))

	heading(w, "Major net exporters")
	rankTable(w, "Net position", p.Exporters, Signed)
	heading(w, "Major net importers")
	rankTable(w, "Net position", p.Importers, Signed)

	heading(w, "Yearly leaders")
	t := newTable(w, "Year", "Consumer", "Producer")
	for _, l := range p.Leaders {
		t.Append([]string{strconv.Itoa(l.Year), l.Consumer, l.Producer})
	}
	t.Render()
}

// WriteForecasts prints the projection of every country and a summary.
func WriteForecasts(w io.Writer, title string, forecasts []analysis.Forecast) {
	heading(w, title)
	if len(forecasts) == 0 {
		fmt.Fprintln(w, "No forecasts")
		return
	}

	header := []string{"Period"}
	for _, f := range forecasts {
		header = append(header, f.Country)
	}
	t := newTable(w, header...)
	for i, period := range forecasts[0].Periods {
		row := []string{period.Format("2006-01")}
		for _, f := range forecasts {
			row = append(row, Volume(f.Values[i]))
		}
		t.Append(row)
	}
	t.Render()

	heading(w, "Forecast summary")
	s := newTable(w, "Country", "Method", "Current", "Forecast", "Change")
	for _, f := range forecasts {
		s.Append([]string{f.Country, string(f.Method), Volume(f.Current), Volume(f.Mean()), Percent(f.Change())})
	}
	s.Render()
}
