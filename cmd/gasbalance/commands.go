package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eurofuel/gasbalance-go/pkg/gasbalance"
	"github.com/eurofuel/gasbalance-go/pkg/gasbalance/analysis"
	"github.com/eurofuel/gasbalance-go/pkg/gasbalance/output"
)

// correlationRows is how many markets each end of the correlation ranking shows.
const correlationRows = 3

func (a *app) summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Describe the dataset and validate it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := a.load()
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Source: %s (demand %q, supply %q)\n", ds.Source, ds.DemandSheet, ds.SupplySheet)
			output.WriteOverview(w, analysis.NewOverview(ds.Demand, ds.Supply, analysis.DefaultTopMarkets))
			output.WriteSummary(w, gasbalance.Summarize(ds.Demand, ds.Supply), gasbalance.Validate(ds.Demand, ds.Supply, a.logger))
			return nil
		},
	}
}

func (a *app) balanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Country and regional supply-demand balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			regions, err := a.cfg.Regions()
			if err != nil {
				return err
			}
			ds, err := a.load()
			if err != nil {
				return err
			}
			countries := analysis.CountryBalance(ds.Demand, ds.Supply)
			output.WriteBalance(cmd.OutOrStdout(), countries, analysis.RegionBalance(countries, regions))
			return nil
		},
	}
}

func (a *app) correlationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "correlation",
		Short: "How closely supply tracks demand per market",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := a.load()
			if err != nil {
				return err
			}
			output.WriteCorrelations(cmd.OutOrStdout(), analysis.Correlate(ds.Demand, ds.Supply), correlationRows)
			return nil
		},
	}
}

func (a *app) volatilityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "volatility",
		Short: "Coefficient of variation of demand and supply",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := a.load()
			if err != nil {
				return err
			}
			output.WriteVolatility(cmd.OutOrStdout(), analysis.MeasureVolatility(ds.Demand), analysis.MeasureVolatility(ds.Supply))
			return nil
		},
	}
}

func (a *app) yearlyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "yearly",
		Short: "Yearly totals, balance and growth",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := a.load()
			if err != nil {
				return err
			}
			years, err := analysis.Yearly(ds.Demand, ds.Supply)
			if err != nil {
				return fmt.Errorf("yearly analysis failed: %w", err)
			}
			output.WriteYearly(cmd.OutOrStdout(), years)
			return nil
		},
	}
}

func (a *app) playersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "players",
		Short: "Largest consumers, producers and net traders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := a.load()
			if err != nil {
				return err
			}
			players, err := analysis.TopPlayers(ds.Demand, ds.Supply)
			if err != nil {
				return fmt.Errorf("top players analysis failed: %w", err)
			}
			output.WritePlayers(cmd.OutOrStdout(), players)
			return nil
		},
	}
}

func (a *app) forecastCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "forecast demand|supply",
		Short:     "Forecast the largest markets",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"demand", "supply"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := a.load()
			if err != nil {
				return err
			}
			table, title := ds.Demand, "Demand forecast"
			if args[0] == "supply" {
				table, title = ds.Supply, "Supply forecast"
			}
			forecasts, err := analysis.ForecastTable(table, a.cfg.ForecastOptions(), a.logger)
			if err != nil {
				return fmt.Errorf("forecast failed: %w", err)
			}
			output.WriteForecasts(cmd.OutOrStdout(), title, forecasts)
			return nil
		},
	}
}
