// Package main provides the CLI entry point for gasbalance.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/eurofuel/gasbalance-go/internal/config"
	"github.com/eurofuel/gasbalance-go/internal/logging"
	"github.com/eurofuel/gasbalance-go/pkg/gasbalance"
	"github.com/eurofuel/gasbalance-go/pkg/gasbalance/models"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries the state shared by every command.
type app struct {
	file   string
	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "gasbalance",
		Short: "Analyze European gasoline demand and supply",
		Long: `gasbalance loads a demand/supply workbook, cleans both tables and
prints market balance, correlation, volatility and forecast reports.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}
	root.PersistentFlags().StringVarP(&a.file, "file", "f", "", "Workbook path (default: search data directories)")

	root.AddCommand(
		a.summaryCmd(),
		a.balanceCmd(),
		a.correlationCmd(),
		a.volatilityCmd(),
		a.yearlyCmd(),
		a.playersCmd(),
		a.forecastCmd(),
	)
	return root
}

func (a *app) setup(logOut io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.file != "" {
		cfg.File = a.file
	}
	a.cfg = cfg
	a.logger = logging.New(cfg.Log, logOut)
	return nil
}

func (a *app) load() (*models.Dataset, error) {
	ds, err := gasbalance.Load(a.cfg.Options(a.logger))
	if err != nil {
		return nil, fmt.Errorf("data load failed: %w", err)
	}
	return ds, nil
}
