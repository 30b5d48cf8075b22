package gasbalance

import (
	"fmt"
	"log/slog"

	"github.com/eurofuel/gasbalance-go/pkg/gasbalance/models"
	"github.com/eurofuel/gasbalance-go/pkg/gasbalance/parser"
	"github.com/xuri/excelize/v2"
)

// Load locates a workbook, selects its demand and supply sheets and returns
// both tables cleaned.
//
// A missing workbook yields ErrSourceNotFound. A workbook that exists but
// cannot be read yields a *LoadError carrying the cause. Panics raised while
// parsing are recovered into a LoadError.
func Load(opts Options) (ds *models.Dataset, err error) {
	logger := opts.logger()

	path, err := Locate(opts)
	if err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			ds = nil
			err = NewLoadError(path, "", StageRead, fmt.Errorf("panic: %v", r))
			logger.Error("error loading data", slog.String("error", err.Error()))
		}
	}()

	ds, err = load(path, opts, logger)
	if err != nil {
		logger.Error("error loading data", slog.String("error", err.Error()))
		return nil, err
	}
	return ds, nil
}

func load(path string, opts Options, logger *slog.Logger) (*models.Dataset, error) {
	logger.Info("loading data", slog.String("path", path))

	container, err := parser.DetectContainer(path)
	if err != nil {
		return nil, NewLoadError(path, "", StageOpen, err)
	}
	switch container {
	case parser.ContainerLegacy:
		return nil, NewLoadError(path, "", StageOpen, fmt.Errorf("%w: legacy .xls workbook", ErrUnsupportedFormat))
	case parser.ContainerEncrypted:
		if opts.Password == "" {
			return nil, NewLoadError(path, "", StageOpen, ErrEncrypted)
		}
	}

	f, err := excelize.OpenFile(path, excelize.Options{Password: opts.Password})
	if err != nil {
		return nil, NewLoadError(path, "", StageOpen, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	logger.Info("available sheets", slog.Any("sheets", sheets))

	sel, err := parser.SelectSheets(sheets)
	if err != nil {
		return nil, NewLoadError(path, "", StageSelect, err)
	}
	if !sel.DemandByName || !sel.SupplyByName {
		logger.Warn("sheet chosen by position",
			slog.String("demand_sheet", sel.Demand),
			slog.Bool("demand_by_name", sel.DemandByName),
			slog.String("supply_sheet", sel.Supply),
			slog.Bool("supply_by_name", sel.SupplyByName))
	}
	if sel.Skipped != "" {
		logger.Warn("positional pick skipped sheet already claimed by name",
			slog.String("skipped", sel.Skipped),
			slog.String("demand_sheet", sel.Demand),
			slog.String("supply_sheet", sel.Supply))
	}
	logger.Info("using sheets",
		slog.String("demand_sheet", sel.Demand),
		slog.String("supply_sheet", sel.Supply))

	demand, err := readSheet(f, path, sel.Demand, "Demand", opts, logger)
	if err != nil {
		return nil, err
	}
	supply, err := readSheet(f, path, sel.Supply, "Supply", opts, logger)
	if err != nil {
		return nil, err
	}

	logger.Info("loaded data",
		slog.Int("demand_countries", len(demand.Countries)),
		slog.Int("demand_periods", len(demand.Periods)),
		slog.Int("supply_countries", len(supply.Countries)),
		slog.Int("supply_periods", len(supply.Periods)),
		slog.String("first_period", demand.Periods[0]),
		slog.String("last_period", demand.Periods[len(demand.Periods)-1]))
	logger.Debug("countries", slog.Any("countries", demand.Countries))

	return &models.Dataset{
		Source:      path,
		Sheets:      sheets,
		DemandSheet: sel.Demand,
		SupplySheet: sel.Supply,
		Demand:      demand,
		Supply:      supply,
	}, nil
}

func readSheet(f *excelize.File, path, sheet, name string, opts Options, logger *slog.Logger) (*models.SeriesTable, error) {
	read := parser.ReadTable
	if parser.HasPrintArea(f, sheet) {
		if opts.UsePrintArea {
			read = parser.ReadPrintArea
		}
		logger.Info("sheet has a print area",
			slog.String("sheet", sheet),
			slog.Bool("applied", opts.UsePrintArea))
	}

	raw, err := read(f, sheet, name)
	if err != nil {
		return nil, NewLoadError(path, sheet, StageRead, err)
	}
	table := parser.Clean(raw, logger)
	if table.Empty() {
		return nil, NewLoadError(path, sheet, StageClean, ErrEmptyTable)
	}
	return table, nil
}
