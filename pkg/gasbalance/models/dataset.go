package models

// Dataset is the result of loading a workbook: the demand and supply tables
// plus where they came from.
type Dataset struct {
	// Source is the path of the workbook that was loaded.
	Source string `json:"source"`
	// Sheets lists every sheet of the workbook in order.
	Sheets []string `json:"sheets"`
	// DemandSheet is the sheet the demand table was read from.
	DemandSheet string `json:"demand_sheet"`
	// SupplySheet is the sheet the supply table was read from.
	SupplySheet string `json:"supply_sheet"`
	// Demand is the cleaned demand table.
	Demand *SeriesTable `json:"demand"`
	// Supply is the cleaned supply table.
	Supply *SeriesTable `json:"supply"`
}
