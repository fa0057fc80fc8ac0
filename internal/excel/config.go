// Package excel renders the categorization report as a multi-sheet .xlsx
// workbook.
package excel

import "fmt"

// Sheet names, in workbook order.
const (
	SheetCategorized   = "Categorized Data"
	SheetStatistics    = "Statistics"
	SheetPatterns      = "Pattern Analysis"
	SheetUncategorized = "Uncategorized"
	SheetCodeMapping   = "Code Mapping"
	SheetSuggestions   = "Suggestions"
	SheetOwnerNotes    = "Notes by ChargeOwner"
)

// Config holds the configuration for the workbook writer.
type Config struct {
	// OutputPath is where the .xlsx file is written.
	OutputPath string
	// IncludePrices controls whether the 24 hourly price columns are
	// written to the Categorized Data sheet.
	IncludePrices bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		OutputPath:    "tariff_categorization_results.xlsx",
		IncludePrices: true,
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.OutputPath == "" {
		return fmt.Errorf("output path must not be empty")
	}
	return nil
}
