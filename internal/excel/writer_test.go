package excel

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/DaniBVN/Tarif/internal/analysis"
	"github.com/DaniBVN/Tarif/internal/engine"
	"github.com/DaniBVN/Tarif/internal/model"
	"github.com/DaniBVN/Tarif/internal/taxonomy"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testReport(t *testing.T, records []model.TariffRecord) *model.Report {
	t.Helper()

	classifier, err := engine.NewClassifier(taxonomy.Default())
	require.NoError(t, err)

	classified, err := classifier.ClassifyAll(context.Background(), records)
	require.NoError(t, err)

	return analysis.BuildReport(
		time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		classified,
	)
}

func TestWriterValidatesConfig(t *testing.T) {
	_, err := NewWriter(Config{OutputPath: ""}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestWriteWorkbook(t *testing.T) {
	record := model.TariffRecord{
		ChargeOwner:    "Radius Elnet A/S",
		GLNNumber:      "5790000705689",
		ChargeType:     "D03",
		ChargeTypeCode: "DT_C_01",
		Note:           "Nettarif C time",
		Description:    "Tidsdifferentieret forbrugstarif",
	}
	record.Price1 = decimal.NewNullDecimal(decimal.NewFromFloat(0.1837))

	report := testReport(t, []model.TariffRecord{
		record,
		{ChargeOwner: "Cerius A/S", ChargeTypeCode: "XX-99", Note: "noget helt andet"},
	})

	outputPath := filepath.Join(t.TempDir(), "results.xlsx")
	writer, err := NewWriter(Config{OutputPath: outputPath, IncludePrices: true}, nil)
	require.NoError(t, err)

	require.NoError(t, writer.Write(context.Background(), report))

	f, err := excelize.OpenFile(outputPath)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	assert.ElementsMatch(t, []string{
		SheetCategorized, SheetStatistics, SheetPatterns,
		SheetUncategorized, SheetCodeMapping, SheetSuggestions, SheetOwnerNotes,
	}, sheets, "default Sheet1 is removed, suggestions present")

	// Categorized Data: axis columns lead, raw fields follow.
	header, err := f.GetRows(SheetCategorized)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(header), 3)
	assert.Equal(t, "Kundetype", header[0][0])
	assert.Equal(t, "ChargeOwner", header[0][5])

	assert.Equal(t, "C", header[1][0])
	assert.Equal(t, "tidsdifferentieret", header[1][1])
	assert.Equal(t, "Forbrug", header[1][2])
	assert.Equal(t, "Radius Elnet A/S", header[1][5])

	cell, err := f.GetCellValue(SheetCategorized, "R2")
	require.NoError(t, err)
	assert.Equal(t, "0.1837", cell, "Price1 follows the 17 leading columns")

	// The fully uncategorized record shows up on the Uncategorized sheet.
	uncategorized, err := f.GetRows(SheetUncategorized)
	require.NoError(t, err)
	require.Len(t, uncategorized, 2)
	assert.Equal(t, "XX-99", uncategorized[1][0])
	assert.Equal(t, model.Uncategorized, uncategorized[1][3])

	// Pattern Analysis lists the match provenance per primary axis.
	patterns, err := f.GetRows(SheetPatterns)
	require.NoError(t, err)
	require.Len(t, patterns, 3, "two primary-axis matches for the categorized record")
	assert.Equal(t, "DT_C_01", patterns[1][0])
	assert.Equal(t, "Note", patterns[1][4])

	// Statistics opens with the overall totals.
	stats, err := f.GetRows(SheetStatistics)
	require.NoError(t, err)
	assert.Equal(t, []string{"Overall", "Total Rows", "2"}, stats[1][:3])
}

func TestWriteWorkbookOmitsEmptySuggestions(t *testing.T) {
	report := testReport(t, []model.TariffRecord{
		{ChargeTypeCode: "DT_C_01", Note: "Nettarif C"},
	})
	require.Empty(t, report.Suggestions)

	outputPath := filepath.Join(t.TempDir(), "results.xlsx")
	writer, err := NewWriter(Config{OutputPath: outputPath}, nil)
	require.NoError(t, err)

	require.NoError(t, writer.Write(context.Background(), report))

	f, err := excelize.OpenFile(outputPath)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.NotContains(t, f.GetSheetList(), SheetSuggestions)
}

func TestWriteWorkbookWithoutPrices(t *testing.T) {
	report := testReport(t, []model.TariffRecord{
		{ChargeTypeCode: "DT_C_01", Note: "Nettarif C"},
	})

	outputPath := filepath.Join(t.TempDir(), "results.xlsx")
	writer, err := NewWriter(Config{OutputPath: outputPath, IncludePrices: false}, nil)
	require.NoError(t, err)

	require.NoError(t, writer.Write(context.Background(), report))

	f, err := excelize.OpenFile(outputPath)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(SheetCategorized)
	require.NoError(t, err)
	assert.Len(t, rows[0], 17, "no price columns")
}

func TestWriteCancelledContext(t *testing.T) {
	report := testReport(t, nil)

	writer, err := NewWriter(Config{OutputPath: filepath.Join(t.TempDir(), "results.xlsx")}, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, writer.Write(ctx, report), context.Canceled)
}
