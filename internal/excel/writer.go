package excel

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/DaniBVN/Tarif/internal/model"
	"github.com/DaniBVN/Tarif/internal/service"
	"github.com/xuri/excelize/v2"
)

// Writer implements service.ReportWriter for local .xlsx workbooks.
type Writer struct {
	logger *slog.Logger
	config Config
}

var _ service.ReportWriter = (*Writer)(nil)

// NewWriter creates a new workbook report writer.
func NewWriter(config Config, logger *slog.Logger) (*Writer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Writer{config: config, logger: logger}, nil
}

// Write renders the full report into one workbook. The Suggestions sheet
// is omitted when there is nothing to suggest.
func (w *Writer) Write(ctx context.Context, report *model.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.logger.Info("writing workbook",
		"path", w.config.OutputPath,
		"records", len(report.Records))

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := w.writeCategorized(f, report); err != nil {
		return fmt.Errorf("failed to write %s: %w", SheetCategorized, err)
	}
	if err := w.writeStatistics(f, report); err != nil {
		return fmt.Errorf("failed to write %s: %w", SheetStatistics, err)
	}
	if err := w.writePatterns(f, report); err != nil {
		return fmt.Errorf("failed to write %s: %w", SheetPatterns, err)
	}
	if err := w.writeUncategorized(f, report); err != nil {
		return fmt.Errorf("failed to write %s: %w", SheetUncategorized, err)
	}
	if err := w.writeCodeMapping(f, report); err != nil {
		return fmt.Errorf("failed to write %s: %w", SheetCodeMapping, err)
	}
	if len(report.Suggestions) > 0 {
		if err := w.writeSuggestions(f, report); err != nil {
			return fmt.Errorf("failed to write %s: %w", SheetSuggestions, err)
		}
	}
	if err := w.writeOwnerNotes(f, report); err != nil {
		return fmt.Errorf("failed to write %s: %w", SheetOwnerNotes, err)
	}

	// The default sheet excelize creates is replaced by ours.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to delete default sheet: %w", err)
	}

	if err := f.SaveAs(w.config.OutputPath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	w.logger.Info("workbook written", "path", w.config.OutputPath)

	return nil
}

// newSheet creates a named sheet with a bold header row.
func (w *Writer) newSheet(f *excelize.File, name string, header []any) error {
	if _, err := f.NewSheet(name); err != nil {
		return err
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return err
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(name, "A1", last, style)
}

func (w *Writer) writeCategorized(f *excelize.File, report *model.Report) error {
	header := []any{
		"Kundetype", "Tariftype", "Bruger", "OverliggendeNet", "Rabat",
		"ChargeOwner", "GLN_Number", "ChargeType", "ChargeTypeCode",
		"Note", "Description", "ValidFrom", "ValidTo", "VATClass",
		"TransparentInvoicing", "TaxIndicator", "ResolutionDuration",
	}
	if w.config.IncludePrices {
		for i := 1; i <= 24; i++ {
			header = append(header, fmt.Sprintf("Price%d", i))
		}
	}

	if err := w.newSheet(f, SheetCategorized, header); err != nil {
		return err
	}

	for i, c := range report.Records {
		r := c.Record
		row := []any{
			c.Category(model.AxisKundetype),
			c.Category(model.AxisTariftype),
			c.Category(model.AxisBruger),
			c.Category(model.AxisOverliggendeNet),
			c.Category(model.AxisRabat),
			r.ChargeOwner, r.GLNNumber, r.ChargeType, r.ChargeTypeCode,
			r.Note, r.Description, r.ValidFrom, r.ValidTo, r.VATClass,
			r.TransparentInvoicing, r.TaxIndicator, r.ResolutionDuration,
		}
		if w.config.IncludePrices {
			for _, price := range r.Prices() {
				if price.Valid {
					row = append(row, price.Decimal.InexactFloat64())
				} else {
					row = append(row, nil)
				}
			}
		}

		if err := w.setRow(f, SheetCategorized, i+2, row); err != nil {
			return err
		}
	}

	return nil
}

func (w *Writer) writeStatistics(f *excelize.File, report *model.Report) error {
	header := []any{"Category", "Metric", "Value", "Percentage"}
	if err := w.newSheet(f, SheetStatistics, header); err != nil {
		return err
	}

	total := 0
	if len(report.Distributions) > 0 {
		total = report.Distributions[0].Total
	}

	row := 2
	if err := w.setRow(f, SheetStatistics, row, []any{"Overall", "Total Rows", total, ""}); err != nil {
		return err
	}
	row++
	if err := w.setRow(f, SheetStatistics, row, []any{"Overall", "Uncategorized (both axes)", report.CrossTab.UncategorizedBoth, ""}); err != nil {
		return err
	}
	row++

	for _, dist := range report.Distributions {
		for _, count := range dist.Counts {
			cells := []any{
				string(dist.Axis),
				count.Category,
				count.Count,
				fmt.Sprintf("%.2f%%", count.Percentage),
			}
			if err := w.setRow(f, SheetStatistics, row, cells); err != nil {
				return err
			}
			row++
		}
	}

	// Cross-tabulation block: Kundetype rows against Tariftype columns.
	row++
	ctHeader := []any{"Kundetype \\ Tariftype"}
	for _, col := range report.CrossTab.Cols {
		ctHeader = append(ctHeader, col)
	}
	if err := w.setRow(f, SheetStatistics, row, ctHeader); err != nil {
		return err
	}
	row++
	for _, kt := range report.CrossTab.Rows {
		cells := []any{kt}
		for _, tt := range report.CrossTab.Cols {
			cells = append(cells, report.CrossTab.Count(kt, tt))
		}
		if err := w.setRow(f, SheetStatistics, row, cells); err != nil {
			return err
		}
		row++
	}

	return nil
}

func (w *Writer) writePatterns(f *excelize.File, report *model.Report) error {
	header := []any{"ChargeTypeCode", "Note", "Axis", "Assigned Category", "Matched Field", "Matched Pattern"}
	if err := w.newSheet(f, SheetPatterns, header); err != nil {
		return err
	}

	row := 2
	for _, c := range report.Records {
		for _, axis := range []model.Axis{model.AxisKundetype, model.AxisTariftype} {
			result, ok := c.Results[axis]
			if !ok || result.IsUncategorized() {
				continue
			}
			cells := []any{
				c.Record.ChargeTypeCode,
				c.Record.Note,
				string(axis),
				result.Category,
				result.Field,
				result.Pattern,
			}
			if err := w.setRow(f, SheetPatterns, row, cells); err != nil {
				return err
			}
			row++
		}
	}

	return nil
}

func (w *Writer) writeUncategorized(f *excelize.File, report *model.Report) error {
	header := []any{"ChargeTypeCode", "Note", "Description", "Kundetype", "Tariftype"}
	if err := w.newSheet(f, SheetUncategorized, header); err != nil {
		return err
	}

	for i, c := range report.Uncategorized {
		cells := []any{
			c.Record.ChargeTypeCode,
			c.Record.Note,
			c.Record.Description,
			c.Category(model.AxisKundetype),
			c.Category(model.AxisTariftype),
		}
		if err := w.setRow(f, SheetUncategorized, i+2, cells); err != nil {
			return err
		}
	}

	return nil
}

func (w *Writer) writeCodeMapping(f *excelize.File, report *model.Report) error {
	header := []any{
		"ChargeTypeCode", "Count",
		"Most Common Kundetype", "Kundetype Consistent", "Kundetype Categories",
		"Most Common Tariftype", "Tariftype Consistent", "Tariftype Categories",
		"Sample Note",
	}
	if err := w.newSheet(f, SheetCodeMapping, header); err != nil {
		return err
	}

	for i, row := range report.Consistency {
		cells := []any{
			row.Code,
			row.Count,
			row.ModalKundetype,
			row.KundetypeConsistent,
			strings.Join(row.KundetypeCategories, ", "),
			row.ModalTariftype,
			row.TariftypeConsistent,
			strings.Join(row.TariftypeCategories, ", "),
			row.SampleNote,
		}
		if err := w.setRow(f, SheetCodeMapping, i+2, cells); err != nil {
			return err
		}
	}

	return nil
}

func (w *Writer) writeSuggestions(f *excelize.File, report *model.Report) error {
	header := []any{
		"ChargeTypeCode", "Note",
		"Current Kundetype", "Current Tariftype",
		"Suggested Kundetype", "Kundetype Confidence",
		"Suggested Tariftype", "Tariftype Confidence",
		"Reasoning",
	}
	if err := w.newSheet(f, SheetSuggestions, header); err != nil {
		return err
	}

	for i, s := range report.Suggestions {
		cells := []any{
			s.ChargeTypeCode,
			s.Note,
			s.CurrentKundetype,
			s.CurrentTariftype,
			s.SuggestedKundetype,
			confidenceCell(s.SuggestedKundetype, s.KundetypeConfidence),
			s.SuggestedTariftype,
			confidenceCell(s.SuggestedTariftype, s.TariftypeConfidence),
			s.Reasoning,
		}
		if err := w.setRow(f, SheetSuggestions, i+2, cells); err != nil {
			return err
		}
	}

	return nil
}

func (w *Writer) writeOwnerNotes(f *excelize.File, report *model.Report) error {
	header := []any{"ChargeOwner", "Note", "Count", "Owner Total Records"}
	if err := w.newSheet(f, SheetOwnerNotes, header); err != nil {
		return err
	}

	for i, n := range report.OwnerNotes {
		cells := []any{n.ChargeOwner, n.Note, n.Count, n.OwnerTotal}
		if err := w.setRow(f, SheetOwnerNotes, i+2, cells); err != nil {
			return err
		}
	}

	return nil
}

func (w *Writer) setRow(f *excelize.File, sheet string, row int, cells []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &cells)
}

func confidenceCell(suggested string, confidence float64) any {
	if suggested == "" {
		return ""
	}
	return confidence
}
