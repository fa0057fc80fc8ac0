package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/DaniBVN/Tarif/internal/common"
	"github.com/DaniBVN/Tarif/internal/model"
	"github.com/DaniBVN/Tarif/internal/service"
	"google.golang.org/api/sheets/v4"
)

// Tab names mirror the workbook sheets.
const (
	TabCategorized   = "Categorized Data"
	TabStatistics    = "Statistics"
	TabPatterns      = "Pattern Analysis"
	TabUncategorized = "Uncategorized"
	TabCodeMapping   = "Code Mapping"
	TabSuggestions   = "Suggestions"
	TabOwnerNotes    = "Notes by ChargeOwner"
)

// Writer implements service.ReportWriter for Google Sheets.
type Writer struct {
	service *sheets.Service
	logger  *slog.Logger
	config  Config
}

var _ service.ReportWriter = (*Writer)(nil)

// NewWriter creates a new Google Sheets report writer.
func NewWriter(ctx context.Context, config Config, logger *slog.Logger) (*Writer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	srv, err := createSheetsService(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Writer{
		config:  config,
		service: srv,
		logger:  logger,
	}, nil
}

// Write exports the full report, one tab per table.
func (w *Writer) Write(ctx context.Context, report *model.Report) error {
	w.logger.Info("starting sheets export",
		"records", len(report.Records),
		"date_range", fmt.Sprintf("%s to %s",
			report.Start.Format("2006-01-02"), report.End.Format("2006-01-02")))

	spreadsheetID, err := w.getOrCreateSpreadsheet(ctx)
	if err != nil {
		return fmt.Errorf("failed to get spreadsheet: %w", err)
	}

	tabs := buildTabs(report)

	titles := make([]string, len(tabs))
	for i, tab := range tabs {
		titles[i] = tab.title
	}
	if err := w.ensureTabs(ctx, spreadsheetID, titles); err != nil {
		return fmt.Errorf("failed to ensure tabs: %w", err)
	}

	retryOpts := service.RetryOptions{
		MaxAttempts:  w.config.RetryAttempts,
		InitialDelay: w.config.RetryDelay,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}

	for _, tab := range tabs {
		if err := common.WithRetry(ctx, func() error {
			return w.writeTab(ctx, spreadsheetID, tab)
		}, retryOpts); err != nil {
			return fmt.Errorf("failed to write tab %s: %w", tab.title, err)
		}
	}

	w.logger.Info("sheets export completed",
		"spreadsheet_id", spreadsheetID,
		"tabs", len(tabs))

	return nil
}

// getOrCreateSpreadsheet gets an existing spreadsheet or creates a new one.
func (w *Writer) getOrCreateSpreadsheet(ctx context.Context) (string, error) {
	if w.config.SpreadsheetID != "" {
		if _, err := w.service.Spreadsheets.Get(w.config.SpreadsheetID).Context(ctx).Do(); err != nil {
			return "", fmt.Errorf("unable to access spreadsheet %s: %w", w.config.SpreadsheetID, err)
		}
		return w.config.SpreadsheetID, nil
	}

	spreadsheet := &sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{
			Title:    w.config.SpreadsheetName,
			TimeZone: w.config.TimeZone,
		},
	}

	created, err := w.service.Spreadsheets.Create(spreadsheet).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("unable to create spreadsheet: %w", err)
	}

	w.logger.Info("created new spreadsheet",
		"id", created.SpreadsheetId,
		"url", created.SpreadsheetUrl)

	return created.SpreadsheetId, nil
}

// ensureTabs adds any missing tabs to the spreadsheet.
func (w *Writer) ensureTabs(ctx context.Context, spreadsheetID string, titles []string) error {
	spreadsheet, err := w.service.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("unable to read spreadsheet: %w", err)
	}

	existing := make(map[string]bool, len(spreadsheet.Sheets))
	for _, sheet := range spreadsheet.Sheets {
		existing[sheet.Properties.Title] = true
	}

	var requests []*sheets.Request
	for _, title := range titles {
		if existing[title] {
			continue
		}
		requests = append(requests, &sheets.Request{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: title},
			},
		})
	}

	if len(requests) == 0 {
		return nil
	}

	_, err = w.service.Spreadsheets.BatchUpdate(spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: requests,
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("unable to add tabs: %w", err)
	}

	return nil
}

// writeTab clears one tab and writes its values in batches.
func (w *Writer) writeTab(ctx context.Context, spreadsheetID string, tab tabValues) error {
	clearRange := fmt.Sprintf("'%s'!A:AZ", tab.title)
	if _, err := w.service.Spreadsheets.Values.Clear(spreadsheetID, clearRange, &sheets.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to clear tab: %w", err)
	}

	for i := 0; i < len(tab.values); i += w.config.BatchSize {
		end := i + w.config.BatchSize
		if end > len(tab.values) {
			end = len(tab.values)
		}

		valueRange := &sheets.ValueRange{Values: tab.values[i:end]}
		rangeStr := fmt.Sprintf("'%s'!A%d", tab.title, i+1)

		_, err := w.service.Spreadsheets.Values.Update(spreadsheetID, rangeStr, valueRange).
			ValueInputOption("RAW").
			Context(ctx).
			Do()
		if err != nil {
			return fmt.Errorf("failed to write batch starting at row %d: %w", i+1, err)
		}

		w.logger.Debug("wrote batch", "tab", tab.title, "start_row", i+1, "rows", end-i)
	}

	return nil
}

// tabValues is one tab's title and cell values, header row included.
type tabValues struct {
	title  string
	values [][]any
}

func buildTabs(report *model.Report) []tabValues {
	tabs := []tabValues{
		{title: TabCategorized, values: categorizedValues(report)},
		{title: TabStatistics, values: statisticsValues(report)},
		{title: TabPatterns, values: patternValues(report)},
		{title: TabUncategorized, values: uncategorizedValues(report)},
		{title: TabCodeMapping, values: codeMappingValues(report)},
	}
	if len(report.Suggestions) > 0 {
		tabs = append(tabs, tabValues{title: TabSuggestions, values: suggestionValues(report)})
	}
	tabs = append(tabs, tabValues{title: TabOwnerNotes, values: ownerNoteValues(report)})
	return tabs
}

func categorizedValues(report *model.Report) [][]any {
	values := [][]any{{
		"Kundetype", "Tariftype", "Bruger", "OverliggendeNet", "Rabat",
		"ChargeOwner", "ChargeType", "ChargeTypeCode", "Note", "Description",
		"ValidFrom", "ValidTo",
	}}
	for _, c := range report.Records {
		r := c.Record
		values = append(values, []any{
			c.Category(model.AxisKundetype),
			c.Category(model.AxisTariftype),
			c.Category(model.AxisBruger),
			c.Category(model.AxisOverliggendeNet),
			c.Category(model.AxisRabat),
			r.ChargeOwner, r.ChargeType, r.ChargeTypeCode, r.Note, r.Description,
			r.ValidFrom, r.ValidTo,
		})
	}
	return values
}

func statisticsValues(report *model.Report) [][]any {
	total := 0
	if len(report.Distributions) > 0 {
		total = report.Distributions[0].Total
	}

	values := [][]any{
		{"Category", "Metric", "Value", "Percentage"},
		{"Overall", "Total Rows", total, ""},
		{"Overall", "Uncategorized (both axes)", report.CrossTab.UncategorizedBoth, ""},
	}
	for _, dist := range report.Distributions {
		for _, count := range dist.Counts {
			values = append(values, []any{
				string(dist.Axis),
				count.Category,
				count.Count,
				fmt.Sprintf("%.2f%%", count.Percentage),
			})
		}
	}
	return values
}

func patternValues(report *model.Report) [][]any {
	values := [][]any{{"ChargeTypeCode", "Note", "Axis", "Assigned Category", "Matched Field", "Matched Pattern"}}
	for _, c := range report.Records {
		for _, axis := range []model.Axis{model.AxisKundetype, model.AxisTariftype} {
			result, ok := c.Results[axis]
			if !ok || result.IsUncategorized() {
				continue
			}
			values = append(values, []any{
				c.Record.ChargeTypeCode, c.Record.Note,
				string(axis), result.Category, result.Field, result.Pattern,
			})
		}
	}
	return values
}

func uncategorizedValues(report *model.Report) [][]any {
	values := [][]any{{"ChargeTypeCode", "Note", "Description", "Kundetype", "Tariftype"}}
	for _, c := range report.Uncategorized {
		values = append(values, []any{
			c.Record.ChargeTypeCode, c.Record.Note, c.Record.Description,
			c.Category(model.AxisKundetype), c.Category(model.AxisTariftype),
		})
	}
	return values
}

func codeMappingValues(report *model.Report) [][]any {
	values := [][]any{{
		"ChargeTypeCode", "Count",
		"Most Common Kundetype", "Kundetype Consistent", "Kundetype Categories",
		"Most Common Tariftype", "Tariftype Consistent", "Tariftype Categories",
		"Sample Note",
	}}
	for _, row := range report.Consistency {
		values = append(values, []any{
			row.Code, row.Count,
			row.ModalKundetype, row.KundetypeConsistent, strings.Join(row.KundetypeCategories, ", "),
			row.ModalTariftype, row.TariftypeConsistent, strings.Join(row.TariftypeCategories, ", "),
			row.SampleNote,
		})
	}
	return values
}

func suggestionValues(report *model.Report) [][]any {
	values := [][]any{{
		"ChargeTypeCode", "Note", "Current Kundetype", "Current Tariftype",
		"Suggested Kundetype", "Suggested Tariftype", "Reasoning",
	}}
	for _, s := range report.Suggestions {
		values = append(values, []any{
			s.ChargeTypeCode, s.Note, s.CurrentKundetype, s.CurrentTariftype,
			s.SuggestedKundetype, s.SuggestedTariftype, s.Reasoning,
		})
	}
	return values
}

func ownerNoteValues(report *model.Report) [][]any {
	values := [][]any{{"ChargeOwner", "Note", "Count", "Owner Total Records"}}
	for _, n := range report.OwnerNotes {
		values = append(values, []any{n.ChargeOwner, n.Note, n.Count, n.OwnerTotal})
	}
	return values
}
