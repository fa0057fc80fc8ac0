package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/DaniBVN/Tarif/internal/analysis"
	"github.com/DaniBVN/Tarif/internal/cli"
	"github.com/DaniBVN/Tarif/internal/common"
	"github.com/DaniBVN/Tarif/internal/config"
	"github.com/DaniBVN/Tarif/internal/engine"
	"github.com/DaniBVN/Tarif/internal/excel"
	"github.com/DaniBVN/Tarif/internal/model"
	"github.com/DaniBVN/Tarif/internal/service"
	"github.com/DaniBVN/Tarif/internal/sheets"
	"github.com/DaniBVN/Tarif/internal/taxonomy"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func categorizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categorize",
		Short: "Categorize previously fetched tariff records",
		Long: `Classify the cached records for a date range on every axis,
compute statistics, consistency analysis and suggestions, and write
the multi-sheet workbook. Requires a prior 'tarif fetch' for the
same date range.`,
		RunE: runCategorize,
	}

	cmd.Flags().String("start", defaultStartDate, "start date (YYYY-MM-DD)")
	cmd.Flags().String("end", defaultEndDate, "end date (YYYY-MM-DD)")
	cmd.Flags().StringP("output", "o", "", "output workbook path (default: tariff_categorization_results.xlsx)")
	cmd.Flags().Bool("no-prices", false, "omit the 24 hourly price columns from the workbook")

	_ = viper.BindPFlag("categorize.start", cmd.Flags().Lookup("start"))
	_ = viper.BindPFlag("categorize.end", cmd.Flags().Lookup("end"))
	_ = viper.BindPFlag("categorize.output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("categorize.no_prices", cmd.Flags().Lookup("no-prices"))

	return cmd
}

func runCategorize(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	dateRange, err := parseDateRange(viper.GetString("categorize.start"), viper.GetString("categorize.end"))
	if err != nil {
		return err
	}

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	records, err := store.GetCachedRecords(ctx, dateRange)
	if errors.Is(err, common.ErrNotFound) {
		return common.NewUserError(
			fmt.Sprintf("no cached records for %s; run 'tarif fetch' first", dateRange.String()), err)
	}
	if err != nil {
		return err
	}

	report, err := categorizeAndReport(ctx, records, dateRange, false)
	if err != nil {
		return err
	}

	fmt.Println(cli.RenderSummary(report))

	return nil
}

// categorizeAndReport runs the classification pass, builds the aggregate
// report and writes the configured report targets.
func categorizeAndReport(ctx context.Context, records []model.TariffRecord, dateRange service.DateRange, exportSheets bool) (*model.Report, error) {
	bar := progressbar.NewOptions(len(records),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Categorizing tariff records..."),
		progressbar.OptionClearOnFinish(),
	)

	classifier, err := engine.NewClassifier(taxonomy.Default(),
		engine.WithProgress(func(done, _ int) {
			_ = bar.Set(done)
		}))
	if err != nil {
		return nil, fmt.Errorf("failed to build classifier: %w", err)
	}

	classified, err := classifier.ClassifyAll(ctx, records)
	if err != nil {
		return nil, fmt.Errorf("classification failed: %w", err)
	}
	_ = bar.Finish()

	report := analysis.BuildReport(dateRange.Start, dateRange.End, classified)

	outputPath := viper.GetString("categorize.output")
	if outputPath == "" {
		outputPath = excel.DefaultConfig().OutputPath
	}

	writer, err := excel.NewWriter(excel.Config{
		OutputPath:    config.ExpandPath(outputPath),
		IncludePrices: !viper.GetBool("categorize.no_prices"),
	}, slog.Default())
	if err != nil {
		return nil, err
	}
	if err := writer.Write(ctx, report); err != nil {
		return nil, err
	}

	if exportSheets {
		if err := exportToSheets(ctx, report); err != nil {
			return nil, err
		}
	}

	return report, nil
}

func exportToSheets(ctx context.Context, report *model.Report) error {
	sheetsConfig := sheets.DefaultConfig()
	if err := sheetsConfig.LoadFromEnv(); err != nil {
		return common.NewUserError("Google Sheets export requested but credentials are missing", err)
	}

	writer, err := sheets.NewWriter(ctx, sheetsConfig, slog.Default())
	if err != nil {
		return err
	}

	return writer.Write(ctx, report)
}
