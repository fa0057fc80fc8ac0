package main

import (
	"fmt"

	"github.com/DaniBVN/Tarif/internal/cli"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fetch, categorize and report in one pass",
		Long: `Run the full pipeline: load tariff records for the date range
(from the local cache, fetching from Energi Data Service when missing),
classify them on every axis, and write the analysis workbook.`,
		RunE: runPipeline,
	}

	cmd.Flags().String("start", defaultStartDate, "start date (YYYY-MM-DD)")
	cmd.Flags().String("end", defaultEndDate, "end date (YYYY-MM-DD)")
	cmd.Flags().StringP("output", "o", "", "output workbook path (default: tariff_categorization_results.xlsx)")
	cmd.Flags().Bool("no-cache", false, "fetch from the API even when cached records exist")
	cmd.Flags().Bool("no-prices", false, "omit the 24 hourly price columns from the workbook")
	cmd.Flags().Bool("sheets", false, "also export the report to Google Sheets")

	_ = viper.BindPFlag("run.start", cmd.Flags().Lookup("start"))
	_ = viper.BindPFlag("run.end", cmd.Flags().Lookup("end"))
	_ = viper.BindPFlag("categorize.output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("run.no_cache", cmd.Flags().Lookup("no-cache"))
	_ = viper.BindPFlag("categorize.no_prices", cmd.Flags().Lookup("no-prices"))
	_ = viper.BindPFlag("run.sheets", cmd.Flags().Lookup("sheets"))

	return cmd
}

func runPipeline(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	dateRange, err := parseDateRange(viper.GetString("run.start"), viper.GetString("run.end"))
	if err != nil {
		return err
	}

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	records, err := loadRecords(ctx, store, newFetcher(), dateRange, !viper.GetBool("run.no_cache"))
	if err != nil {
		return err
	}

	report, err := categorizeAndReport(ctx, records, dateRange, viper.GetBool("run.sheets"))
	if err != nil {
		return err
	}

	fmt.Println(cli.RenderSummary(report))

	return nil
}
