package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DaniBVN/Tarif/internal/cli"
	"github.com/DaniBVN/Tarif/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func fetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch tariff records from Energi Data Service",
		Long: `Fetch DatahubPricelist records for a date range and cache them
locally. Repeated runs for the same range reuse the cache unless
--no-cache forces a fresh download.`,
		RunE: runFetch,
	}

	cmd.Flags().String("start", defaultStartDate, "start date (YYYY-MM-DD)")
	cmd.Flags().String("end", defaultEndDate, "end date (YYYY-MM-DD)")
	cmd.Flags().Bool("no-cache", false, "force a fresh download from the API")
	cmd.Flags().Bool("list", false, "list cached fetches instead of fetching")

	_ = viper.BindPFlag("fetch.start", cmd.Flags().Lookup("start"))
	_ = viper.BindPFlag("fetch.end", cmd.Flags().Lookup("end"))
	_ = viper.BindPFlag("fetch.no_cache", cmd.Flags().Lookup("no-cache"))

	return cmd
}

func runFetch(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := openStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if list, _ := cmd.Flags().GetBool("list"); list {
		return listFetches(ctx, store)
	}

	dateRange, err := parseDateRange(viper.GetString("fetch.start"), viper.GetString("fetch.end"))
	if err != nil {
		return err
	}

	slog.Info(cli.FormatTitle("Fetching tariff records..."), "date_range", dateRange.String())

	records, err := loadRecords(ctx, store, newFetcher(), dateRange, !viper.GetBool("fetch.no_cache"))
	if err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("%d records available for %s", len(records), dateRange.String())))

	return nil
}

func listFetches(ctx context.Context, store service.Storage) error {
	fetches, err := store.ListFetches(ctx)
	if err != nil {
		return err
	}
	if len(fetches) == 0 {
		fmt.Println(cli.FormatWarning("no cached fetches"))
		return nil
	}

	for _, f := range fetches {
		fmt.Printf("%s  %7d records  fetched %s\n",
			f.DateRange.String(), f.RecordCount, f.FetchedAt.Format("2006-01-02 15:04"))
	}

	return nil
}
