package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/DaniBVN/Tarif/internal/common"
	"github.com/DaniBVN/Tarif/internal/config"
	"github.com/DaniBVN/Tarif/internal/energidata"
	"github.com/DaniBVN/Tarif/internal/model"
	"github.com/DaniBVN/Tarif/internal/service"
	"github.com/DaniBVN/Tarif/internal/storage"
	"github.com/spf13/viper"
)

const dateFormat = "2006-01-02"

// Default date range matches the dataset the original analysis covered.
const (
	defaultStartDate = "2021-01-01"
	defaultEndDate   = "2024-12-31"
)

// openStorage opens (and migrates) the cache database.
func openStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = filepath.Join(config.DefaultDataDir(), "tarif.db")
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate cache database: %w", err)
	}

	return store, nil
}

// parseDateRange validates and parses the start/end flags.
func parseDateRange(start, end string) (service.DateRange, error) {
	startDate, err := time.Parse(dateFormat, start)
	if err != nil {
		return service.DateRange{}, fmt.Errorf("invalid start date %q (want YYYY-MM-DD): %w", start, err)
	}
	endDate, err := time.Parse(dateFormat, end)
	if err != nil {
		return service.DateRange{}, fmt.Errorf("invalid end date %q (want YYYY-MM-DD): %w", end, err)
	}
	if startDate.After(endDate) {
		return service.DateRange{}, fmt.Errorf("start date %s is after end date %s", start, end)
	}

	return service.DateRange{Start: startDate, End: endDate}, nil
}

// newFetcher builds the Energi Data Service client from configuration.
func newFetcher() *energidata.Client {
	return energidata.NewClient(energidata.Config{
		BaseURL:  viper.GetString("api.base_url"),
		PageSize: viper.GetInt("api.page_size"),
	}, nil)
}

// loadRecords returns the records for a date range, from the cache when
// allowed and available, otherwise from the API (caching the result).
func loadRecords(ctx context.Context, store service.Storage, fetcher service.Fetcher, dateRange service.DateRange, useCache bool) ([]model.TariffRecord, error) {
	if useCache {
		records, err := store.GetCachedRecords(ctx, dateRange)
		if err == nil {
			common.LogInfo("using cached records", common.Fields{
				"date_range": dateRange.String(),
				"records":    len(records),
			})
			return records, nil
		}
		if !errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
	}

	records, err := fetcher.FetchPricelist(ctx, dateRange)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s", common.ErrNoRecords, dateRange.String())
	}

	if err := store.SaveFetch(ctx, dateRange, records); err != nil {
		return nil, fmt.Errorf("failed to cache fetched records: %w", err)
	}

	return records, nil
}
