package main

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DaniBVN/Tarif/internal/common"
	"github.com/DaniBVN/Tarif/internal/model"
	"github.com/DaniBVN/Tarif/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateRange(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		wantErr string
	}{
		{name: "valid range", start: "2021-01-01", end: "2024-12-31"},
		{name: "single day", start: "2021-01-01", end: "2021-01-01"},
		{name: "bad start", start: "01/01/2021", end: "2024-12-31", wantErr: "invalid start date"},
		{name: "bad end", start: "2021-01-01", end: "yesterday", wantErr: "invalid end date"},
		{name: "backwards", start: "2024-12-31", end: "2021-01-01", wantErr: "is after end date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dateRange, err := parseDateRange(tt.start, tt.end)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.start, dateRange.Start.Format(dateFormat))
			assert.Equal(t, tt.end, dateRange.End.Format(dateFormat))
		})
	}
}

// fakeStorage is an in-memory service.Storage for command-level tests.
type fakeStorage struct {
	fetches map[string][]model.TariffRecord
	saves   int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{fetches: make(map[string][]model.TariffRecord)}
}

func (s *fakeStorage) SaveFetch(_ context.Context, dateRange service.DateRange, records []model.TariffRecord) error {
	s.saves++
	s.fetches[dateRange.String()] = records
	return nil
}

func (s *fakeStorage) GetCachedRecords(_ context.Context, dateRange service.DateRange) ([]model.TariffRecord, error) {
	records, ok := s.fetches[dateRange.String()]
	if !ok {
		return nil, fmt.Errorf("%w: no cached fetch for %s", common.ErrNotFound, dateRange.String())
	}
	return records, nil
}

func (s *fakeStorage) ListFetches(_ context.Context) ([]service.FetchInfo, error) {
	return nil, nil
}

func (s *fakeStorage) Migrate(_ context.Context) error { return nil }
func (s *fakeStorage) Close() error                    { return nil }

// fakeFetcher is a canned service.Fetcher.
type fakeFetcher struct {
	records []model.TariffRecord
	err     error
	calls   int
}

func (f *fakeFetcher) FetchPricelist(_ context.Context, _ service.DateRange) ([]model.TariffRecord, error) {
	f.calls++
	return f.records, f.err
}

func testRange(t *testing.T) service.DateRange {
	t.Helper()
	return service.DateRange{
		Start: time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestLoadRecordsFetchesAndCaches(t *testing.T) {
	store := newFakeStorage()
	fetcher := &fakeFetcher{records: []model.TariffRecord{{ChargeTypeCode: "DT_C_01"}}}

	records, err := loadRecords(context.Background(), store, fetcher, testRange(t), true)
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, 1, fetcher.calls)
	assert.Equal(t, 1, store.saves)
}

func TestLoadRecordsUsesCache(t *testing.T) {
	store := newFakeStorage()
	dateRange := testRange(t)
	require.NoError(t, store.SaveFetch(context.Background(), dateRange, []model.TariffRecord{{ChargeTypeCode: "CACHED"}}))

	fetcher := &fakeFetcher{records: []model.TariffRecord{{ChargeTypeCode: "FRESH"}}}

	records, err := loadRecords(context.Background(), store, fetcher, dateRange, true)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "CACHED", records[0].ChargeTypeCode)
	assert.Zero(t, fetcher.calls, "cache hit skips the API")
}

func TestLoadRecordsNoCacheForcesFetch(t *testing.T) {
	store := newFakeStorage()
	dateRange := testRange(t)
	require.NoError(t, store.SaveFetch(context.Background(), dateRange, []model.TariffRecord{{ChargeTypeCode: "CACHED"}}))

	fetcher := &fakeFetcher{records: []model.TariffRecord{{ChargeTypeCode: "FRESH"}}}

	records, err := loadRecords(context.Background(), store, fetcher, dateRange, false)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "FRESH", records[0].ChargeTypeCode)
	assert.Equal(t, 1, fetcher.calls)
}

func TestLoadRecordsEmptyFetch(t *testing.T) {
	store := newFakeStorage()
	fetcher := &fakeFetcher{}

	_, err := loadRecords(context.Background(), store, fetcher, testRange(t), true)
	assert.ErrorIs(t, err, common.ErrNoRecords)
	assert.Zero(t, store.saves, "an empty fetch is not cached")
}

func TestLoadRecordsFetchError(t *testing.T) {
	store := newFakeStorage()
	fetcher := &fakeFetcher{err: errors.New("api down")}

	_, err := loadRecords(context.Background(), store, fetcher, testRange(t), true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api down")
}
