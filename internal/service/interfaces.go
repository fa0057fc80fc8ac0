// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/DaniBVN/Tarif/internal/model"
)

// DateRange represents the period a price list fetch covers.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// String renders the range the way the API and the cache key it.
func (r DateRange) String() string {
	return r.Start.Format("2006-01-02") + ".." + r.End.Format("2006-01-02")
}

// Fetcher retrieves raw tariff records for a date range.
type Fetcher interface {
	FetchPricelist(ctx context.Context, dateRange DateRange) ([]model.TariffRecord, error)
}

// Storage defines the contract for the local record cache.
type Storage interface {
	// SaveFetch stores one complete fetch for a date range, replacing any
	// previous fetch for the same range.
	SaveFetch(ctx context.Context, dateRange DateRange, records []model.TariffRecord) error
	// GetCachedRecords returns the records of a previous fetch for the
	// exact date range, or common.ErrNotFound.
	GetCachedRecords(ctx context.Context, dateRange DateRange) ([]model.TariffRecord, error)
	// ListFetches returns metadata for all cached fetches, newest first.
	ListFetches(ctx context.Context) ([]FetchInfo, error)

	Migrate(ctx context.Context) error
	Close() error
}

// FetchInfo describes one cached fetch.
type FetchInfo struct {
	FetchedAt   time.Time
	DateRange   DateRange
	RecordCount int
}

// ReportWriter renders a complete categorization report.
type ReportWriter interface {
	Write(ctx context.Context, report *model.Report) error
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
