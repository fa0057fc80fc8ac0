package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/DaniBVN/Tarif/internal/common"
	"github.com/DaniBVN/Tarif/internal/model"
	"github.com/DaniBVN/Tarif/internal/service"
	"github.com/shopspring/decimal"
)

const dateKeyFormat = "2006-01-02"

// SaveFetch stores one complete fetch, replacing any previous fetch for
// the same date range.
func (s *SQLiteStorage) SaveFetch(ctx context.Context, dateRange service.DateRange, records []model.TariffRecord) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateDateRange(dateRange); err != nil {
		return err
	}

	startKey := dateRange.Start.Format(dateKeyFormat)
	endKey := dateRange.End.Format(dateKeyFormat)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Cascade removes the previous fetch's records.
	if _, err = tx.ExecContext(ctx,
		`DELETE FROM fetches WHERE start_date = ? AND end_date = ?`,
		startKey, endKey); err != nil {
		return fmt.Errorf("failed to clear previous fetch: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		`INSERT INTO fetches (start_date, end_date, record_count) VALUES (?, ?, ?)`,
		startKey, endKey, len(records))
	if err != nil {
		return fmt.Errorf("failed to insert fetch: %w", err)
	}

	fetchID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get fetch id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO records (
			fetch_id, charge_owner, gln_number, charge_type, charge_type_code,
			note, description, valid_from, valid_to, vat_class, prices,
			transparent_invoicing, tax_indicator, resolution_duration
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i := range records {
		r := &records[i]

		pricesJSON, marshalErr := json.Marshal(r.Prices())
		if marshalErr != nil {
			return fmt.Errorf("failed to marshal prices: %w", marshalErr)
		}

		if _, err = stmt.ExecContext(ctx,
			fetchID,
			r.ChargeOwner,
			r.GLNNumber,
			r.ChargeType,
			r.ChargeTypeCode,
			r.Note,
			r.Description,
			r.ValidFrom,
			r.ValidTo,
			r.VATClass,
			string(pricesJSON),
			r.TransparentInvoicing,
			r.TaxIndicator,
			r.ResolutionDuration,
		); err != nil {
			return fmt.Errorf("failed to insert record: %w", err)
		}
	}

	return tx.Commit()
}

// GetCachedRecords returns the records of a previous fetch for the exact
// date range, or common.ErrNotFound if no such fetch exists.
func (s *SQLiteStorage) GetCachedRecords(ctx context.Context, dateRange service.DateRange) ([]model.TariffRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateDateRange(dateRange); err != nil {
		return nil, err
	}

	var fetchID int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM fetches WHERE start_date = ? AND end_date = ?`,
		dateRange.Start.Format(dateKeyFormat),
		dateRange.End.Format(dateKeyFormat),
	).Scan(&fetchID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: no cached fetch for %s", common.ErrNotFound, dateRange.String())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up fetch: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT charge_owner, gln_number, charge_type, charge_type_code,
			note, description, valid_from, valid_to, vat_class, prices,
			transparent_invoicing, tax_indicator, resolution_duration
		FROM records WHERE fetch_id = ? ORDER BY id
	`, fetchID)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.TariffRecord
	for rows.Next() {
		var r model.TariffRecord
		var pricesJSON string

		if err := rows.Scan(
			&r.ChargeOwner,
			&r.GLNNumber,
			&r.ChargeType,
			&r.ChargeTypeCode,
			&r.Note,
			&r.Description,
			&r.ValidFrom,
			&r.ValidTo,
			&r.VATClass,
			&pricesJSON,
			&r.TransparentInvoicing,
			&r.TaxIndicator,
			&r.ResolutionDuration,
		); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}

		if pricesJSON != "" {
			var prices []decimal.NullDecimal
			if err := json.Unmarshal([]byte(pricesJSON), &prices); err != nil {
				return nil, fmt.Errorf("failed to unmarshal prices: %w", err)
			}
			r.SetPrices(prices)
		}

		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}

	return records, nil
}

// ListFetches returns metadata for all cached fetches, newest first.
func (s *SQLiteStorage) ListFetches(ctx context.Context) ([]service.FetchInfo, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT start_date, end_date, record_count, fetched_at
		FROM fetches ORDER BY fetched_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query fetches: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var fetches []service.FetchInfo
	for rows.Next() {
		var info service.FetchInfo
		var startKey, endKey string

		if err := rows.Scan(&startKey, &endKey, &info.RecordCount, &info.FetchedAt); err != nil {
			return nil, fmt.Errorf("failed to scan fetch: %w", err)
		}

		if info.DateRange.Start, err = time.Parse(dateKeyFormat, startKey); err != nil {
			return nil, fmt.Errorf("corrupt start date %q: %w", startKey, err)
		}
		if info.DateRange.End, err = time.Parse(dateKeyFormat, endKey); err != nil {
			return nil, fmt.Errorf("corrupt end date %q: %w", endKey, err)
		}

		fetches = append(fetches, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate fetches: %w", err)
	}

	return fetches, nil
}
