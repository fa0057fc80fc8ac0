package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application
// expects. If the database cannot be migrated to this version, it's a
// fatal error.
const ExpectedSchemaVersion = 1

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS fetches (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					start_date TEXT NOT NULL,
					end_date TEXT NOT NULL,
					record_count INTEGER NOT NULL DEFAULT 0,
					fetched_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					UNIQUE(start_date, end_date)
				)`,

				`CREATE TABLE IF NOT EXISTS records (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					fetch_id INTEGER NOT NULL,
					charge_owner TEXT,
					gln_number TEXT,
					charge_type TEXT,
					charge_type_code TEXT,
					note TEXT,
					description TEXT,
					valid_from TEXT,
					valid_to TEXT,
					vat_class TEXT,
					prices TEXT,
					transparent_invoicing INTEGER DEFAULT 0,
					tax_indicator INTEGER DEFAULT 0,
					resolution_duration TEXT,
					FOREIGN KEY (fetch_id) REFERENCES fetches(id) ON DELETE CASCADE
				)`,
				`CREATE INDEX idx_records_fetch ON records(fetch_id)`,
				`CREATE INDEX idx_records_code ON records(charge_type_code)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
}

// Migrate brings the database schema up to the expected version.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	current, err := s.schemaVersion(ctx)
	if err != nil {
		return err
	}

	for _, migration := range migrations {
		if migration.Version <= current {
			continue
		}

		slog.Info("applying migration",
			"version", migration.Version,
			"description", migration.Description)

		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration transaction: %w", err)
		}

		if err := migration.Up(tx); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}

		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to set schema version %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}
	}

	return nil
}

func (s *SQLiteStorage) schemaVersion(ctx context.Context) (int, error) {
	var version int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}
	return version, nil
}
