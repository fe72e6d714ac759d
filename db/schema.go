// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database types
const (
	TypePostgres = "postgres"
	TypeSQLite   = "sqlite"
)

// Open opens a connection pool for the given database type and verifies it.
func Open(ctx context.Context, dbType, url string) (*sql.DB, error) {
	driver, err := driverName(dbType)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dbType, err)
	}

	// A second connection to an in-memory sqlite database would see an
	// empty database.
	if dbType == TypeSQLite {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", dbType, err)
	}
	return conn, nil
}

func driverName(dbType string) (string, error) {
	switch dbType {
	case TypePostgres:
		return "postgres", nil
	case TypeSQLite:
		return "sqlite", nil
	}
	return "", fmt.Errorf("unsupported database type %q (want postgres or sqlite)", dbType)
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dbType string) error {
	idType := "BIGSERIAL PRIMARY KEY"
	if dbType == TypeSQLite {
		idType = "INTEGER PRIMARY KEY AUTOINCREMENT"
	} else if dbType != TypePostgres {
		return fmt.Errorf("unsupported database type %q", dbType)
	}

	_, err := db.Exec(fmt.Sprintf(schema, idType, idType, idType, idType, idType))
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Burners
CREATE TABLE IF NOT EXISTS burners (
    id %s,
    serial_number TEXT NOT NULL UNIQUE,
    model TEXT,
    customer_name TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Burner components
CREATE TABLE IF NOT EXISTS components (
    id %s,
    burner_id BIGINT NOT NULL REFERENCES burners(id) ON DELETE CASCADE,
    part_code TEXT NOT NULL,
    part_description TEXT NOT NULL DEFAULT '',
    quantity DOUBLE PRECISION NOT NULL DEFAULT 0,
    tags TEXT
);

CREATE INDEX IF NOT EXISTS idx_components_burner_id ON components(burner_id, part_code);

-- Jobs
CREATE TABLE IF NOT EXISTS jobs (
    id %s,
    job_number TEXT NOT NULL UNIQUE,
    customer_name TEXT NOT NULL DEFAULT '',
    filename TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    burner_type TEXT NOT NULL DEFAULT ''
);

-- Job components, one row per part per sheet
CREATE TABLE IF NOT EXISTS job_components (
    id %s,
    job_number TEXT NOT NULL REFERENCES jobs(job_number) ON DELETE CASCADE,
    sheet_name TEXT NOT NULL,
    part_code TEXT NOT NULL,
    part_description TEXT NOT NULL DEFAULT '',
    quantity DOUBLE PRECISION NOT NULL DEFAULT 0,
    tags TEXT
);

CREATE INDEX IF NOT EXISTS idx_job_components_job ON job_components(job_number, sheet_name, part_code);

-- Job electrical items
CREATE TABLE IF NOT EXISTS job_electrical_items (
    id %s,
    job_number TEXT NOT NULL REFERENCES jobs(job_number) ON DELETE CASCADE,
    sheet_name TEXT NOT NULL,
    item_code TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    quantity DOUBLE PRECISION NOT NULL DEFAULT 0,
    notes TEXT
);

CREATE INDEX IF NOT EXISTS idx_job_electrical_items_job ON job_electrical_items(job_number, sheet_name, item_code);
`
