package cache

import (
	"database/sql"
	"errors"
	"fmt"
)

// InitSqliteSchema creates the address cache table for the local SQLite
// backend. Safe to run on every startup.
func InitSqliteSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init cache schema: db is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS address_cache (
		key TEXT PRIMARY KEY,
		country_code TEXT NOT NULL DEFAULT '',
		postal_code TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT ''
	);
	`
	if _, err := db.Exec(q); err != nil {
		return fmt.Errorf("init cache schema: create address_cache: %w", err)
	}
	return nil
}

// InitPostgresSchema creates the address cache table for the shared Postgres
// backend. Invoked by the dbtool command.
func InitPostgresSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init cache schema: db is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS address_cache (
		key TEXT PRIMARY KEY,
		country_code TEXT NOT NULL DEFAULT '',
		postal_code TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT ''
	);
	`
	if _, err := db.Exec(q); err != nil {
		return fmt.Errorf("init cache schema: create address_cache: %w", err)
	}
	return nil
}
