package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"toll-route-service/internal/domain"
	"toll-route-service/internal/platform/obs"
)

// SQLAddressCache is the Postgres implementation of the address cache, for
// deployments where several operator sessions share one warm cache.
type SQLAddressCache struct {
	DB *sql.DB
}

func NewSQLAddressCache(db *sql.DB) *SQLAddressCache {
	return &SQLAddressCache{DB: db}
}

// Fetch cached addresses for the given keys.
func (s *SQLAddressCache) GetMany(ctx context.Context, keys []string) (_ map[string]domain.Address, err error) {
	defer obs.Time(ctx, "address.cache.GetMany")(&err)

	if s.DB == nil {
		return nil, errors.New("address cache: db is nil")
	}

	uniq := dedupeKeys(keys)
	if len(uniq) == 0 {
		return map[string]domain.Address{}, nil
	}

	q := `
	SELECT key, country_code, postal_code, city
    FROM address_cache
    WHERE key = ANY($1::text[]);
	`

	rows, err := s.DB.QueryContext(ctx, q, uniq)
	if err != nil {
		return nil, fmt.Errorf("get address cache: query address_cache table: %w", err)
	}
	defer rows.Close()

	out := make(map[string]domain.Address, len(uniq))
	for rows.Next() {
		var key string
		var addr domain.Address
		if err := rows.Scan(&key, &addr.CountryCode, &addr.PostalCode, &addr.City); err != nil {
			return nil, fmt.Errorf("get address cache: scan rows: %w", err)
		}
		out[key] = addr
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get address cache: row iteration: %w", err)
	}

	return out, nil
}

// Store key -> address mappings in the cache.
func (s *SQLAddressCache) PutMany(ctx context.Context, results map[string]domain.Address) error {
	if s.DB == nil {
		return errors.New("address cache: db is nil")
	}

	if len(results) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert address cache: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO address_cache (key, country_code, postal_code, city)
    VALUES ($1, $2, $3, $4)
	ON CONFLICT (key) DO UPDATE
	SET country_code = EXCLUDED.country_code,
		postal_code = EXCLUDED.postal_code,
		city = EXCLUDED.city;
	`)
	if err != nil {
		return fmt.Errorf("insert address cache: db prepare: %w", err)
	}
	defer stmt.Close()

	for key, addr := range results {
		if key == "" {
			return fmt.Errorf("insert address cache: empty key")
		}

		if _, err := stmt.ExecContext(ctx, key, addr.CountryCode, addr.PostalCode, addr.City); err != nil {
			return fmt.Errorf("insert address cache key=%q: %w", key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert address cache commit: %w", err)
	}

	return nil
}
