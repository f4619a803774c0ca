package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"toll-route-service/internal/domain"
)

// SQLite backed cache mapping geocode keys to resolved addresses. Keys are
// expected to be consistent (e.g., normalized) by the caller.
type SqliteAddressCache struct {
	DB *sql.DB
}

func NewSqliteAddressCache(db *sql.DB) *SqliteAddressCache {
	return &SqliteAddressCache{DB: db}
}

// Fetch cached addresses for the given keys.
func (s *SqliteAddressCache) GetMany(ctx context.Context, keys []string) (map[string]domain.Address, error) {
	if s.DB == nil {
		return nil, errors.New("address cache: db is nil")
	}

	uniq := dedupeKeys(keys)
	if len(uniq) == 0 {
		return map[string]domain.Address{}, nil
	}

	ph := make([]string, len(uniq))
	args := make([]any, len(uniq))
	for i, k := range uniq {
		ph[i] = "?"
		args[i] = k
	}

	// SQLite does not support binding slices directly in an IN (...) clause.
	// Only the placeholder structure is interpolated; all values remain
	// parameterized.
	q := fmt.Sprintf(`
	SELECT
        key,
        country_code,
        postal_code,
        city
    FROM address_cache
    WHERE key IN (%s);
	`, strings.Join(ph, ","))

	rows, err := s.DB.QueryContext(ctx, q, args...)
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
func (s *SqliteAddressCache) PutMany(ctx context.Context, results map[string]domain.Address) error {
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
	INSERT OR REPLACE INTO address_cache (
        key,
        country_code,
        postal_code,
        city
    )
    VALUES (?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("insert address cache: db prepare: %w", err)
	}
	defer stmt.Close()

	for key, addr := range results {
		if strings.TrimSpace(key) == "" {
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

func dedupeKeys(keys []string) []string {
	seen := map[string]struct{}{}
	uniq := make([]string, 0, len(keys))
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		uniq = append(uniq, k)
	}
	return uniq
}
