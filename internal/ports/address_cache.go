package ports

import (
	"context"
	"toll-route-service/internal/domain"
)

// AddressCache is a persistent cache for resolved geocode results.
// Keys are expected to be consistent (e.g., normalized) by the caller.
type AddressCache interface {
	// Fetch cached addresses for the given keys. Missing keys are simply
	// absent from the result map.
	GetMany(ctx context.Context, keys []string) (map[string]domain.Address, error)
	// Store key -> address mappings in the cache.
	PutMany(ctx context.Context, results map[string]domain.Address) error
}
