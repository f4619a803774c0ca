package ports

import "context"

// RateSource is the boundary to the external exchange-rate capability.
// Rates returns the full currency -> rate table relative to EUR.
type RateSource interface {
	Rates(ctx context.Context) (map[string]float64, error)
}
