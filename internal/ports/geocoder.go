package ports

import (
	"context"
	"toll-route-service/internal/domain"
)

// Geocoder is the boundary to the external reverse/forward geocoding
// capability. Both lookups return zero or one address; "not found" is an
// empty Address, not an error.
type Geocoder interface {
	// Reverse resolves a coordinate to an address, searching within
	// radiusMeters around the point (0 means exact-point lookup).
	Reverse(ctx context.Context, point domain.Coordinates, radiusMeters int) (domain.Address, error)
	// Forward resolves a free-text label to an address.
	Forward(ctx context.Context, label string) (domain.Address, error)
}
