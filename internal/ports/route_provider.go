package ports

import (
	"context"
	"toll-route-service/internal/domain"
)

// RouteRequest describes one multi-leg path to evaluate: the ordered
// mandatory stops, the per-leg via stops, and the vehicle parameters the
// provider needs for truck routing.
type RouteRequest struct {
	Stops   []domain.Coordinates
	LegVias [][]domain.ViaStop
	Vehicle domain.VehicleParams
}

// RouteSummary is the lightweight evaluation of a path: duration and length
// only, no geometry and no toll detail.
type RouteSummary struct {
	DurationSeconds int
	LengthMeters    int
}

// RouteSummaryProvider returns a cheap duration/length summary for a path.
// The candidate search calls this once per sampled candidate, so it must be
// the provider's least expensive evaluation mode.
type RouteSummaryProvider interface {
	Summary(ctx context.Context, req RouteRequest) (RouteSummary, error)
}

// RouteProvider returns full candidate routes with per-section toll records.
type RouteProvider interface {
	RouteSummaryProvider
	// Return one or more alternative routes for the requested path.
	Routes(ctx context.Context, req RouteRequest) ([]*domain.Route, error)
}
