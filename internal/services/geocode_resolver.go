package services

import (
	"context"
	"errors"
	"log"
	"time"

	"toll-route-service/internal/domain"
	"toll-route-service/internal/ports"
)

// Every outbound call made by this package runs under its own deadline so a
// hanging provider can stall at most one call, never a whole batch.
const outboundCallTimeout = 10 * time.Second

// reverseRadiiMeters is the widening ladder tried until a lookup yields a
// usable postal code.
var reverseRadiiMeters = []int{0, 100, 500, 1000, 5000}

// GeocodeResolver turns a coordinate or free-text label into a postal code,
// 2-letter country code and canonical locality name. Results are best-effort
// partials: a missing postal code is returned, not treated as failure.
type GeocodeResolver struct {
	geocoder ports.Geocoder
}

func NewGeocodeResolver(g ports.Geocoder) *GeocodeResolver {
	return &GeocodeResolver{geocoder: g}
}

// ResolvePoint reverse-geocodes a coordinate. The exact point is tried first,
// then widening radii; the last non-empty result is kept even if incomplete.
// If no radius produces a postal code and a locality name is known, one
// forward lookup on that name is attempted before settling for the partial.
func (r *GeocodeResolver) ResolvePoint(ctx context.Context, point domain.Coordinates) (domain.Address, error) {
	var best domain.Address

	for _, radius := range reverseRadiiMeters {
		if err := ctx.Err(); err != nil {
			return normalizeAddress(best), err
		}

		addr, err := r.reverse(ctx, point, radius)
		if err != nil {
			log.Printf("reverse geocode failed radius=%dm lat=%.5f lon=%.5f: %v", radius, point.Lat, point.Lon, err)
			continue
		}
		if addr.Empty() {
			continue
		}

		best = addr
		if normalizeAddress(addr).Usable() {
			return normalizeAddress(best), nil
		}
	}

	// Widening never produced a postal code; a forward lookup on the
	// locality name sometimes fills the gap.
	if best.PostalCode == "" && best.City != "" {
		addr, err := r.ResolveLabel(ctx, best.City)
		if err == nil && addr.Usable() {
			return addr, nil
		}
	}

	return normalizeAddress(best), nil
}

// ResolveLabel forward-geocodes a free-text label.
func (r *GeocodeResolver) ResolveLabel(ctx context.Context, label string) (domain.Address, error) {
	if label == "" {
		return domain.Address{}, errors.New("resolve label: label must be non-empty")
	}

	callCtx, cancel := context.WithTimeout(ctx, outboundCallTimeout)
	defer cancel()

	addr, err := r.geocoder.Forward(callCtx, label)
	if err != nil {
		log.Printf("forward geocode failed label=%q: %v", label, err)
		return domain.Address{}, nil
	}
	return normalizeAddress(addr), nil
}

func (r *GeocodeResolver) reverse(ctx context.Context, point domain.Coordinates, radius int) (domain.Address, error) {
	callCtx, cancel := context.WithTimeout(ctx, outboundCallTimeout)
	defer cancel()
	return r.geocoder.Reverse(callCtx, point, radius)
}

func normalizeAddress(a domain.Address) domain.Address {
	a.CountryCode = domain.NormalizeCountry(a.CountryCode)
	return a
}
