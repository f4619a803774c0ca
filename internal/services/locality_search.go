package services

import (
	"context"
	"sync"

	"toll-route-service/internal/domain"
	"toll-route-service/internal/geo"
)

// overshootFactor controls early termination: the operator prunes the list
// manually, so roughly three times the requested count is collected and the
// remaining rings are skipped.
const overshootFactor = 3

// Ring radii for the broader locality sweep.
var localityRadiiMeters = []float64{2000, 5000, 10000, 20000, 40000}

// Locality is a named populated place discovered near a center point.
type Locality struct {
	Name    string
	Country string
	Point   domain.Coordinates
}

// LocalitySearch finds named localities around a point for bulk destination
// posting. It reuses the candidate-batch pattern of the via search, but
// resolves samples through the geocoder instead of scoring route summaries.
type LocalitySearch struct {
	resolver *GeocodeResolver
}

func NewLocalitySearch(resolver *GeocodeResolver) *LocalitySearch {
	return &LocalitySearch{resolver: resolver}
}

// NearbyLocalities samples concentric rings around the center, reverse
// resolving each sample, and returns localities deduplicated by
// (name, country). Sampling stops early once ~3x the needed count is found.
func (s *LocalitySearch) NearbyLocalities(
	ctx context.Context,
	center domain.Coordinates,
	needed int,
) ([]Locality, error) {
	if needed <= 0 {
		return []Locality{}, nil
	}
	target := needed * overshootFactor

	samples := []domain.Coordinates{center}
	for _, radius := range localityRadiiMeters {
		for _, bearing := range geo.CompassBearings(8) {
			samples = append(samples, geo.Offset(center, bearing, radius))
		}
	}

	seen := make(map[string]struct{})
	out := make([]Locality, 0, target)

	for start := 0; start < len(samples) && len(out) < target; start += viaBatchSize {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		end := start + viaBatchSize
		if end > len(samples) {
			end = len(samples)
		}
		batch := samples[start:end]

		resolved := make([]domain.Address, len(batch))
		var wg sync.WaitGroup
		for i := range batch {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				// Failed lookups leave an empty address and are skipped below.
				addr, err := s.resolver.ResolvePoint(ctx, batch[i])
				if err == nil {
					resolved[i] = addr
				}
			}(i)
		}
		wg.Wait()

		for i, addr := range resolved {
			if addr.City == "" || addr.CountryCode == "" {
				continue
			}
			key := addr.City + "|" + addr.CountryCode
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, Locality{
				Name:    addr.City,
				Country: addr.CountryCode,
				Point:   batch[i],
			})
			if len(out) >= target {
				break
			}
		}
	}

	return out, nil
}
