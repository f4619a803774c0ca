package services

import (
	"context"
	"fmt"
	"log"
	"sync"

	"toll-route-service/internal/domain"
	"toll-route-service/internal/geo"
	"toll-route-service/internal/ports"
)

const (
	// Candidates are evaluated in sequential batches of this size; calls
	// within a batch run concurrently.
	viaBatchSize = 4

	// Duration dominates the score; length only breaks ties.
	scoreDurationWeight = 1000
)

// Sampling radii around the click point, capped at one kilometer.
var viaRadiiMeters = []float64{300, 600, 1000}

// candidate is one sampled point under evaluation. It exists only for the
// duration of a single search call.
type candidate struct {
	point domain.Coordinates
	meta  string

	durationSeconds int
	lengthMeters    int
	score           float64
	ok              bool
}

// ViaSearch discovers the best via stop near an operator-clicked point by
// sampling candidates and scoring each with a lightweight route summary.
type ViaSearch struct {
	provider ports.RouteSummaryProvider
}

func NewViaSearch(provider ports.RouteSummaryProvider) *ViaSearch {
	return &ViaSearch{provider: provider}
}

// PickBestVia returns the candidate via stop whose insertion into the given
// leg yields the cheapest whole-path summary. Candidates whose summary call
// fails are dropped; if every candidate fails the raw click point is returned
// unmodified.
func (s *ViaSearch) PickBestVia(
	ctx context.Context,
	click domain.Coordinates,
	legIndex int,
	stops []domain.Coordinates,
	legVias [][]domain.ViaStop,
	vehicle domain.VehicleParams,
) (domain.ViaStop, error) {
	if len(stops) < 2 {
		return domain.ViaStop{}, fmt.Errorf("pick best via: need at least 2 stops, got %d", len(stops))
	}
	if legIndex < 0 || legIndex >= len(stops)-1 {
		return domain.ViaStop{}, fmt.Errorf("pick best via: leg index %d out of range for %d stops", legIndex, len(stops))
	}

	legVias = domain.SyncLegVias(legVias, len(stops))
	candidates := sampleCandidates(click)

	var (
		best    *candidate
		bestIdx int
	)

	for start := 0; start < len(candidates); start += viaBatchSize {
		end := start + viaBatchSize
		if end > len(candidates) {
			end = len(candidates)
		}
		batch := candidates[start:end]

		s.evaluateBatch(ctx, batch, legIndex, stops, legVias, vehicle)

		// Candidates are compared in sampling order so the outcome does not
		// depend on goroutine completion order.
		for i := range batch {
			c := &batch[i]
			if !c.ok {
				continue
			}
			if best == nil || c.score < best.score {
				best = c
				bestIdx = start + i
			}
		}
	}

	if best == nil {
		log.Printf("via search: all %d candidates failed, keeping click point", len(candidates))
		return domain.ViaStop{ID: "via-click", Lat: click.Lat, Lng: click.Lon}, nil
	}

	return domain.ViaStop{
		ID:  fmt.Sprintf("via-%d-%s", bestIdx, best.meta),
		Lat: best.point.Lat,
		Lng: best.point.Lon,
	}, nil
}

// evaluateBatch issues the batch's summary calls concurrently and waits for
// all of them to settle before returning.
func (s *ViaSearch) evaluateBatch(
	ctx context.Context,
	batch []candidate,
	legIndex int,
	stops []domain.Coordinates,
	legVias [][]domain.ViaStop,
	vehicle domain.VehicleParams,
) {
	var wg sync.WaitGroup
	for i := range batch {
		wg.Add(1)
		go func(c *candidate) {
			defer wg.Done()

			via := domain.ViaStop{ID: "probe-" + c.meta, Lat: c.point.Lat, Lng: c.point.Lon}
			spliced := make([][]domain.ViaStop, len(legVias))
			copy(spliced, legVias)
			spliced[legIndex] = domain.InsertVia(legVias[legIndex], via, stops[legIndex], stops[legIndex+1])

			callCtx, cancel := context.WithTimeout(ctx, outboundCallTimeout)
			defer cancel()

			summary, err := s.provider.Summary(callCtx, ports.RouteRequest{
				Stops:   stops,
				LegVias: spliced,
				Vehicle: vehicle,
			})
			if err != nil {
				log.Printf("via candidate %s dropped: %v", c.meta, err)
				return
			}

			c.durationSeconds = summary.DurationSeconds
			c.lengthMeters = summary.LengthMeters
			c.score = float64(summary.DurationSeconds)*scoreDurationWeight + float64(summary.LengthMeters)
			c.ok = true
		}(&batch[i])
	}
	wg.Wait()
}

// sampleCandidates generates the fixed candidate set: the click point itself
// plus 8 compass bearings at each sampling radius.
func sampleCandidates(click domain.Coordinates) []candidate {
	bearings := geo.CompassBearings(8)
	out := make([]candidate, 0, 1+len(bearings)*len(viaRadiiMeters))
	out = append(out, candidate{point: click, meta: "center"})
	for _, radius := range viaRadiiMeters {
		for _, bearing := range bearings {
			out = append(out, candidate{
				point: geo.Offset(click, bearing, radius),
				meta:  fmt.Sprintf("b%03.0f-r%.0fm", bearing, radius),
			})
		}
	}
	return out
}
