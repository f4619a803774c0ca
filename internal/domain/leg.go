package domain

import (
	"math"
	"sort"
)

// ViaStop is an optional intermediate point inserted into a leg to bias the
// route between two mandatory stops.
type ViaStop struct {
	ID  string
	Lat float64
	Lng float64
}

// Coordinates view of the via stop.
func (v ViaStop) Coordinates() Coordinates { return Coordinates{Lon: v.Lng, Lat: v.Lat} }

// SyncLegVias resizes the per-leg via lists so that there is exactly one list
// per leg: max(stopCount-1, 0). Existing lists are preserved positionally;
// surplus lists are dropped, missing ones are added empty.
func SyncLegVias(vias [][]ViaStop, stopCount int) [][]ViaStop {
	want := stopCount - 1
	if want < 0 {
		want = 0
	}
	out := make([][]ViaStop, want)
	for i := 0; i < want && i < len(vias); i++ {
		out[i] = vias[i]
	}
	for i := range out {
		if out[i] == nil {
			out[i] = []ViaStop{}
		}
	}
	return out
}

// InsertVia adds a via to a leg's list, keeping the list sorted by projection
// onto the leg's start->end direction rather than by insertion order. The
// input slice is not modified.
func InsertVia(vias []ViaStop, v ViaStop, legStart, legEnd Coordinates) []ViaStop {
	out := make([]ViaStop, 0, len(vias)+1)
	out = append(out, vias...)
	out = append(out, v)
	sort.SliceStable(out, func(i, j int) bool {
		return legProjection(out[i], legStart, legEnd) < legProjection(out[j], legStart, legEnd)
	})
	return out
}

// legProjection is the scalar projection of a via onto the leg direction in a
// local flat-earth frame. Only the ordering of the values matters, so the
// equirectangular approximation is sufficient.
func legProjection(v ViaStop, start, end Coordinates) float64 {
	scale := math.Cos((start.Lat + end.Lat) / 2 * math.Pi / 180)
	dx := (end.Lon - start.Lon) * scale
	dy := end.Lat - start.Lat
	px := (v.Lng - start.Lon) * scale
	py := v.Lat - start.Lat
	return px*dx + py*dy
}
