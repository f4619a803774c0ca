package services

import (
	"sort"

	"toll-route-service/internal/domain"
)

// RankMode selects the ordering criterion for route alternatives.
type RankMode string

const (
	RankByTime     RankMode = "time"
	RankByCost     RankMode = "cost"
	RankByDistance RankMode = "distance"
)

// Rank derives a display order over route indices. The routes themselves are
// never reordered or mutated; callers re-run Rank whenever a toll result or a
// cost parameter changes. A route whose toll result has not arrived yet ranks
// with a toll cost of zero.
func Rank(
	routes []*domain.Route,
	tollResults map[int]*domain.TollResult,
	vehicle domain.VehicleParams,
	mode RankMode,
) []int {
	indices := make([]int, len(routes))
	for i := range indices {
		indices[i] = i
	}

	key := func(i int) float64 {
		switch mode {
		case RankByTime:
			return float64(routes[i].TotalDurationSeconds())
		case RankByDistance:
			return float64(routes[i].TotalLengthMeters())
		default:
			return RouteCost(routes[i], tollResults[i], vehicle)
		}
	}

	// Stable sort keeps the original index order on ties, so repeated calls
	// on unchanged inputs always produce the same ordering.
	sort.SliceStable(indices, func(a, b int) bool {
		return key(indices[a]) < key(indices[b])
	})

	return indices
}

// RouteCost is the derived operating cost of one route in EUR. In
// all-inclusive mode the operator's fixed total replaces the per-km/per-day
// model entirely.
func RouteCost(route *domain.Route, toll *domain.TollResult, vehicle domain.VehicleParams) float64 {
	if vehicle.AllInclusive {
		return vehicle.AllInclusiveEUR
	}

	tollCost := 0.0
	if toll != nil {
		tollCost = toll.TotalCost
	}

	distanceKm := float64(route.TotalLengthMeters()) / 1000

	// Any partial day counts as a full day.
	days := ceilDays(route.TotalDurationSeconds())

	return distanceKm*vehicle.EURPerKm + tollCost + float64(days)*vehicle.PricePerDay
}
