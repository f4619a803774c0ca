package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"toll-route-service/internal/domain"
	"toll-route-service/internal/ports"
)

// AlternativesResult bundles the fetched candidate routes with their toll
// evaluations and the derived display order. Routes whose toll evaluation
// failed are absent from TollResults and rank with a toll cost of zero.
type AlternativesResult struct {
	Routes      []*domain.Route
	TollResults map[int]*domain.TollResult
	Order       []int
}

// RoutePlanner fetches alternative routes for a path, runs each through the
// toll engine, and ranks them. It is the read path that turns one operator
// request into a cost-annotated route comparison.
type RoutePlanner struct {
	provider ports.RouteProvider
	engine   *TollEngine
}

func NewRoutePlanner(provider ports.RouteProvider, engine *TollEngine) *RoutePlanner {
	return &RoutePlanner{provider: provider, engine: engine}
}

// PlanAlternatives fetches candidate routes with their raw toll records,
// evaluates each route's toll cost, and derives the display order for the
// requested mode. A failed toll evaluation never drops a route: the route
// still ranks, costed without tolls.
func (p *RoutePlanner) PlanAlternatives(
	ctx context.Context,
	req ports.RouteRequest,
	mode RankMode,
) (*AlternativesResult, error) {
	if len(req.Stops) < 2 {
		return nil, fmt.Errorf("plan alternatives: need at least 2 stops, got %d", len(req.Stops))
	}

	callCtx, cancel := context.WithTimeout(ctx, outboundCallTimeout)
	defer cancel()

	routes, err := p.provider.Routes(callCtx, req)
	if err != nil {
		return nil, fmt.Errorf("plan alternatives: fetch routes: %w", err)
	}
	if len(routes) == 0 {
		return nil, errors.New("plan alternatives: provider returned no routes")
	}

	tollResults := make(map[int]*domain.TollResult, len(routes))
	for i, route := range routes {
		result, err := p.engine.ComputeTollResult(ctx, route, req.Vehicle.AxleCount)
		if err != nil {
			log.Printf("toll evaluation failed route=%s: %v", route.ID, err)
			continue
		}
		tollResults[i] = result
	}

	return &AlternativesResult{
		Routes:      routes,
		TollResults: tollResults,
		Order:       Rank(routes, tollResults, req.Vehicle, mode),
	}, nil
}
