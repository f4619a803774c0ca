package routing

import (
	"context"
	"errors"

	"toll-route-service/internal/domain"
	"toll-route-service/internal/ports"
)

// MockRouteProvider serves scripted routes and summaries in tests.
// SummaryFn, when set, computes summaries per request (the via search feeds
// every sampled candidate through it).
type MockRouteProvider struct {
	ScriptedRoutes []*domain.Route
	SummaryFn      func(req ports.RouteRequest) (ports.RouteSummary, error)
}

func (m *MockRouteProvider) Routes(ctx context.Context, req ports.RouteRequest) ([]*domain.Route, error) {
	if len(m.ScriptedRoutes) == 0 {
		return nil, errors.New("mock provider: no scripted routes")
	}
	return m.ScriptedRoutes, nil
}

func (m *MockRouteProvider) Summary(ctx context.Context, req ports.RouteRequest) (ports.RouteSummary, error) {
	if m.SummaryFn == nil {
		return ports.RouteSummary{}, errors.New("mock provider: no summary function")
	}
	return m.SummaryFn(req)
}
