package services

import (
	"context"
	"reflect"
	"testing"

	"toll-route-service/internal/adapters/routing"
	"toll-route-service/internal/domain"
	"toll-route-service/internal/ports"
)

func TestPlanAlternativesRanksByDerivedCost(t *testing.T) {
	// Route "tolled" is shorter but pays a 30 EUR fare; "free" is longer but
	// toll-free and ends up cheaper at 1 EUR/km.
	provider := &routing.MockRouteProvider{
		ScriptedRoutes: []*domain.Route{
			{
				ID: "tolled",
				Sections: []domain.Section{{
					LengthMeters:    100000,
					DurationSeconds: 3600,
					Tolls: []domain.TollRecord{{
						CountryCode: "AUT",
						Fares:       []domain.Fare{eurFare("A1 Westautobahn", 30)},
					}},
				}},
			},
			{
				ID: "free",
				Sections: []domain.Section{{
					LengthMeters:    110000,
					DurationSeconds: 4200,
				}},
			},
		},
	}
	planner := NewRoutePlanner(provider, newTestEngine(nil))

	res, err := planner.PlanAlternatives(context.Background(), ports.RouteRequest{
		Stops:   testStops,
		Vehicle: domain.VehicleParams{AxleCount: 5, EURPerKm: 1},
	}, RankByCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.Routes) != 2 {
		t.Fatalf("expected 2 routes, got %d", len(res.Routes))
	}
	// 110 EUR for "free" vs 100+30 EUR for "tolled".
	if want := []int{1, 0}; !reflect.DeepEqual(res.Order, want) {
		t.Fatalf("order = %v, want %v", res.Order, want)
	}

	toll, ok := res.TollResults[0]
	if !ok {
		t.Fatal("missing toll result for the tolled route")
	}
	if !almostEqual(toll.TotalCost, 30) {
		t.Fatalf("toll total = %v, want 30", toll.TotalCost)
	}
	if len(toll.Items) != 1 || toll.Items[0].Name != "A1 Westautobahn" {
		t.Fatalf("unexpected toll breakdown: %+v", toll.Items)
	}
	if free, ok := res.TollResults[1]; !ok || !almostEqual(free.TotalCost, 0) {
		t.Fatalf("toll-free route should evaluate to zero, got %+v ok=%v", free, ok)
	}
}

func TestPlanAlternativesTimeModeIgnoresCost(t *testing.T) {
	provider := &routing.MockRouteProvider{
		ScriptedRoutes: []*domain.Route{
			{ID: "slow-cheap", Sections: []domain.Section{{LengthMeters: 90000, DurationSeconds: 7200}}},
			{ID: "fast-dear", Sections: []domain.Section{{
				LengthMeters:    150000,
				DurationSeconds: 3600,
				Tolls: []domain.TollRecord{{
					CountryCode: "AUT",
					Fares:       []domain.Fare{eurFare("A1", 50)},
				}},
			}}},
		},
	}
	planner := NewRoutePlanner(provider, newTestEngine(nil))

	res, err := planner.PlanAlternatives(context.Background(), ports.RouteRequest{
		Stops:   testStops,
		Vehicle: domain.VehicleParams{AxleCount: 5, EURPerKm: 2},
	}, RankByTime)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := []int{1, 0}; !reflect.DeepEqual(res.Order, want) {
		t.Fatalf("time order = %v, want %v", res.Order, want)
	}
}

func TestPlanAlternativesProviderErrorPropagates(t *testing.T) {
	planner := NewRoutePlanner(&routing.MockRouteProvider{}, newTestEngine(nil))

	// The empty mock scripts no routes and errors on every fetch.
	_, err := planner.PlanAlternatives(context.Background(), ports.RouteRequest{
		Stops: testStops,
	}, RankByCost)
	if err == nil {
		t.Fatal("expected the fetch failure to propagate")
	}
}

func TestPlanAlternativesValidatesStops(t *testing.T) {
	planner := NewRoutePlanner(&routing.MockRouteProvider{}, newTestEngine(nil))

	if _, err := planner.PlanAlternatives(context.Background(), ports.RouteRequest{
		Stops: testStops[:1],
	}, RankByCost); err == nil {
		t.Fatal("expected error for a single stop")
	}
}
