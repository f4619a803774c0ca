package handlers

import (
	"log"
	"net/http"

	"toll-route-service/internal/api/dto"
	"toll-route-service/internal/ports"
	"toll-route-service/internal/services"
)

// RoutesHandler exposes the route-alternative planner: fetch candidates with
// their toll records, evaluate toll costs, and return the routes in ranked
// order.
type RoutesHandler struct {
	Planner *services.RoutePlanner
}

func (h *RoutesHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req dto.PlanRoutesRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if len(req.Stops) < 2 {
		writeError(w, r, http.StatusBadRequest, "at least 2 stops are required")
		return
	}

	mode := services.RankMode(req.Mode)
	switch mode {
	case services.RankByTime, services.RankByCost, services.RankByDistance:
	case "":
		mode = services.RankByCost
	default:
		writeError(w, r, http.StatusBadRequest, "mode must be one of time, cost, distance")
		return
	}

	vehicle := req.Vehicle.ToDomain()

	res, err := h.Planner.PlanAlternatives(r.Context(), ports.RouteRequest{
		Stops:   req.StopCoordinates(),
		LegVias: req.DomainLegVias(),
		Vehicle: vehicle,
	}, mode)
	if err != nil {
		log.Printf("route planning failed stops=%d: %v", len(req.Stops), err)
		writeError(w, r, http.StatusBadGateway, "routing provider unavailable")
		return
	}

	out := dto.PlanRoutesResponse{
		Mode:   string(mode),
		Routes: make([]dto.PlannedRouteResponse, 0, len(res.Order)),
	}
	for _, idx := range res.Order {
		route := res.Routes[idx]
		planned := dto.PlannedRouteResponse{
			Index:           idx,
			RouteID:         route.ID,
			LengthMeters:    route.TotalLengthMeters(),
			DurationSeconds: route.TotalDurationSeconds(),
			DerivedCost:     services.RouteCost(route, res.TollResults[idx], vehicle),
		}
		if toll, ok := res.TollResults[idx]; ok {
			payload := dto.FromTollResult(route.ID, toll)
			planned.Toll = &payload
		}
		out.Routes = append(out.Routes, planned)
	}

	writeJSON(w, r, http.StatusOK, out)
}
