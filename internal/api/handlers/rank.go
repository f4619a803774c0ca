package handlers

import (
	"net/http"

	"toll-route-service/internal/api/dto"
	"toll-route-service/internal/domain"
	"toll-route-service/internal/services"
)

// RankHandler derives a display order over submitted route alternatives.
type RankHandler struct{}

func (h *RankHandler) Rank(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req dto.RankRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if len(req.Routes) == 0 {
		writeError(w, r, http.StatusBadRequest, "at least one route is required")
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

	routes := make([]*domain.Route, 0, len(req.Routes))
	for _, p := range req.Routes {
		routes = append(routes, p.ToDomain())
	}

	vehicle := req.Vehicle.ToDomain()

	tollResults := make(map[int]*domain.TollResult, len(req.TollTotals))
	for idx, total := range req.TollTotals {
		if idx < 0 || idx >= len(routes) {
			writeError(w, r, http.StatusBadRequest, "toll_totals index out of range")
			return
		}
		tollResults[idx] = &domain.TollResult{TotalCost: total}
	}

	order := services.Rank(routes, tollResults, vehicle, mode)

	res := dto.RankResponse{Mode: string(mode), Order: make([]dto.RankedRouteResponse, 0, len(order))}
	for _, idx := range order {
		res.Order = append(res.Order, dto.RankedRouteResponse{
			Index:       idx,
			RouteID:     routes[idx].ID,
			DerivedCost: services.RouteCost(routes[idx], tollResults[idx], vehicle),
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
