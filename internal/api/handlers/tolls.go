package handlers

import (
	"log"
	"net/http"

	"toll-route-service/internal/api/dto"
	"toll-route-service/internal/services"
)

// TollHandler exposes the toll cost engine over HTTP.
type TollHandler struct {
	Engine *services.TollEngine
}

// Compute evaluates the toll cost of one submitted route. Re-submitting the
// same route identifier returns the already-computed result.
func (h *TollHandler) Compute(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req dto.TollCostRequest
	if !decodeBody(w, r, &req) {
		return
	}

	route := req.Route.ToDomain()
	if len(route.Sections) == 0 {
		writeError(w, r, http.StatusBadRequest, "route must contain at least one section")
		return
	}

	result, err := h.Engine.ComputeTollResult(r.Context(), route, req.AxleCount)
	if err != nil {
		log.Printf("toll computation failed route=%s: %v", route.ID, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.FromTollResult(route.ID, result))
}
