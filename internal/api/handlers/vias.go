package handlers

import (
	"log"
	"net/http"

	"toll-route-service/internal/api/dto"
	"toll-route-service/internal/services"
)

// ViaHandler exposes the via-point candidate search.
type ViaHandler struct {
	Search *services.ViaSearch
}

func (h *ViaHandler) PickBestVia(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req dto.ViaSearchRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if len(req.Stops) < 2 {
		writeError(w, r, http.StatusBadRequest, "at least 2 stops are required")
		return
	}
	if req.LegIndex < 0 || req.LegIndex >= len(req.Stops)-1 {
		writeError(w, r, http.StatusBadRequest, "leg_index out of range")
		return
	}

	via, err := h.Search.PickBestVia(
		r.Context(),
		req.Click.ToCoordinates(),
		req.LegIndex,
		req.StopCoordinates(),
		req.DomainLegVias(),
		req.Vehicle.ToDomain(),
	)
	if err != nil {
		log.Printf("via search failed leg=%d: %v", req.LegIndex, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ViaSearchResponse{
		Via: dto.ViaStopPayload{ID: via.ID, Lat: via.Lat, Lng: via.Lng},
	})
}

// LocalityHandler exposes the broader-radius locality sweep used for bulk
// destination posting.
type LocalityHandler struct {
	Search *services.LocalitySearch
}

func (h *LocalityHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}

	var req dto.LocalitySearchRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.Needed < 1 || req.Needed > 50 {
		writeError(w, r, http.StatusBadRequest, "needed must be between 1 and 50")
		return
	}

	localities, err := h.Search.NearbyLocalities(r.Context(), req.Center.ToCoordinates(), req.Needed)
	if err != nil {
		log.Printf("locality search failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.LocalitySearchResponse{Localities: make([]dto.LocalityResponse, 0, len(localities))}
	for _, l := range localities {
		res.Localities = append(res.Localities, dto.LocalityResponse{
			Name:    l.Name,
			Country: l.Country,
			Lat:     l.Point.Lat,
			Lng:     l.Point.Lon,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
