package api

import (
	"net/http"

	"toll-route-service/internal/api/handlers"
	"toll-route-service/internal/services"
)

// NewRouter wires HTTP handlers with their service dependencies and returns
// an http.Handler. This is the API composition root; handlers stay unaware
// of concrete adapters.
func NewRouter(
	planner *services.RoutePlanner,
	engine *services.TollEngine,
	viaSearch *services.ViaSearch,
	localitySearch *services.LocalitySearch,
) http.Handler {
	mux := http.NewServeMux()

	routesHandler := &handlers.RoutesHandler{Planner: planner}
	tollHandler := &handlers.TollHandler{Engine: engine}
	viaHandler := &handlers.ViaHandler{Search: viaSearch}
	localityHandler := &handlers.LocalityHandler{Search: localitySearch}
	rankHandler := &handlers.RankHandler{}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/routes", routesHandler.Plan)
	mux.HandleFunc("/toll-costs", tollHandler.Compute)
	mux.HandleFunc("/via-search", viaHandler.PickBestVia)
	mux.HandleFunc("/localities", localityHandler.Nearby)
	mux.HandleFunc("/rank", rankHandler.Rank)

	return loggingMiddleware(mux)
}
