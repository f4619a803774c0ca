package dto

import "toll-route-service/internal/domain"

type PlanRoutesRequest struct {
	Stops   []PointPayload     `json:"stops"`
	LegVias [][]ViaStopPayload `json:"leg_vias"`
	Vehicle VehiclePayload     `json:"vehicle"`
	Mode    string             `json:"mode"`
}

func (r PlanRoutesRequest) StopCoordinates() []domain.Coordinates {
	return pointsToCoordinates(r.Stops)
}

func (r PlanRoutesRequest) DomainLegVias() [][]domain.ViaStop {
	return legViasToDomain(r.LegVias)
}

// PlannedRouteResponse is one candidate route in ranked position. Toll is
// absent when the toll evaluation for the route failed.
type PlannedRouteResponse struct {
	Index           int               `json:"index"`
	RouteID         string            `json:"route_id"`
	LengthMeters    int               `json:"length_meters"`
	DurationSeconds int               `json:"duration_seconds"`
	DerivedCost     float64           `json:"derived_cost"`
	Toll            *TollCostResponse `json:"toll,omitempty"`
}

type PlanRoutesResponse struct {
	Mode   string                 `json:"mode"`
	Routes []PlannedRouteResponse `json:"routes"`
}
