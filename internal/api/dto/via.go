package dto

import "toll-route-service/internal/domain"

type ViaSearchRequest struct {
	Click    PointPayload       `json:"click"`
	LegIndex int                `json:"leg_index"`
	Stops    []PointPayload     `json:"stops"`
	LegVias  [][]ViaStopPayload `json:"leg_vias"`
	Vehicle  VehiclePayload     `json:"vehicle"`
}

func (r ViaSearchRequest) StopCoordinates() []domain.Coordinates {
	return pointsToCoordinates(r.Stops)
}

func (r ViaSearchRequest) DomainLegVias() [][]domain.ViaStop {
	return legViasToDomain(r.LegVias)
}

type ViaSearchResponse struct {
	Via ViaStopPayload `json:"via"`
}

type LocalitySearchRequest struct {
	Center PointPayload `json:"center"`
	Needed int          `json:"needed"`
}

type LocalityResponse struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

type LocalitySearchResponse struct {
	Localities []LocalityResponse `json:"localities"`
}
