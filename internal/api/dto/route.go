package dto

import "toll-route-service/internal/domain"

// Wire representation of a provider route, as submitted by the surrounding
// application for cost evaluation and ranking.

type PricePayload struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
}

type FarePayload struct {
	Name          string       `json:"name"`
	Price         PricePayload `json:"price"`
	ReturnJourney bool         `json:"return_journey"`
}

type TollRecordPayload struct {
	CountryCode         string        `json:"country_code"`
	TollSystem          string        `json:"toll_system"`
	Fares               []FarePayload `json:"fares"`
	CollectionLocations []string      `json:"collection_locations"`
}

type SectionPayload struct {
	LengthMeters    int                 `json:"length_meters"`
	DurationSeconds int                 `json:"duration_seconds"`
	Tolls           []TollRecordPayload `json:"tolls"`
	TollSystems     []string            `json:"toll_systems"`
}

type RoutePayload struct {
	ID       string           `json:"id"`
	Sections []SectionPayload `json:"sections"`
}

// ToDomain converts the wire route into the immutable domain form.
func (p RoutePayload) ToDomain() *domain.Route {
	route := &domain.Route{ID: p.ID}
	for _, sec := range p.Sections {
		section := domain.Section{
			LengthMeters:    sec.LengthMeters,
			DurationSeconds: sec.DurationSeconds,
		}
		for _, toll := range sec.Tolls {
			rec := domain.TollRecord{
				CountryCode:    toll.CountryCode,
				TollSystemName: toll.TollSystem,
			}
			for _, fare := range toll.Fares {
				rec.Fares = append(rec.Fares, domain.Fare{
					Name:          fare.Name,
					Price:         domain.Money{Value: fare.Price.Value, Currency: fare.Price.Currency},
					ReturnJourney: fare.ReturnJourney,
				})
			}
			for _, name := range toll.CollectionLocations {
				rec.CollectionLocations = append(rec.CollectionLocations, domain.CollectionLocation{Name: name})
			}
			section.Tolls = append(section.Tolls, rec)
		}
		for _, name := range sec.TollSystems {
			section.TollSystems = append(section.TollSystems, domain.TollSystemRecord{Name: name})
		}
		route.Sections = append(route.Sections, section)
	}
	return route
}

type PointPayload struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (p PointPayload) ToCoordinates() domain.Coordinates {
	return domain.Coordinates{Lat: p.Lat, Lon: p.Lng}
}

func pointsToCoordinates(pts []PointPayload) []domain.Coordinates {
	out := make([]domain.Coordinates, 0, len(pts))
	for _, p := range pts {
		out = append(out, p.ToCoordinates())
	}
	return out
}

func legViasToDomain(legs [][]ViaStopPayload) [][]domain.ViaStop {
	out := make([][]domain.ViaStop, 0, len(legs))
	for _, leg := range legs {
		vias := make([]domain.ViaStop, 0, len(leg))
		for _, v := range leg {
			vias = append(vias, domain.ViaStop{ID: v.ID, Lat: v.Lat, Lng: v.Lng})
		}
		out = append(out, vias)
	}
	return out
}

type ViaStopPayload struct {
	ID  string  `json:"id"`
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type VehiclePayload struct {
	AxleCount       int     `json:"axle_count"`
	GrossWeightKg   int     `json:"gross_weight_kg"`
	EURPerKm        float64 `json:"eur_per_km"`
	PricePerDay     float64 `json:"price_per_day"`
	AllInclusive    bool    `json:"all_inclusive"`
	AllInclusiveEUR float64 `json:"all_inclusive_eur"`
}

func (p VehiclePayload) ToDomain() domain.VehicleParams {
	return domain.VehicleParams{
		AxleCount:       p.AxleCount,
		GrossWeightKg:   p.GrossWeightKg,
		EURPerKm:        p.EURPerKm,
		PricePerDay:     p.PricePerDay,
		AllInclusive:    p.AllInclusive,
		AllInclusiveEUR: p.AllInclusiveEUR,
	}
}
