package dto

type RankRequest struct {
	Routes  []RoutePayload `json:"routes"`
	Mode    string         `json:"mode"`
	Vehicle VehiclePayload `json:"vehicle"`
	// TollTotals carries per-route toll costs by route list index; routes
	// whose toll evaluation has not resolved yet are simply absent.
	TollTotals map[int]float64 `json:"toll_totals"`
}

type RankedRouteResponse struct {
	Index       int     `json:"index"`
	RouteID     string  `json:"route_id"`
	DerivedCost float64 `json:"derived_cost"`
}

type RankResponse struct {
	Mode  string                `json:"mode"`
	Order []RankedRouteResponse `json:"order"`
}
