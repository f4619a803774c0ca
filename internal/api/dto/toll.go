package dto

import "toll-route-service/internal/domain"

type TollCostRequest struct {
	Route     RoutePayload `json:"route"`
	AxleCount int          `json:"axle_count"`
}

type CostLineItemResponse struct {
	Name                string   `json:"name"`
	Country             string   `json:"country"`
	Cost                float64  `json:"cost"`
	Currency            string   `json:"currency"`
	CollectionLocations []string `json:"collection_locations,omitempty"`
	ContractID          string   `json:"contract_id,omitempty"`
	PopupText           string   `json:"popup_text,omitempty"`
}

type TollCostResponse struct {
	RouteID      string                 `json:"route_id"`
	TotalCost    float64                `json:"total_cost"`
	Currency     string                 `json:"currency"`
	Duration     string                 `json:"duration"`
	Items        []CostLineItemResponse `json:"items"`
	ContractHits []CostLineItemResponse `json:"contract_hits"`
}

// FromTollResult flattens a domain result onto the wire shape.
func FromTollResult(routeID string, r *domain.TollResult) TollCostResponse {
	out := TollCostResponse{
		RouteID:      routeID,
		TotalCost:    r.TotalCost,
		Currency:     "EUR",
		Duration:     r.Duration,
		Items:        make([]CostLineItemResponse, 0, len(r.Items)),
		ContractHits: make([]CostLineItemResponse, 0, len(r.ContractHits)),
	}
	for _, item := range r.Items {
		out.Items = append(out.Items, fromLineItem(item))
	}
	for _, item := range r.ContractHits {
		out.ContractHits = append(out.ContractHits, fromLineItem(item))
	}
	return out
}

func fromLineItem(item domain.CostLineItem) CostLineItemResponse {
	return CostLineItemResponse{
		Name:                item.Name,
		Country:             item.Country,
		Cost:                item.Cost,
		Currency:            item.Currency,
		CollectionLocations: item.CollectionLocations,
		ContractID:          item.ContractID,
		PopupText:           item.PopupText,
	}
}
