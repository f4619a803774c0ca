package domain

import "fmt"

// CostLineItem is one finalized entry in a route's toll breakdown.
// Cost is always EUR post-conversion.
type CostLineItem struct {
	Name                string
	Country             string
	Cost                float64
	Currency            string
	CollectionLocations []string
	ContractID          string
	PopupText           string
}

// Key dedupes line items within one route computation. Items matched by a
// contract rule collapse on the contract identifier, everything else on the
// fare name.
func (li CostLineItem) Key() string {
	if li.ContractID != "" {
		return li.Country + "|" + li.ContractID
	}
	return li.Country + "|" + li.Name
}

// TollResult is the finalized cost picture for a single route evaluation.
// It is created fresh per evaluation and never merged across routes.
type TollResult struct {
	TotalCost    float64
	Items        []CostLineItem
	Duration     string
	ContractHits []CostLineItem
}

// FormatDuration renders seconds as a compact "1 d 2 h 30 min" string.
// Zero components are omitted; a zero duration renders as "0 min".
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	days := seconds / 86400
	hours := (seconds % 86400) / 3600
	minutes := (seconds % 3600) / 60

	out := ""
	if days > 0 {
		out += fmt.Sprintf("%d d ", days)
	}
	if hours > 0 {
		out += fmt.Sprintf("%d h ", hours)
	}
	if minutes > 0 || out == "" {
		out += fmt.Sprintf("%d min", minutes)
		return out
	}
	return out[:len(out)-1]
}
