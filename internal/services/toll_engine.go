package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"toll-route-service/internal/domain"
)

// TollEngine turns a route's raw toll records into one normalized EUR total
// with an itemized breakdown. All collaborating caches (exchange rates,
// vignette table, contract rules) are injected and valid for one session.
//
// Computation is idempotent per route identifier: the first call computes and
// stores the result, later calls for the same identifier return it untouched.
type TollEngine struct {
	rates     *ExchangeRates
	vignettes *VignetteTable
	contracts []ContractRule

	mu      sync.Mutex
	results map[string]*domain.TollResult
}

func NewTollEngine(rates *ExchangeRates, vignettes *VignetteTable, contracts []ContractRule) *TollEngine {
	return &TollEngine{
		rates:     rates,
		vignettes: vignettes,
		contracts: contracts,
		results:   make(map[string]*domain.TollResult),
	}
}

// lineAccum tracks one breakdown entry while records are being merged.
type lineAccum struct {
	item        domain.CostLineItem
	synthesized bool
}

// ComputeTollResult evaluates the toll cost of one route. A single bad toll
// record never aborts the computation: it is logged and the remaining records
// still produce a (possibly incomplete) result.
func (e *TollEngine) ComputeTollResult(ctx context.Context, route *domain.Route, axleCount int) (*domain.TollResult, error) {
	if route == nil {
		return nil, errors.New("compute toll result: route must be non-nil")
	}
	if axleCount <= 0 {
		axleCount = domain.DefaultAxleCount
	}

	if route.ID != "" {
		e.mu.Lock()
		if cached, ok := e.results[route.ID]; ok {
			e.mu.Unlock()
			return cached, nil
		}
		e.mu.Unlock()
	}

	durationSeconds := route.TotalDurationSeconds()

	byKey := make(map[string]*lineAccum)
	order := make([]string, 0, 8)
	vignetteCharged := make(map[string]struct{})

	for si, section := range route.Sections {
		for ri, rec := range section.Tolls {
			if err := e.addRecord(ctx, rec, axleCount, durationSeconds, vignetteCharged, byKey, &order); err != nil {
				log.Printf(
					"toll record skipped route=%s section=%d record=%d country=%s: %v",
					route.ID, si, ri, rec.CountryCode, err,
				)
			}
		}
	}

	result := &domain.TollResult{
		Items:    make([]domain.CostLineItem, 0, len(order)),
		Duration: domain.FormatDuration(durationSeconds),
	}
	for _, key := range order {
		item := byKey[key].item
		result.TotalCost += item.Cost
		result.Items = append(result.Items, item)
		if item.ContractID != "" {
			result.ContractHits = append(result.ContractHits, item)
		}
	}

	if route.ID != "" {
		e.mu.Lock()
		e.results[route.ID] = result
		e.mu.Unlock()
	}

	return result, nil
}

// addRecord folds one raw toll record into the accumulating breakdown.
func (e *TollEngine) addRecord(
	ctx context.Context,
	rec domain.TollRecord,
	axleCount int,
	durationSeconds int,
	vignetteCharged map[string]struct{},
	byKey map[string]*lineAccum,
	order *[]string,
) error {
	country := strings.ToUpper(strings.TrimSpace(rec.CountryCode))
	if country == "" {
		return errors.New("toll record has no country code")
	}

	// Flat-rate countries: one charge per route, no matter how many sections
	// or fare rows mention the country.
	if e.vignettes.IsVignetteCountry(country) {
		if _, done := vignetteCharged[country]; done {
			return nil
		}
		vignetteCharged[country] = struct{}{}

		name := rec.TollSystemName
		if name == "" {
			name = country + " vignette"
		}
		item := domain.CostLineItem{
			Name:                name,
			Country:             country,
			Cost:                e.vignettes.Price(country, axleCount, durationSeconds),
			Currency:            "EUR",
			CollectionLocations: locationNames(rec),
			PopupText:           "flat-rate vignette, charged once per route",
		}
		e.finalize(item, rec, false, byKey, order)
		return nil
	}

	// Distance/price-bearing countries: take the provider's fares. A record
	// with no fares still gets a representative zero-priced line item.
	fares := rec.Fares
	synthesized := false
	if len(fares) == 0 {
		name := rec.TollSystemName
		if name == "" {
			name = country
		}
		fares = []domain.Fare{{Name: name, Price: domain.Money{Value: 0, Currency: "EUR"}}}
		synthesized = true
	}

	for _, fare := range fares {
		if fare.ReturnJourney {
			// Belongs to the reverse leg of a round trip.
			continue
		}

		cost := e.rates.ToEUR(ctx, fare.Price)
		if cost < 0 {
			cost = 0
		}

		item := domain.CostLineItem{
			Name:                fare.Name,
			Country:             country,
			Cost:                cost,
			Currency:            "EUR",
			CollectionLocations: locationNames(rec),
		}
		e.finalize(item, rec, synthesized, byKey, order)
	}

	return nil
}

// finalize applies contract overrides and merges the item into the breakdown
// under its de-duplication key.
func (e *TollEngine) finalize(
	item domain.CostLineItem,
	rec domain.TollRecord,
	synthesized bool,
	byKey map[string]*lineAccum,
	order *[]string,
) {
	mc := ContractMatchContext{
		Country: item.Country,
		Texts:   append([]string{item.Name, rec.TollSystemName}, item.CollectionLocations...),
	}
	if rule, ok := FirstContractMatch(e.contracts, mc); ok {
		item.ContractID = rule.ID
		item.Cost = rule.PriceEUR
		item.PopupText = rule.Note
	}

	key := item.Key()
	acc, ok := byKey[key]
	if !ok {
		byKey[key] = &lineAccum{item: item, synthesized: synthesized}
		*order = append(*order, key)
		return
	}

	// Contract pricing is charged once per route regardless of how many raw
	// records matched the rule.
	if acc.item.ContractID != "" {
		return
	}

	if synthesized && acc.synthesized {
		// A synthesized item stands in for unknown structured data; summing
		// duplicates would inflate it, so keep the larger estimate.
		if item.Cost > acc.item.Cost {
			acc.item.Cost = item.Cost
		}
	} else {
		// Distinct booths of the same fare on one route.
		acc.item.Cost += item.Cost
		acc.synthesized = false
	}
	acc.item.CollectionLocations = mergeLocations(acc.item.CollectionLocations, item.CollectionLocations)
}

func locationNames(rec domain.TollRecord) []string {
	if len(rec.CollectionLocations) == 0 {
		return nil
	}
	out := make([]string, 0, len(rec.CollectionLocations))
	for _, loc := range rec.CollectionLocations {
		if loc.Name != "" {
			out = append(out, loc.Name)
		}
	}
	return out
}

func mergeLocations(existing, extra []string) []string {
	seen := make(map[string]struct{}, len(existing))
	for _, l := range existing {
		seen[l] = struct{}{}
	}
	for _, l := range extra {
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		existing = append(existing, l)
	}
	return existing
}
