package routing

import (
	"encoding/json"
	"testing"
)

const sampleRoutesPayload = `{
	"routes": [
		{
			"id": "rt-abc",
			"sections": [
				{
					"summary": {"duration": 5400, "length": 210000},
					"tolls": [
						{
							"countryCode": "AUT",
							"tollSystem": "ASFINAG",
							"fares": [
								{
									"name": "A1 Westautobahn",
									"price": {"value": 12.5, "currency": "EUR"},
									"returnJourney": false
								},
								{
									"name": "A1 Westautobahn retour",
									"price": {"value": 12.5, "currency": "EUR"},
									"returnJourney": true
								}
							],
							"tollCollectionLocations": [
								{"name": "Mautstelle St. Poelten"}
							]
						}
					],
					"tollSystems": [
						{"tollSystem": "ASFINAG"}
					]
				},
				{
					"summary": {"duration": 1800, "length": 60000},
					"tolls": [
						{"countryCode": "HUN", "tollSystem": "HU-GO"}
					]
				}
			]
		},
		{
			"sections": [
				{"summary": {"duration": 7200, "length": 250000}}
			]
		}
	]
}`

func TestMapRoutesDecodesTollPayload(t *testing.T) {
	var decoded routesResponse
	if err := json.Unmarshal([]byte(sampleRoutesPayload), &decoded); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}

	routes := mapRoutes(&decoded)
	if len(routes) != 2 {
		t.Fatalf("expected 2 routes, got %d", len(routes))
	}

	first := routes[0]
	if first.ID != "rt-abc" {
		t.Fatalf("route id = %q, want rt-abc", first.ID)
	}
	if got := first.TotalDurationSeconds(); got != 7200 {
		t.Fatalf("total duration = %d, want 7200", got)
	}
	if got := first.TotalLengthMeters(); got != 270000 {
		t.Fatalf("total length = %d, want 270000", got)
	}

	if len(first.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(first.Sections))
	}
	rec := first.Sections[0].Tolls[0]
	if rec.CountryCode != "AUT" || rec.TollSystemName != "ASFINAG" {
		t.Fatalf("record = %+v, want AUT/ASFINAG", rec)
	}
	if len(rec.Fares) != 2 {
		t.Fatalf("expected both fares mapped, got %d", len(rec.Fares))
	}
	if rec.Fares[0].ReturnJourney || !rec.Fares[1].ReturnJourney {
		t.Fatalf("returnJourney flags lost: %+v", rec.Fares)
	}
	if rec.Fares[0].Price.Value != 12.5 || rec.Fares[0].Price.Currency != "EUR" {
		t.Fatalf("fare price = %+v, want 12.50 EUR", rec.Fares[0].Price)
	}
	if len(rec.CollectionLocations) != 1 || rec.CollectionLocations[0].Name != "Mautstelle St. Poelten" {
		t.Fatalf("collection locations = %+v", rec.CollectionLocations)
	}
	if len(first.Sections[0].TollSystems) != 1 || first.Sections[0].TollSystems[0].Name != "ASFINAG" {
		t.Fatalf("toll systems = %+v", first.Sections[0].TollSystems)
	}

	// A fareless record survives mapping; the engine decides what it costs.
	hun := first.Sections[1].Tolls[0]
	if hun.CountryCode != "HUN" || len(hun.Fares) != 0 {
		t.Fatalf("fareless record mangled: %+v", hun)
	}

	// A route without a provider id gets a positional one.
	if routes[1].ID != "route-1" {
		t.Fatalf("fallback id = %q, want route-1", routes[1].ID)
	}
}
