package services

import (
	"context"
	"fmt"
	"testing"

	"toll-route-service/internal/adapters/geocode"
	"toll-route-service/internal/domain"
)

func TestNearbyLocalitiesStopsEarlyWithOvershoot(t *testing.T) {
	// Every sample resolves to its own locality, so the search should stop
	// as soon as 3x the needed count is collected.
	mock := &geocode.MockGeocoder{
		ReverseFn: func(point domain.Coordinates, radiusMeters int) (domain.Address, error) {
			return domain.Address{
				CountryCode: "ROU",
				PostalCode:  "400001",
				City:        fmt.Sprintf("Sat %.4f/%.4f", point.Lat, point.Lon),
			}, nil
		},
	}
	search := NewLocalitySearch(NewGeocodeResolver(mock))

	out, err := search.NearbyLocalities(context.Background(), domain.Coordinates{Lat: 46.77, Lon: 23.6}, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out) != 6 {
		t.Fatalf("expected 3x2 localities, got %d", len(out))
	}
	// Two batches of 4 samples, one usable reverse call per sample.
	if mock.ReverseCalls != 8 {
		t.Fatalf("expected early stop after 8 reverse calls, made %d", mock.ReverseCalls)
	}
	for _, l := range out {
		if l.Country != "RO" {
			t.Fatalf("country not normalized: %+v", l)
		}
	}
}

func TestNearbyLocalitiesDeduplicates(t *testing.T) {
	mock := &geocode.MockGeocoder{
		ReverseFn: func(point domain.Coordinates, radiusMeters int) (domain.Address, error) {
			return domain.Address{CountryCode: "HUN", PostalCode: "9021", City: "Győr"}, nil
		},
	}
	search := NewLocalitySearch(NewGeocodeResolver(mock))

	out, err := search.NearbyLocalities(context.Background(), domain.Coordinates{Lat: 47.68, Lon: 17.63}, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out) != 1 {
		t.Fatalf("expected a single deduplicated locality, got %d", len(out))
	}
	if out[0].Name != "Győr" || out[0].Country != "HU" {
		t.Fatalf("unexpected locality: %+v", out[0])
	}
}

func TestNearbyLocalitiesSkipsUnresolvedSamples(t *testing.T) {
	center := domain.Coordinates{Lat: 48.15, Lon: 17.1}

	// Samples north of the center never resolve at any radius; the sweep
	// must skip them and still fill the list from the remaining samples.
	mock := &geocode.MockGeocoder{
		ReverseFn: func(point domain.Coordinates, radiusMeters int) (domain.Address, error) {
			if point.Lat > center.Lat+1e-9 {
				return domain.Address{}, nil
			}
			return domain.Address{
				CountryCode: "SVK",
				PostalCode:  "81101",
				City:        fmt.Sprintf("Obec %.4f/%.4f", point.Lat, point.Lon),
			}, nil
		},
	}
	search := NewLocalitySearch(NewGeocodeResolver(mock))

	out, err := search.NearbyLocalities(context.Background(), center, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 localities, got %d", len(out))
	}
	for _, l := range out {
		if l.Point.Lat > center.Lat+1e-9 {
			t.Fatalf("unresolvable sample leaked into results: %+v", l)
		}
	}
}

func TestNearbyLocalitiesZeroNeeded(t *testing.T) {
	search := NewLocalitySearch(NewGeocodeResolver(&geocode.MockGeocoder{}))

	out, err := search.NearbyLocalities(context.Background(), domain.Coordinates{}, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected no localities, got %d", len(out))
	}
}
