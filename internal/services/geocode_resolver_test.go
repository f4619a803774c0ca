package services

import (
	"context"
	"errors"
	"testing"

	"toll-route-service/internal/adapters/geocode"
	"toll-route-service/internal/domain"
)

func TestResolvePointStopsAtFirstUsableRadius(t *testing.T) {
	mock := &geocode.MockGeocoder{
		ReverseResults: []geocode.MockReverseResult{
			{RadiusMeters: 0, Address: domain.Address{CountryCode: "AUT", City: "Wien"}},
			{RadiusMeters: 100, Address: domain.Address{CountryCode: "AUT", PostalCode: "1010", City: "Wien"}},
			{RadiusMeters: 500, Address: domain.Address{CountryCode: "DEU", PostalCode: "80331"}},
		},
	}
	resolver := NewGeocodeResolver(mock)

	addr, err := resolver.ResolvePoint(context.Background(), domain.Coordinates{Lat: 48.2, Lon: 16.37})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if addr.CountryCode != "AT" || addr.PostalCode != "1010" {
		t.Fatalf("addr = %+v, want AT/1010", addr)
	}
	if mock.ReverseCalls != 2 {
		t.Fatalf("expected ladder to stop after 2 calls, made %d", mock.ReverseCalls)
	}
}

func TestResolvePointKeepsPartialResult(t *testing.T) {
	// Country code at every radius, never a postal code, no locality to fall
	// back on: the partial country must still come back.
	mock := &geocode.MockGeocoder{
		ReverseFn: func(point domain.Coordinates, radiusMeters int) (domain.Address, error) {
			return domain.Address{CountryCode: "SRB"}, nil
		},
	}
	resolver := NewGeocodeResolver(mock)

	addr, err := resolver.ResolvePoint(context.Background(), domain.Coordinates{Lat: 44.8, Lon: 20.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if addr.CountryCode != "RS" {
		t.Fatalf("country = %q, want normalized RS", addr.CountryCode)
	}
	if addr.PostalCode != "" {
		t.Fatalf("unexpected postal code %q", addr.PostalCode)
	}
	if mock.ReverseCalls != len(reverseRadiiMeters) {
		t.Fatalf("expected the whole ladder (%d calls), made %d", len(reverseRadiiMeters), mock.ReverseCalls)
	}
}

func TestResolvePointForwardFallback(t *testing.T) {
	mock := &geocode.MockGeocoder{
		ReverseFn: func(point domain.Coordinates, radiusMeters int) (domain.Address, error) {
			return domain.Address{CountryCode: "ROU", City: "Oradea"}, nil
		},
		ForwardResults: map[string]domain.Address{
			"Oradea": {CountryCode: "ROU", PostalCode: "410001", City: "Oradea"},
		},
	}
	resolver := NewGeocodeResolver(mock)

	addr, err := resolver.ResolvePoint(context.Background(), domain.Coordinates{Lat: 47.07, Lon: 21.92})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if addr.PostalCode != "410001" || addr.CountryCode != "RO" {
		t.Fatalf("forward fallback not applied: %+v", addr)
	}
	if mock.ForwardCalls != 1 {
		t.Fatalf("expected 1 forward call, made %d", mock.ForwardCalls)
	}
}

func TestResolvePointToleratesLookupErrors(t *testing.T) {
	calls := 0
	mock := &geocode.MockGeocoder{
		ReverseFn: func(point domain.Coordinates, radiusMeters int) (domain.Address, error) {
			calls++
			if radiusMeters < 1000 {
				return domain.Address{}, errors.New("upstream 502")
			}
			return domain.Address{CountryCode: "HRV", PostalCode: "10000", City: "Zagreb"}, nil
		},
	}
	resolver := NewGeocodeResolver(mock)

	addr, err := resolver.ResolvePoint(context.Background(), domain.Coordinates{Lat: 45.8, Lon: 15.97})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if addr.CountryCode != "HR" || addr.PostalCode != "10000" {
		t.Fatalf("addr = %+v, want HR/10000", addr)
	}
}

func TestResolveLabelNormalizesCountry(t *testing.T) {
	mock := &geocode.MockGeocoder{
		ForwardResults: map[string]domain.Address{
			"Timisoara": {CountryCode: "ROU", PostalCode: "300011", City: "Timisoara"},
		},
	}
	resolver := NewGeocodeResolver(mock)

	addr, err := resolver.ResolveLabel(context.Background(), "Timisoara")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if addr.CountryCode != "RO" {
		t.Fatalf("country = %q, want RO", addr.CountryCode)
	}
}
