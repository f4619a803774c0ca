package geocode

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"toll-route-service/internal/domain"
)

func geocodeStub(t *testing.T, wantPath string, hits *int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != wantPath {
			t.Errorf("request path = %q, want %q", r.URL.Path, wantPath)
		}
		*hits++
		fmt.Fprint(w, `{"items":[{"address":{"countryCode":"AUT","postalCode":"1010","city":"Wien"}}]}`)
	}))
}

func TestGeocoderUsesPerOperationHosts(t *testing.T) {
	var reverseHits, forwardHits int

	reverseSrv := geocodeStub(t, "/v1/revgeocode", &reverseHits)
	defer reverseSrv.Close()
	forwardSrv := geocodeStub(t, "/v1/geocode", &forwardHits)
	defer forwardSrv.Close()

	g := &HEREGeocoder{
		session:     reverseSrv.Client(),
		apiKey:      "test-key",
		reverseBase: reverseSrv.URL,
		forwardBase: forwardSrv.URL,
	}

	addr, err := g.Reverse(context.Background(), domain.Coordinates{Lat: 48.2082, Lon: 16.3738}, 100)
	if err != nil {
		t.Fatalf("Reverse: %v", err)
	}
	if addr.PostalCode != "1010" || addr.City != "Wien" {
		t.Fatalf("reverse addr = %+v", addr)
	}

	if _, err := g.Forward(context.Background(), "Wien"); err != nil {
		t.Fatalf("Forward: %v", err)
	}

	if reverseHits != 1 || forwardHits != 1 {
		t.Fatalf("reverse host hit %d times, forward host hit %d times, want 1 each", reverseHits, forwardHits)
	}
}
