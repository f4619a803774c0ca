package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"toll-route-service/internal/adapters/httpx"
	"toll-route-service/internal/domain"
	"toll-route-service/internal/platform/obs"
)

// HEREGeocoder implements the Geocoder port against the HERE geocoding and
// reverse-geocoding endpoints. The two operations live on separate hosts.
// "Not found" is an empty Address, not an error.
type HEREGeocoder struct {
	session     *http.Client
	apiKey      string
	reverseBase string
	forwardBase string
}

func NewHEREGeocoder(apiKey string) (*HEREGeocoder, error) {
	if apiKey == "" {
		return nil, errors.New("geocoder api key is empty")
	}

	return &HEREGeocoder{
		session:     &http.Client{Timeout: 10 * time.Second},
		apiKey:      apiKey,
		reverseBase: "https://revgeocode.search.hereapi.com",
		forwardBase: "https://geocode.search.hereapi.com",
	}, nil
}

type geocodeResponse struct {
	Items []struct {
		Address struct {
			CountryCode string `json:"countryCode"`
			PostalCode  string `json:"postalCode"`
			City        string `json:"city"`
		} `json:"address"`
	} `json:"items"`
}

// Reverse resolves a coordinate to an address, searching within radiusMeters
// around the point when radiusMeters > 0.
func (g *HEREGeocoder) Reverse(ctx context.Context, point domain.Coordinates, radiusMeters int) (_ domain.Address, err error) {
	defer obs.Time(ctx, "geocode.Reverse")(&err)

	query := url.Values{}
	if radiusMeters > 0 {
		query.Set("in", fmt.Sprintf("circle:%.6f,%.6f;r=%d", point.Lat, point.Lon, radiusMeters))
	} else {
		query.Set("at", fmt.Sprintf("%.6f,%.6f", point.Lat, point.Lon))
	}
	query.Set("limit", "1")

	return g.lookup(ctx, g.reverseBase+"/v1/revgeocode", query)
}

// Forward resolves a free-text label to an address.
func (g *HEREGeocoder) Forward(ctx context.Context, label string) (_ domain.Address, err error) {
	defer obs.Time(ctx, "geocode.Forward")(&err)

	if label == "" {
		return domain.Address{}, errors.New("forward geocode: label must be non-empty")
	}

	query := url.Values{}
	query.Set("q", label)
	query.Set("limit", "1")

	return g.lookup(ctx, g.forwardBase+"/v1/geocode", query)
}

func (g *HEREGeocoder) lookup(ctx context.Context, endpoint string, query url.Values) (domain.Address, error) {
	query.Set("apiKey", g.apiKey)

	resp, err := httpx.DoWithRetry(ctx, g.session, func() (*http.Request, error) {
		r, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("create geocode request: %w", err)
		}
		r.URL.RawQuery = query.Encode()
		r.Header.Set("Accept", "application/json")
		return r, nil
	})
	if err != nil {
		return domain.Address{}, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Address{}, fmt.Errorf("decode geocode response: %w", err)
	}

	if len(decoded.Items) == 0 {
		return domain.Address{}, nil
	}

	addr := decoded.Items[0].Address
	return domain.Address{
		CountryCode: addr.CountryCode,
		PostalCode:  addr.PostalCode,
		City:        addr.City,
	}, nil
}
