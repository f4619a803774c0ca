package routing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"toll-route-service/internal/adapters/httpx"
	"toll-route-service/internal/domain"
	"toll-route-service/internal/platform/obs"
	"toll-route-service/internal/ports"
)

// HERERoutingProvider implements RouteProvider against the HERE Routing v8
// API. Route requests ask for per-section toll detail; summary requests ask
// for duration/length only, which is the provider's cheapest evaluation mode.
//
// The provider is safe for concurrent use.
type HERERoutingProvider struct {
	session *http.Client
	apiKey  string
	baseURL string
}

func NewHERERoutingProvider(apiKey string) (*HERERoutingProvider, error) {
	if apiKey == "" {
		return nil, errors.New("routing api key is empty")
	}

	return &HERERoutingProvider{
		session: &http.Client{Timeout: 15 * time.Second},
		apiKey:  apiKey,
		baseURL: "https://router.hereapi.com",
	}, nil
}

type routesResponse struct {
	Routes []struct {
		ID       string `json:"id"`
		Sections []struct {
			Summary struct {
				Duration int `json:"duration"`
				Length   int `json:"length"`
			} `json:"summary"`
			Tolls []struct {
				CountryCode string `json:"countryCode"`
				TollSystem  string `json:"tollSystem"`
				Fares       []struct {
					Name  string `json:"name"`
					Price struct {
						Value    float64 `json:"value"`
						Currency string  `json:"currency"`
					} `json:"price"`
					ReturnJourney bool `json:"returnJourney"`
				} `json:"fares"`
				TollCollectionLocations []struct {
					Name string `json:"name"`
				} `json:"tollCollectionLocations"`
			} `json:"tolls"`
			TollSystems []struct {
				TollSystem string `json:"tollSystem"`
			} `json:"tollSystems"`
		} `json:"sections"`
	} `json:"routes"`
}

// Routes returns alternative routes with per-section toll records.
func (h *HERERoutingProvider) Routes(ctx context.Context, req ports.RouteRequest) (_ []*domain.Route, err error) {
	defer obs.Time(ctx, "routing.Routes")(&err)

	decoded, err := h.fetch(ctx, req, true)
	if err != nil {
		return nil, err
	}
	if len(decoded.Routes) == 0 {
		return nil, errors.New("routing: provider returned no routes")
	}

	return mapRoutes(decoded), nil
}

// mapRoutes converts the decoded provider payload into domain routes.
// Routes without a provider identifier get a positional one.
func mapRoutes(decoded *routesResponse) []*domain.Route {
	out := make([]*domain.Route, 0, len(decoded.Routes))
	for i, raw := range decoded.Routes {
		route := &domain.Route{ID: raw.ID}
		if route.ID == "" {
			route.ID = fmt.Sprintf("route-%d", i)
		}

		for _, sec := range raw.Sections {
			section := domain.Section{
				LengthMeters:    sec.Summary.Length,
				DurationSeconds: sec.Summary.Duration,
			}
			for _, toll := range sec.Tolls {
				rec := domain.TollRecord{
					CountryCode:    toll.CountryCode,
					TollSystemName: toll.TollSystem,
				}
				for _, fare := range toll.Fares {
					rec.Fares = append(rec.Fares, domain.Fare{
						Name: fare.Name,
						Price: domain.Money{
							Value:    fare.Price.Value,
							Currency: fare.Price.Currency,
						},
						ReturnJourney: fare.ReturnJourney,
					})
				}
				for _, loc := range toll.TollCollectionLocations {
					rec.CollectionLocations = append(rec.CollectionLocations, domain.CollectionLocation{Name: loc.Name})
				}
				section.Tolls = append(section.Tolls, rec)
			}
			for _, ts := range sec.TollSystems {
				section.TollSystems = append(section.TollSystems, domain.TollSystemRecord{Name: ts.TollSystem})
			}
			route.Sections = append(route.Sections, section)
		}

		out = append(out, route)
	}

	return out
}

// Summary returns the duration/length of the single best route for the path.
func (h *HERERoutingProvider) Summary(ctx context.Context, req ports.RouteRequest) (_ ports.RouteSummary, err error) {
	defer obs.Time(ctx, "routing.Summary")(&err)

	decoded, err := h.fetch(ctx, req, false)
	if err != nil {
		return ports.RouteSummary{}, err
	}
	if len(decoded.Routes) == 0 {
		return ports.RouteSummary{}, errors.New("routing: provider returned no routes")
	}

	var summary ports.RouteSummary
	for _, sec := range decoded.Routes[0].Sections {
		summary.DurationSeconds += sec.Summary.Duration
		summary.LengthMeters += sec.Summary.Length
	}
	return summary, nil
}

func (h *HERERoutingProvider) fetch(ctx context.Context, req ports.RouteRequest, withTolls bool) (*routesResponse, error) {
	if len(req.Stops) < 2 {
		return nil, fmt.Errorf("routing: need at least 2 stops, got %d", len(req.Stops))
	}

	endpoint := h.baseURL + "/v8/routes"

	query := url.Values{}
	query.Set("transportMode", "truck")
	query.Set("origin", formatPoint(req.Stops[0]))
	query.Set("destination", formatPoint(req.Stops[len(req.Stops)-1]))

	// Intermediate mandatory stops and per-leg vias all travel as ordered
	// via parameters; the provider visits them in order.
	legVias := domain.SyncLegVias(req.LegVias, len(req.Stops))
	for leg := 0; leg < len(req.Stops)-1; leg++ {
		for _, v := range legVias[leg] {
			query.Add("via", formatPoint(v.Coordinates()))
		}
		if leg+1 < len(req.Stops)-1 {
			query.Add("via", formatPoint(req.Stops[leg+1]))
		}
	}

	if withTolls {
		query.Set("return", "summary,tolls")
		query.Set("alternatives", "3")
	} else {
		query.Set("return", "summary")
	}

	axles := req.Vehicle.AxleCount
	if axles <= 0 {
		axles = domain.DefaultAxleCount
	}
	query.Set("vehicle[axleCount]", strconv.Itoa(axles))
	if req.Vehicle.GrossWeightKg > 0 {
		query.Set("vehicle[grossWeight]", strconv.Itoa(req.Vehicle.GrossWeightKg))
	}
	query.Set("apiKey", h.apiKey)

	resp, err := httpx.DoWithRetry(ctx, h.session, func() (*http.Request, error) {
		r, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, fmt.Errorf("create routing request: %w", err)
		}
		r.URL.RawQuery = query.Encode()
		r.Header.Set("Accept", "application/json")
		return r, nil
	})
	if err != nil {
		return nil, fmt.Errorf("routing request failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded routesResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode routing response: %w", err)
	}

	return &decoded, nil
}

func formatPoint(c domain.Coordinates) string {
	return fmt.Sprintf("%.6f,%.6f", c.Lat, c.Lon)
}
