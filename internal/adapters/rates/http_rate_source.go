package rates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"toll-route-service/internal/adapters/httpx"
	"toll-route-service/internal/platform/obs"
)

// HTTPRateSource fetches the EUR-based currency table from an
// exchangerate-API-compatible endpoint (fixed base, full table per call).
type HTTPRateSource struct {
	session *http.Client
	baseURL string
}

func NewHTTPRateSource(baseURL string) *HTTPRateSource {
	if baseURL == "" {
		baseURL = "https://api.frankfurter.dev/v1/latest?base=EUR"
	}
	return &HTTPRateSource{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
	}
}

type ratesResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// Rates returns the full currency -> rate table relative to EUR.
func (s *HTTPRateSource) Rates(ctx context.Context) (_ map[string]float64, err error) {
	defer obs.Time(ctx, "rates.Fetch")(&err)

	resp, err := httpx.DoWithRetry(ctx, s.session, func() (*http.Request, error) {
		r, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL, nil)
		if err != nil {
			return nil, fmt.Errorf("create rates request: %w", err)
		}
		r.Header.Set("Accept", "application/json")
		return r, nil
	})
	if err != nil {
		return nil, fmt.Errorf("rates request failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode rates response: %w", err)
	}

	if len(decoded.Rates) == 0 {
		return nil, errors.New("rates response contains no rates")
	}

	return decoded.Rates, nil
}
