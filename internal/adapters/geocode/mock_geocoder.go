package geocode

import (
	"context"
	"fmt"
	"sync"

	"toll-route-service/internal/domain"
)

// MockReverseResult scripts one reverse lookup outcome for a radius.
type MockReverseResult struct {
	RadiusMeters int
	Address      domain.Address
	Err          error
}

// MockGeocoder serves scripted geocode results in tests. Reverse results are
// keyed by radius; forward results by exact label.
type MockGeocoder struct {
	ReverseResults []MockReverseResult
	ForwardResults map[string]domain.Address

	// ReverseFn, when set, takes precedence over ReverseResults.
	ReverseFn func(point domain.Coordinates, radiusMeters int) (domain.Address, error)

	// mu guards the call counters; searches invoke the mock concurrently.
	mu           sync.Mutex
	ReverseCalls int
	ForwardCalls int
}

func (m *MockGeocoder) Reverse(ctx context.Context, point domain.Coordinates, radiusMeters int) (domain.Address, error) {
	m.mu.Lock()
	m.ReverseCalls++
	m.mu.Unlock()

	if m.ReverseFn != nil {
		return m.ReverseFn(point, radiusMeters)
	}
	for _, r := range m.ReverseResults {
		if r.RadiusMeters == radiusMeters {
			return r.Address, r.Err
		}
	}
	return domain.Address{}, nil
}

func (m *MockGeocoder) Forward(ctx context.Context, label string) (domain.Address, error) {
	m.mu.Lock()
	m.ForwardCalls++
	m.mu.Unlock()
	if addr, ok := m.ForwardResults[label]; ok {
		return addr, nil
	}
	return domain.Address{}, fmt.Errorf("mock geocoder: no result for label %q", label)
}
