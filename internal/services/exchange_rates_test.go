package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"toll-route-service/internal/domain"
)

// countingRateSource counts fetches and can be switched from failing to
// serving mid-test.
type countingRateSource struct {
	calls int
	table map[string]float64
	err   error
}

func (s *countingRateSource) Rates(ctx context.Context) (map[string]float64, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.table, nil
}

func TestToEURDividesByQuotedRate(t *testing.T) {
	src := &countingRateSource{table: map[string]float64{"RON": 5, "HUF": 400}}
	rates := NewExchangeRates(src)

	got := rates.ToEUR(context.Background(), domain.Money{Value: 50, Currency: "RON"})
	if got != 10 {
		t.Fatalf("50 RON = %v EUR, want 10", got)
	}
	got = rates.ToEUR(context.Background(), domain.Money{Value: 4000, Currency: "huf"})
	if got != 10 {
		t.Fatalf("4000 HUF = %v EUR, want 10", got)
	}
}

func TestToEURFetchesTableOnce(t *testing.T) {
	src := &countingRateSource{table: map[string]float64{"CHF": 0.95}}
	rates := NewExchangeRates(src)

	for i := 0; i < 5; i++ {
		rates.ToEUR(context.Background(), domain.Money{Value: 19, Currency: "CHF"})
	}
	if src.calls != 1 {
		t.Fatalf("rate source fetched %d times, want 1", src.calls)
	}
}

func TestToEURPassesThroughEURAndEmptyCurrency(t *testing.T) {
	src := &countingRateSource{table: map[string]float64{}}
	rates := NewExchangeRates(src)

	if got := rates.ToEUR(context.Background(), domain.Money{Value: 42, Currency: "EUR"}); got != 42 {
		t.Fatalf("EUR amount changed: %v", got)
	}
	if got := rates.ToEUR(context.Background(), domain.Money{Value: 42, Currency: ""}); got != 42 {
		t.Fatalf("currencyless amount changed: %v", got)
	}
	if src.calls != 0 {
		t.Fatalf("rate source fetched %d times for EUR amounts, want 0", src.calls)
	}
}

func TestToEURMissingCurrencyKeepsRawAmount(t *testing.T) {
	src := &countingRateSource{table: map[string]float64{"RON": 5}}
	rates := NewExchangeRates(src)

	got := rates.ToEUR(context.Background(), domain.Money{Value: 123.4, Currency: "XYZ"})
	if math.Abs(got-123.4) > 1e-9 {
		t.Fatalf("unknown currency amount = %v, want raw 123.4", got)
	}
}

func TestToEURRetriesFetchAfterFailure(t *testing.T) {
	src := &countingRateSource{err: errors.New("rates endpoint down")}
	rates := NewExchangeRates(src)

	// Unavailable table keeps the raw amount.
	if got := rates.ToEUR(context.Background(), domain.Money{Value: 50, Currency: "RON"}); got != 50 {
		t.Fatalf("amount during outage = %v, want raw 50", got)
	}

	// Source recovers; next conversion retries the fetch.
	src.err = nil
	src.table = map[string]float64{"RON": 5}
	if got := rates.ToEUR(context.Background(), domain.Money{Value: 50, Currency: "RON"}); got != 10 {
		t.Fatalf("amount after recovery = %v, want 10", got)
	}
	if src.calls != 2 {
		t.Fatalf("rate source fetched %d times, want 2", src.calls)
	}
}
