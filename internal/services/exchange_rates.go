package services

import (
	"context"
	"log"
	"strings"
	"sync"

	"toll-route-service/internal/domain"
	"toll-route-service/internal/ports"
)

// ExchangeRates is a session-lifetime cache of currency -> EUR conversion
// rates. The table is fetched lazily on first use and never invalidated; a
// failed fetch is retried on the next conversion. Safe for concurrent use.
type ExchangeRates struct {
	source ports.RateSource

	mu    sync.Mutex
	rates map[string]float64
}

func NewExchangeRates(source ports.RateSource) *ExchangeRates {
	return &ExchangeRates{source: source}
}

// ToEUR converts an amount to EUR. Conversion is best-effort: when the table
// cannot be fetched or the currency is missing from it, the raw amount is
// returned unconverted and the condition is logged.
func (e *ExchangeRates) ToEUR(ctx context.Context, m domain.Money) float64 {
	currency := strings.ToUpper(strings.TrimSpace(m.Currency))
	if currency == "" || currency == "EUR" {
		return m.Value
	}

	rates, err := e.table(ctx)
	if err != nil {
		log.Printf("exchange rates unavailable, keeping raw amount currency=%s: %v", currency, err)
		return m.Value
	}

	rate, ok := rates[currency]
	if !ok || rate <= 0 {
		log.Printf("no exchange rate for currency=%s, keeping raw amount", currency)
		return m.Value
	}

	// Rates are quoted as units of currency per 1 EUR.
	return m.Value / rate
}

func (e *ExchangeRates) table(ctx context.Context) (map[string]float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.rates != nil {
		return e.rates, nil
	}

	callCtx, cancel := context.WithTimeout(ctx, outboundCallTimeout)
	defer cancel()

	rates, err := e.source.Rates(callCtx)
	if err != nil {
		return nil, err
	}

	e.rates = make(map[string]float64, len(rates))
	for cur, rate := range rates {
		e.rates[strings.ToUpper(cur)] = rate
	}
	return e.rates, nil
}
