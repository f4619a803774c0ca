package services

import (
	"log"
	"strings"

	"toll-route-service/internal/config"
	"toll-route-service/internal/domain"
)

// VignetteTable is the static flat-rate price table for vignette countries,
// keyed by (country, axle count, duration bucket). Populated once from the
// pricing config and read-only afterwards.
type VignetteTable struct {
	fallbackEUR float64
	rows        map[string]map[int]config.VignetteRate
}

func NewVignetteTable(cfg *config.PricingConfig) *VignetteTable {
	t := &VignetteTable{
		fallbackEUR: cfg.FallbackVignetteEUR,
		rows:        make(map[string]map[int]config.VignetteRate),
	}
	for _, row := range cfg.Vignettes {
		country := strings.ToUpper(strings.TrimSpace(row.Country))
		if country == "" {
			continue
		}
		if t.rows[country] == nil {
			t.rows[country] = make(map[int]config.VignetteRate)
		}
		t.rows[country][row.Axles] = row
	}
	return t
}

// IsVignetteCountry reports whether the country (ISO alpha-3) charges a flat
// time-based fee instead of per-use fares.
func (t *VignetteTable) IsVignetteCountry(country string) bool {
	_, ok := t.rows[strings.ToUpper(country)]
	return ok
}

// Price returns the single vignette charge for a route of the given duration.
// Missing axle rows fall back to the default axle row; a missing table entry
// falls back to the configured flat constant.
func (t *VignetteTable) Price(country string, axleCount, durationSeconds int) float64 {
	axleRows, ok := t.rows[strings.ToUpper(country)]
	if !ok {
		log.Printf("no vignette table for country=%s, using fallback %.2f", country, t.fallbackEUR)
		return t.fallbackEUR
	}

	row, ok := axleRows[axleCount]
	if !ok {
		row, ok = axleRows[domain.DefaultAxleCount]
	}
	if !ok {
		log.Printf("no vignette axle row for country=%s axles=%d, using fallback %.2f", country, axleCount, t.fallbackEUR)
		return t.fallbackEUR
	}

	days := ceilDays(durationSeconds)
	switch {
	case days <= 1:
		return row.Day
	case days <= 10:
		return row.TenDays
	case days <= 30:
		return row.Month
	default:
		return row.Year
	}
}

// ceilDays rounds a duration up to whole days; any partial day counts fully.
func ceilDays(seconds int) int {
	if seconds <= 0 {
		return 0
	}
	return (seconds + 86399) / 86400
}
