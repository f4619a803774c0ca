package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Get returns the environment variable value or the fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// PricingConfig holds the operator-maintained pricing data: the static
// vignette price table, the negotiated contract overrides, and the fallback
// constants used when a lookup misses. Loaded once at startup and treated as
// valid for the lifetime of the session.
type PricingConfig struct {
	// Charged when a vignette country has no table row at all.
	FallbackVignetteEUR float64 `yaml:"fallback_vignette_eur"`

	Vignettes []VignetteRate       `yaml:"vignettes"`
	Contracts []ContractRuleConfig `yaml:"contracts"`
}

// VignetteRate is one row of the flat-rate price table, keyed by country
// (ISO alpha-3) and axle count, with one price per duration bucket.
type VignetteRate struct {
	Country string  `yaml:"country"`
	Axles   int     `yaml:"axles"`
	Day     float64 `yaml:"day"`
	TenDays float64 `yaml:"ten_days"`
	Month   float64 `yaml:"month"`
	Year    float64 `yaml:"year"`
}

// ContractRuleConfig is one fixed-price contract override. Match terms are
// compared against normalized fare/toll-system/collection-location text;
// Countries is an ISO alpha-3 allow-list.
type ContractRuleConfig struct {
	ID        string   `yaml:"id"`
	Match     []string `yaml:"match"`
	Countries []string `yaml:"countries"`
	PriceEUR  float64  `yaml:"price_eur"`
	Note      string   `yaml:"note"`
}

// LoadPricing reads a pricing config file. An empty path yields the built-in
// defaults.
func LoadPricing(path string) (*PricingConfig, error) {
	if path == "" {
		return DefaultPricing(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load pricing config: read %q: %w", path, err)
	}

	var cfg PricingConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("load pricing config: parse %q: %w", path, err)
	}

	if cfg.FallbackVignetteEUR == 0 {
		cfg.FallbackVignetteEUR = DefaultPricing().FallbackVignetteEUR
	}
	if len(cfg.Vignettes) == 0 {
		cfg.Vignettes = DefaultPricing().Vignettes
	}

	return &cfg, nil
}

// DefaultPricing returns the built-in vignette table. Rates are the published
// heavy-vehicle tariffs for the flat-rate jurisdictions the provider reports.
func DefaultPricing() *PricingConfig {
	return &PricingConfig{
		FallbackVignetteEUR: 15,
		Vignettes: []VignetteRate{
			{Country: "ROU", Axles: 2, Day: 4, TenDays: 16, Month: 32, Year: 320},
			{Country: "ROU", Axles: 3, Day: 7, TenDays: 28, Month: 56, Year: 560},
			{Country: "ROU", Axles: 4, Day: 9, TenDays: 36, Month: 72, Year: 720},
			{Country: "ROU", Axles: 5, Day: 11, TenDays: 55, Month: 110, Year: 1210},
			{Country: "BGR", Axles: 2, Day: 9, TenDays: 45, Month: 87, Year: 875},
			{Country: "BGR", Axles: 5, Day: 12, TenDays: 60, Month: 117, Year: 1172},
			{Country: "CHE", Axles: 5, Day: 3.3, TenDays: 33, Month: 58, Year: 650},
			{Country: "MDA", Axles: 5, Day: 5, TenDays: 25, Month: 50, Year: 500},
		},
	}
}
