package services

import (
	"testing"

	"toll-route-service/internal/config"
)

func testVignetteTable() *VignetteTable {
	return NewVignetteTable(&config.PricingConfig{
		FallbackVignetteEUR: 15,
		Vignettes: []config.VignetteRate{
			{Country: "ROU", Axles: 5, Day: 11, TenDays: 28, Month: 55, Year: 210},
			{Country: "ROU", Axles: 2, Day: 4, TenDays: 9, Month: 18, Year: 96},
			{Country: "CHE", Axles: 5, Day: 42, TenDays: 42, Month: 42, Year: 42},
		},
	})
}

func TestIsVignetteCountry(t *testing.T) {
	table := testVignetteTable()

	if !table.IsVignetteCountry("ROU") {
		t.Fatal("ROU should be a vignette country")
	}
	if !table.IsVignetteCountry("rou") {
		t.Fatal("country lookup should be case-insensitive")
	}
	if table.IsVignetteCountry("DEU") {
		t.Fatal("DEU should not be a vignette country")
	}
}

func TestVignettePriceDurationBuckets(t *testing.T) {
	table := testVignetteTable()

	cases := []struct {
		name            string
		durationSeconds int
		want            float64
	}{
		{"90min", 5400, 11},
		{"exactly one day", 86400, 11},
		{"one day and one second", 86401, 28},
		{"ten days", 10 * 86400, 28},
		{"eleven days", 11 * 86400, 55},
		{"thirty days", 30 * 86400, 55},
		{"forty days", 40 * 86400, 210},
	}
	for _, tc := range cases {
		if got := table.Price("ROU", 5, tc.durationSeconds); got != tc.want {
			t.Errorf("%s: price = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestVignettePriceAxleFallback(t *testing.T) {
	table := testVignetteTable()

	// 2-axle row exists and is used directly.
	if got := table.Price("ROU", 2, 3600); got != 4 {
		t.Fatalf("2-axle price = %v, want 4", got)
	}
	// No 3-axle row: fall back to the default axle row.
	if got := table.Price("ROU", 3, 3600); got != 11 {
		t.Fatalf("3-axle price = %v, want default-axle 11", got)
	}
}

func TestVignettePriceUnknownCountryFallsBack(t *testing.T) {
	table := testVignetteTable()

	if got := table.Price("SRB", 5, 3600); got != 15 {
		t.Fatalf("unknown country price = %v, want fallback 15", got)
	}
}
