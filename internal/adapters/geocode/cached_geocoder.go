package geocode

import (
	"context"
	"fmt"
	"log"
	"strings"

	"toll-route-service/internal/domain"
	"toll-route-service/internal/ports"
)

// CachedGeocoder wraps a Geocoder with a persistent address cache. Reverse
// lookups are keyed on the rounded coordinate plus radius, forward lookups on
// the normalized label. Cache write failures are logged, never fatal.
type CachedGeocoder struct {
	inner ports.Geocoder
	cache ports.AddressCache
}

func NewCachedGeocoder(inner ports.Geocoder, cache ports.AddressCache) *CachedGeocoder {
	return &CachedGeocoder{inner: inner, cache: cache}
}

func (c *CachedGeocoder) Reverse(ctx context.Context, point domain.Coordinates, radiusMeters int) (domain.Address, error) {
	// ~11 m key resolution; close clicks share a cache entry.
	key := fmt.Sprintf("rev:%.4f,%.4f;r=%d", point.Lat, point.Lon, radiusMeters)

	if addr, ok := c.get(ctx, key); ok {
		return addr, nil
	}

	addr, err := c.inner.Reverse(ctx, point, radiusMeters)
	if err != nil {
		return domain.Address{}, err
	}

	c.put(ctx, key, addr)
	return addr, nil
}

func (c *CachedGeocoder) Forward(ctx context.Context, label string) (domain.Address, error) {
	key := "fwd:" + strings.ToLower(strings.Join(strings.Fields(label), " "))

	if addr, ok := c.get(ctx, key); ok {
		return addr, nil
	}

	addr, err := c.inner.Forward(ctx, label)
	if err != nil {
		return domain.Address{}, err
	}

	c.put(ctx, key, addr)
	return addr, nil
}

func (c *CachedGeocoder) get(ctx context.Context, key string) (domain.Address, bool) {
	if c.cache == nil {
		return domain.Address{}, false
	}
	hits, err := c.cache.GetMany(ctx, []string{key})
	if err != nil {
		log.Printf("address cache read failed key=%q: %v", key, err)
		return domain.Address{}, false
	}
	addr, ok := hits[key]
	return addr, ok
}

func (c *CachedGeocoder) put(ctx context.Context, key string, addr domain.Address) {
	if c.cache == nil || addr.Empty() {
		return
	}
	if err := c.cache.PutMany(ctx, map[string]domain.Address{key: addr}); err != nil {
		log.Printf("address cache write failed key=%q: %v", key, err)
	}
}
