package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"toll-route-service/internal/domain"
)

// Geocode results go stale very slowly; a month of retention is generous.
const redisAddressTTL = 30 * 24 * time.Hour

// RedisAddressCache stores resolved addresses as JSON values in Redis, for
// deployments that already run one next to the service.
type RedisAddressCache struct {
	Client *redis.Client
}

func NewRedisAddressCache(client *redis.Client) *RedisAddressCache {
	return &RedisAddressCache{Client: client}
}

type redisAddress struct {
	CountryCode string `json:"country_code"`
	PostalCode  string `json:"postal_code"`
	City        string `json:"city"`
}

// Fetch cached addresses for the given keys.
func (r *RedisAddressCache) GetMany(ctx context.Context, keys []string) (map[string]domain.Address, error) {
	if r.Client == nil {
		return nil, errors.New("address cache: redis client is nil")
	}

	uniq := dedupeKeys(keys)
	if len(uniq) == 0 {
		return map[string]domain.Address{}, nil
	}

	values, err := r.Client.MGet(ctx, uniq...).Result()
	if err != nil {
		return nil, fmt.Errorf("get address cache: redis mget: %w", err)
	}

	out := make(map[string]domain.Address, len(uniq))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var ra redisAddress
		if err := json.Unmarshal([]byte(raw), &ra); err != nil {
			// A corrupt entry behaves like a miss.
			continue
		}
		out[uniq[i]] = domain.Address{
			CountryCode: ra.CountryCode,
			PostalCode:  ra.PostalCode,
			City:        ra.City,
		}
	}

	return out, nil
}

// Store key -> address mappings in the cache.
func (r *RedisAddressCache) PutMany(ctx context.Context, results map[string]domain.Address) error {
	if r.Client == nil {
		return errors.New("address cache: redis client is nil")
	}

	if len(results) == 0 {
		return nil
	}

	pipe := r.Client.Pipeline()
	for key, addr := range results {
		if key == "" {
			return errors.New("insert address cache: empty key")
		}
		payload, err := json.Marshal(redisAddress{
			CountryCode: addr.CountryCode,
			PostalCode:  addr.PostalCode,
			City:        addr.City,
		})
		if err != nil {
			return fmt.Errorf("insert address cache key=%q: marshal: %w", key, err)
		}
		pipe.Set(ctx, key, payload, redisAddressTTL)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("insert address cache: redis pipeline: %w", err)
	}

	return nil
}
