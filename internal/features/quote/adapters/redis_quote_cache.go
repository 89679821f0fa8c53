package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"frenet-gateway/internal/core/cache"
	"frenet-gateway/internal/features/quote/domain"
)

// quoteKeyPrefix namespaces quote entries in the shared cache backend.
const quoteKeyPrefix = "quote:"

// RedisQuoteCache implements ports.QuoteCache on top of the core cache port.
// The TTL is applied at save time; the calculator treats any present entry
// as fresh.
type RedisQuoteCache struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewRedisQuoteCache creates a RedisQuoteCache. A TTL of 0 means entries
// never expire.
func NewRedisQuoteCache(c cache.Cache, ttl time.Duration) *RedisQuoteCache {
	return &RedisQuoteCache{
		cache: c,
		ttl:   ttl,
	}
}

// Load retrieves the cached offers for the fingerprint. A cache miss
// returns (nil, nil).
func (r *RedisQuoteCache) Load(ctx context.Context, fingerprint string) ([]domain.QuotedService, error) {
	data, err := r.cache.Get(ctx, quoteKeyPrefix+fingerprint)
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load quote from cache: %w", err)
	}

	var services []domain.QuotedService
	if err := json.Unmarshal(data, &services); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached quote: %w", err)
	}

	return services, nil
}

// Save stores the offers under the fingerprint.
func (r *RedisQuoteCache) Save(ctx context.Context, fingerprint string, services []domain.QuotedService) error {
	data, err := json.Marshal(services)
	if err != nil {
		return fmt.Errorf("failed to marshal quote: %w", err)
	}

	if err := r.cache.Set(ctx, quoteKeyPrefix+fingerprint, data, r.ttl); err != nil {
		return fmt.Errorf("failed to save quote to cache: %w", err)
	}

	return nil
}
