package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"wallet-ledger/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// RateCache implements ports.RateCache, sharing one exchange-rate table
// between service instances.
type RateCache struct {
	client goredis.UniversalClient
	key    string
}

// NewRateCache creates a Redis-backed rate table cache.
func NewRateCache(client goredis.UniversalClient) *RateCache {
	return &RateCache{
		client: client,
		key:    keyPrefix + "rates",
	}
}

// Get returns nil, nil on a miss.
func (c *RateCache) Get(ctx context.Context) (*domain.RateTable, error) {
	raw, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis rate cache get: %w", err)
	}

	var table domain.RateTable
	if err := json.Unmarshal(raw, &table); err != nil {
		return nil, fmt.Errorf("decode cached rate table: %w", err)
	}
	return &table, nil
}

func (c *RateCache) Set(ctx context.Context, table *domain.RateTable, ttl time.Duration) error {
	raw, err := json.Marshal(table)
	if err != nil {
		return fmt.Errorf("encode rate table: %w", err)
	}
	if err := c.client.Set(ctx, c.key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis rate cache set: %w", err)
	}
	return nil
}
