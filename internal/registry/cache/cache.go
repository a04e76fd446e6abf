// Package cache fronts the DGI client with a Redis snapshot cache so repeated
// searches within the TTL do not hammer the registry.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"alta/internal/domain"
	"alta/internal/registry"
)

// CachedClient decorates a registry.Client with read-through caching. Cache
// faults degrade to a direct registry call; they never fail the lookup.
type CachedClient struct {
	next  registry.Client
	redis *redis.Client
	ttl   time.Duration
	log   *log.Logger
}

func New(next registry.Client, rdb *redis.Client, ttl time.Duration, logger *log.Logger) *CachedClient {
	return &CachedClient{next: next, redis: rdb, ttl: ttl, log: logger}
}

func cacheKey(rut string) string {
	return "alta:dgi:business-information:" + rut
}

func (c *CachedClient) FetchBusinessInformation(ctx context.Context, rut string) (domain.BusinessInformation, error) {
	if cached, ok := c.get(ctx, rut); ok {
		return cached, nil
	}
	info, err := c.next.FetchBusinessInformation(ctx, rut)
	if err != nil {
		return domain.BusinessInformation{}, err
	}
	c.put(ctx, rut, info)
	return info, nil
}

func (c *CachedClient) get(ctx context.Context, rut string) (domain.BusinessInformation, bool) {
	raw, err := c.redis.Get(ctx, cacheKey(rut)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Printf("component=alta/internal/registry/cache msg=%q cause=%v", "cache read failed", err)
		}
		return domain.BusinessInformation{}, false
	}
	var info domain.BusinessInformation
	if err := json.Unmarshal(raw, &info); err != nil {
		c.log.Printf("component=alta/internal/registry/cache msg=%q cause=%v", "cache entry corrupt", err)
		return domain.BusinessInformation{}, false
	}
	return info, true
}

func (c *CachedClient) put(ctx context.Context, rut string, info domain.BusinessInformation) {
	raw, err := json.Marshal(info)
	if err != nil {
		c.log.Printf("component=alta/internal/registry/cache msg=%q cause=%v", "cache entry marshal failed", err)
		return
	}
	if err := c.redis.Set(ctx, cacheKey(rut), raw, c.ttl).Err(); err != nil {
		c.log.Printf("component=alta/internal/registry/cache msg=%q cause=%v", "cache write failed", err)
	}
}

// Invalidate drops the cached snapshot for a RUT.
func (c *CachedClient) Invalidate(ctx context.Context, rut string) error {
	if err := c.redis.Del(ctx, cacheKey(rut)).Err(); err != nil {
		return fmt.Errorf("invalidate registry cache: %w", err)
	}
	return nil
}
