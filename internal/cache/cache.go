// Package cache holds an optional Redis read cache for the hot list
// endpoints. A nil *Cache is valid and behaves as a permanent miss.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/barbershop-api/internal/config"
)

const (
	KeyBarbers  = "barbers:list"
	KeyServices = "services:list"
)

type Cache struct {
	rdb *redis.Client
}

// New returns nil when REDIS_URL is unset or unparseable; callers degrade
// to the database.
func New(cfg *config.Config) *Cache {
	if cfg.RedisURL == "" {
		return nil
	}
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil
	}
	return &Cache{rdb: redis.NewClient(opts)}
}

// GetJSON reports whether key was present and decoded into dest.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (c *Cache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) {
	if c == nil {
		return
	}
	if b, err := json.Marshal(value); err == nil {
		c.rdb.Set(ctx, key, b, ttl)
	}
}

func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil {
		return
	}
	c.rdb.Del(ctx, keys...)
}
