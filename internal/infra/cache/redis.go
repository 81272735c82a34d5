// Package cache provides the Redis implementation of the pass-through cache
// port. Values are stored as JSON under a namespaced key.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"souk/config"
	"souk/internal/domain/lifecycle"
	"souk/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// NewClient creates the shared Redis client and registers its lifecycle
// hooks. Returns nil when caching is disabled in config, which every
// consumer must treat as a miss-always cache.
func NewClient(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) *redis.Client {
	if !cfg.Cache.Enabled {
		logger.Info("redis cache disabled; running without a cache layer")

		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.Addr,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()
			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "ping redis")
			}
			logger.Info("redis cache connected", slog.String("addr", cfg.Cache.Addr))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return client
}

// redisCache adapts a Redis client to the generic cache port for one value
// type, with a fixed key namespace.
type redisCache[V any] struct {
	client *redis.Client
	prefix string
}

// New builds a typed cache over a shared Redis client. A nil client yields a
// nil port, preserving the miss-always contract downstream.
func New[V any](client *redis.Client, prefix string) repository.Cache[V] {
	if client == nil {
		return nil
	}

	return &redisCache[V]{client: client, prefix: prefix}
}

func (c *redisCache[V]) key(id int64) string {
	return fmt.Sprintf("%s:%d", c.prefix, id)
}

// Get returns the cached value, or repository.ErrNotFound on a miss.
func (c *redisCache[V]) Get(ctx context.Context, id int64) (*V, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "redis get")
	}

	value := new(V)
	if err := json.Unmarshal(raw, value); err != nil {
		// A corrupt entry behaves like a miss after eviction.
		_ = c.client.Del(ctx, c.key(id)).Err()

		return nil, repository.ErrNotFound
	}

	return value, nil
}

// Put stores the value as JSON with the given TTL.
func (c *redisCache[V]) Put(ctx context.Context, id int64, value *V, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "marshal cache value")
	}

	if err := c.client.Set(ctx, c.key(id), raw, ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set")
	}

	return nil
}

// Evict removes the key. Absent keys are not an error.
func (c *redisCache[V]) Evict(ctx context.Context, id int64) error {
	if err := c.client.Del(ctx, c.key(id)).Err(); err != nil {
		return errors.Wrap(err, "redis del")
	}

	return nil
}
