// Package counter tracks storefront visit counts in Redis. Counts are
// operational metrics for the admin dashboard, not business data; they
// live outside Spanner and losing them is acceptable.
package counter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "visits:"

// Config holds Redis connection settings.
type Config struct {
	Addr     string
	Password string
	DB       int
}

// Connect opens and pings a Redis client.
func Connect(cfg *Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     20,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return rdb, nil
}

// Counter increments and reads named visit counters.
type Counter struct {
	redis *redis.Client
}

// NewCounter creates a Counter on an existing Redis client.
func NewCounter(redis *redis.Client) *Counter {
	return &Counter{redis: redis}
}

// Increment bumps the named counter by one and returns the new value.
func (c *Counter) Increment(ctx context.Context, name string) (int64, error) {
	count, err := c.redis.Incr(ctx, keyPrefix+name).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment counter %s: %w", name, err)
	}
	return count, nil
}

// Get returns the named counter's value. A counter that was never
// incremented reads as zero.
func (c *Counter) Get(ctx context.Context, name string) (int64, error) {
	count, err := c.redis.Get(ctx, keyPrefix+name).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read counter %s: %w", name, err)
	}
	return count, nil
}
