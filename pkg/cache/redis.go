// Package cache wraps the Redis client used for reference-data caching.
// A missing or unreachable Redis is not an error: constructors return nil
// and callers fall through to the database.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"warehouse-api/pkg/utils"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to Redis, returning nil when the server cannot be
// reached so callers degrade gracefully.
func NewRedisClient(config utils.RedisConfig) *redis.Client {
	addr := config.Addr
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}

	return client
}

// GetJSON loads and unmarshals a cached value. Returns false on miss, nil
// client, or any cache error.
func GetJSON(ctx context.Context, client *redis.Client, key string, dest any) bool {
	if client == nil {
		return false
	}

	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}

	return json.Unmarshal(data, dest) == nil
}

// SetJSON stores a value best-effort; failures are ignored.
func SetJSON(ctx context.Context, client *redis.Client, key string, value any, ttl time.Duration) {
	if client == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		return
	}

	client.Set(ctx, key, data, ttl)
}
