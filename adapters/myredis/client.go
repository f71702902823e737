package myredis

import (
	"fmt"

	"github.com/go-redis/redis/v8"
)

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr string // redis:// URL
}

// NewRedisUniversalClient creates a Redis client from a redis:// URL.
func NewRedisUniversalClient(addr string) (redis.UniversalClient, error) {
	opts, err := redis.ParseURL(addr)
	if err != nil {
		return nil, fmt.Errorf("invalid redis address '%s': %w", addr, err)
	}
	return redis.NewClient(opts), nil
}
