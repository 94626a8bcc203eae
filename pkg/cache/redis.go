package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"boxpoint-api/pkg/config"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects and pings Redis. It returns nil, nil when no
// address is configured so callers can run without a cache.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.Address == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Printf("Redis connected at %s", cfg.Address)
	return client, nil
}
