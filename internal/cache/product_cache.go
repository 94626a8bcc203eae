package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"boxpoint-api/internal/model"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "product:response:"

// ProductCache stores converted product responses by product ID. Misses
// and backend failures look the same to callers: the value is rebuilt
// from the database.
type ProductCache interface {
	Get(ctx context.Context, id uint) (*model.ProductResponse, bool)
	Set(ctx context.Context, response *model.ProductResponse)
	Invalidate(ctx context.Context, ids ...uint)
	Purge(ctx context.Context)
}

func key(id uint) string {
	return fmt.Sprintf("%s%d", keyPrefix, id)
}

type redisProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisProductCache(client *redis.Client, ttl time.Duration) ProductCache {
	return &redisProductCache{client: client, ttl: ttl}
}

func (c *redisProductCache) Get(ctx context.Context, id uint) (*model.ProductResponse, bool) {
	raw, err := c.client.Get(ctx, key(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("product cache get %d: %v", id, err)
		}
		return nil, false
	}

	var response model.ProductResponse
	if err := json.Unmarshal(raw, &response); err != nil {
		log.Printf("product cache decode %d: %v", id, err)
		return nil, false
	}
	return &response, true
}

func (c *redisProductCache) Set(ctx context.Context, response *model.ProductResponse) {
	raw, err := json.Marshal(response)
	if err != nil {
		log.Printf("product cache encode %d: %v", response.ID, err)
		return
	}
	if err := c.client.Set(ctx, key(response.ID), raw, c.ttl).Err(); err != nil {
		log.Printf("product cache set %d: %v", response.ID, err)
	}
}

func (c *redisProductCache) Invalidate(ctx context.Context, ids ...uint) {
	if len(ids) == 0 {
		return
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = key(id)
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		log.Printf("product cache invalidate %v: %v", ids, err)
	}
}

// Purge drops every cached product, used when a change (category rename)
// can touch many responses at once.
func (c *redisProductCache) Purge(ctx context.Context) {
	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	pipe := c.client.Pipeline()
	for iter.Next(ctx) {
		pipe.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.Printf("product cache purge scan: %v", err)
		return
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		log.Printf("product cache purge: %v", err)
	}
}

type noopProductCache struct{}

// NewNoopProductCache returns a cache that never hits
func NewNoopProductCache() ProductCache {
	return noopProductCache{}
}

func (noopProductCache) Get(context.Context, uint) (*model.ProductResponse, bool) { return nil, false }
func (noopProductCache) Set(context.Context, *model.ProductResponse)              {}
func (noopProductCache) Invalidate(context.Context, ...uint)                      {}
func (noopProductCache) Purge(context.Context)                                    {}
