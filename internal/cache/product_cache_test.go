package cache

import (
	"context"
	"testing"
	"time"

	"boxpoint-api/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestNoopCacheNeverHits(t *testing.T) {
	ctx := context.Background()
	c := NewNoopProductCache()

	c.Set(ctx, &model.ProductResponse{ID: 1, Name: "Phone"})
	_, ok := c.Get(ctx, 1)
	assert.False(t, ok)

	c.Invalidate(ctx, 1, 2)
	c.Purge(ctx)
}

func TestRedisCacheFailuresAreMisses(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	ctx := context.Background()
	c := NewRedisProductCache(client, time.Minute)

	c.Set(ctx, &model.ProductResponse{ID: 7})
	_, ok := c.Get(ctx, 7)
	assert.False(t, ok)

	c.Invalidate(ctx, 7)
	c.Purge(ctx)
}

func TestKeyLayout(t *testing.T) {
	assert.Equal(t, "product:response:42", key(42))
}
