package cache

import (
	"context"
	"time"
)

// DefaultRevalidateDelay outlasts a typical read that loaded a product
// just before a write committed.
const DefaultRevalidateDelay = 500 * time.Millisecond

type delayedInvalidation struct {
	ProductCache
	delay time.Duration
}

// WithDelayedInvalidation repeats every Invalidate and Purge once more
// after delay. A concurrent cache-aside read that fetched the old row and
// calls Set after the first invalidation is evicted by the second one.
func WithDelayedInvalidation(c ProductCache, delay time.Duration) ProductCache {
	return &delayedInvalidation{ProductCache: c, delay: delay}
}

func (c *delayedInvalidation) Invalidate(ctx context.Context, ids ...uint) {
	if len(ids) == 0 {
		return
	}
	c.ProductCache.Invalidate(ctx, ids...)

	again := append([]uint(nil), ids...)
	time.AfterFunc(c.delay, func() {
		c.ProductCache.Invalidate(context.Background(), again...)
	})
}

func (c *delayedInvalidation) Purge(ctx context.Context) {
	c.ProductCache.Purge(ctx)
	time.AfterFunc(c.delay, func() {
		c.ProductCache.Purge(context.Background())
	})
}
