package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dscommerce/commerce-api/internal/core/ports"
)

const productCacheTTL = 5 * time.Minute

// ProductCache caches resolved product views in Redis.
// Key format: product:<id>
type ProductCache struct {
	client *redis.Client
}

// NewProductCache creates a ProductCache wrapping the given Redis client.
func NewProductCache(client *redis.Client) *ProductCache {
	return &ProductCache{client: client}
}

// Get returns the cached view, or (nil, nil) on a miss.
func (c *ProductCache) Get(ctx context.Context, id int64) (*ports.ProductDetail, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("product cache get: %w", err)
	}

	var detail ports.ProductDetail
	if err := json.Unmarshal(raw, &detail); err != nil {
		return nil, fmt.Errorf("product cache decode: %w", err)
	}
	return &detail, nil
}

// Set stores the view (expires after productCacheTTL).
func (c *ProductCache) Set(ctx context.Context, detail *ports.ProductDetail) error {
	raw, err := json.Marshal(detail)
	if err != nil {
		return fmt.Errorf("product cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(detail.ID), raw, productCacheTTL).Err()
}

// Invalidate drops the cached view after a write or delete.
func (c *ProductCache) Invalidate(ctx context.Context, id int64) error {
	return c.client.Del(ctx, c.key(id)).Err()
}

func (c *ProductCache) key(id int64) string {
	return fmt.Sprintf("product:%d", id)
}
