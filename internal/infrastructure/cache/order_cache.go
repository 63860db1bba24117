package cache

import (
	"context"

	"restaurant/internal/domain/model"
	"restaurant/internal/domain/repository"
)

type OrderCache struct {
	cache *Cache
}

func NewOrderCache(cache *Cache) *OrderCache {
	return &OrderCache{cache: cache}
}

func (c *OrderCache) Get(ctx context.Context, id model.OrderID) (*model.Order, error) {
	return c.cache.GetOrder(ctx, id)
}

func (c *OrderCache) SetIfAbsent(ctx context.Context, order *model.Order) error {
	return c.cache.SaveOrder(ctx, *order)
}

func (c *OrderCache) Invalidate(ctx context.Context, id model.OrderID) error {
	return c.cache.DeleteOrder(ctx, id)
}

func (c *OrderCache) Close() error {
	return c.cache.Close()
}

// NopOrderCache is used when no Redis address is configured. Every lookup misses.
type NopOrderCache struct{}

var _ repository.OrderCache = NopOrderCache{}

func (NopOrderCache) Get(context.Context, model.OrderID) (*model.Order, error) { return nil, nil }

func (NopOrderCache) SetIfAbsent(context.Context, *model.Order) error { return nil }

func (NopOrderCache) Invalidate(context.Context, model.OrderID) error { return nil }

func (NopOrderCache) Close() error { return nil }
