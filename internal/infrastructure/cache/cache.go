package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"restaurant/internal/domain/model"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	keyPrefix = "order:"
	tombstone = "deleted"
)

type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCache(addr string, ttl time.Duration, logger *zap.Logger) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     "",
		DB:           0,
		DialTimeout:  10 * time.Second,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		MaxRetries:   3,
	})

	ctx := context.Background()
	for i := range 3 {
		_, err := client.Ping(ctx).Result()
		if err == nil {
			logger.Info("Connected to Redis", zap.String("addr", addr))
			break
		}
		logger.Warn("Failed to connect to Redis, retrying...", zap.Error(err), zap.Int("attempt", i+1))
		time.Sleep(2 * time.Second)
	}
	return &Cache{client: client, ttl: ttl, logger: logger}
}

func orderKey(id model.OrderID) string {
	return keyPrefix + strconv.FormatInt(int64(id), 10)
}

// SaveOrder stores the order unless the key already exists. A tombstone left by
// DeleteOrder therefore wins over a concurrent reader repopulating the entry.
func (c *Cache) SaveOrder(ctx context.Context, order model.Order) error {
	data, err := json.Marshal(order)
	if err != nil {
		c.logger.Error("Failed to marshal order for cache", zap.Error(err), zap.Int64("order_id", int64(order.ID)))
		return err
	}
	if err := c.client.SetNX(ctx, orderKey(order.ID), data, c.ttl).Err(); err != nil {
		c.logger.Error("Failed to save order to Redis", zap.Error(err), zap.Int64("order_id", int64(order.ID)))
		return err
	}

	c.logger.Debug("Order cached in Redis", zap.Int64("order_id", int64(order.ID)))
	return nil
}

// GetOrder returns (nil, nil) on a miss and model.ErrOrderNotFound when the
// order is known to be deleted.
func (c *Cache) GetOrder(ctx context.Context, id model.OrderID) (*model.Order, error) {
	data, err := c.client.Get(ctx, orderKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		c.logger.Debug("Order not found in cache", zap.Int64("order_id", int64(id)))
		return nil, nil
	}
	if err != nil {
		c.logger.Error("Failed to get order from Redis", zap.Error(err), zap.Int64("order_id", int64(id)))
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	if string(data) == tombstone {
		return nil, model.ErrOrderNotFound
	}

	var order model.Order
	if err := json.Unmarshal(data, &order); err != nil {
		c.logger.Error("Failed to unmarshal order from cache", zap.Error(err), zap.Int64("order_id", int64(id)))
		return nil, fmt.Errorf("unmarshal failed: %w", err)
	}
	c.logger.Debug("Order retrieved from Redis", zap.Int64("order_id", int64(id)))
	return &order, nil
}

func (c *Cache) DeleteOrder(ctx context.Context, id model.OrderID) error {
	if err := c.client.Set(ctx, orderKey(id), tombstone, c.ttl).Err(); err != nil {
		c.logger.Error("Failed to tombstone order in Redis", zap.Error(err), zap.Int64("order_id", int64(id)))
		return err
	}
	return nil
}

func (c *Cache) Close() error {
	if err := c.client.Close(); err != nil {
		c.logger.Error("Failed to close Redis client", zap.Error(err))
		return err
	}
	return nil
}
