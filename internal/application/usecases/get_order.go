package usecases

import (
	"context"
	"errors"
	"fmt"

	"restaurant/internal/domain/model"
	"restaurant/internal/domain/repository"

	"go.uber.org/zap"
)

type GetOrderUseCase struct {
	orderRepo  repository.OrderRepository
	orderCache repository.OrderCache
	metrics    OrderMetrics
	logger     *zap.Logger
}

func NewGetOrderUseCase(repo repository.OrderRepository, cache repository.OrderCache, metrics OrderMetrics, logger *zap.Logger) *GetOrderUseCase {
	return &GetOrderUseCase{orderRepo: repo, orderCache: cache, metrics: metrics, logger: logger}
}

func (uc *GetOrderUseCase) Execute(ctx context.Context, id model.OrderID) (*model.Order, error) {
	order, err := uc.orderCache.Get(ctx, id)
	switch {
	case errors.Is(err, model.ErrOrderNotFound):
		uc.metrics.RecordCacheHit()
		uc.logger.Debug("Order known deleted in cache", zap.Int64("order_id", int64(id)))
		return nil, model.ErrOrderNotFound
	case err == nil && order != nil:
		uc.metrics.RecordCacheHit()
		uc.logger.Debug("Order retrieved from cache", zap.Int64("order_id", int64(id)))
		return order, nil
	}
	uc.metrics.RecordCacheMiss()

	order, err = uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrOrderNotFound) {
			uc.logger.Info("Order not found", zap.Int64("order_id", int64(id)))
			return nil, model.ErrOrderNotFound
		}
		uc.metrics.RecordStoreFailure("get")
		uc.logger.Error("Failed to get order from DB", zap.Error(err), zap.Int64("order_id", int64(id)))
		return nil, fmt.Errorf("failed to get order from DB: %w", err)
	}

	if err := uc.orderCache.SetIfAbsent(ctx, order); err != nil {
		uc.logger.Warn("Failed to save order to cache", zap.Error(err), zap.Int64("order_id", int64(id)))
	}

	uc.logger.Debug("Order retrieved from DB", zap.Int64("order_id", int64(id)))
	return order, nil
}
