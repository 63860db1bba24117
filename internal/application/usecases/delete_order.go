package usecases

import (
	"context"
	"fmt"

	"restaurant/internal/domain/model"
	"restaurant/internal/domain/repository"

	"go.uber.org/zap"
)

type DeleteOrderUseCase struct {
	orderRepo  repository.OrderRepository
	orderCache repository.OrderCache
	publisher  repository.OrderEventPublisher
	metrics    OrderMetrics
	logger     *zap.Logger
}

func NewDeleteOrderUseCase(
	orderRepo repository.OrderRepository,
	orderCache repository.OrderCache,
	publisher repository.OrderEventPublisher,
	metrics OrderMetrics,
	logger *zap.Logger,
) *DeleteOrderUseCase {
	return &DeleteOrderUseCase{
		orderRepo:  orderRepo,
		orderCache: orderCache,
		publisher:  publisher,
		metrics:    metrics,
		logger:     logger,
	}
}

// Execute soft-deletes a live order. It returns model.ErrOrderNotFound when no
// live order has this id, including when it was already deleted.
func (uc *DeleteOrderUseCase) Execute(ctx context.Context, id model.OrderID) error {
	deleted, err := uc.orderRepo.Delete(ctx, id)
	if err != nil {
		uc.metrics.RecordStoreFailure("delete")
		uc.logger.Error("Failed to delete order in DB", zap.Error(err), zap.Int64("order_id", int64(id)))
		return fmt.Errorf("failed to delete order in DB: %w", err)
	}
	if !deleted {
		uc.logger.Info("No live order to delete", zap.Int64("order_id", int64(id)))
		return model.ErrOrderNotFound
	}
	uc.metrics.RecordOrderDeleted()

	if err := uc.orderCache.Invalidate(ctx, id); err != nil {
		// the cached copy expires with its TTL
		uc.logger.Error("Failed to invalidate cached order", zap.Error(err), zap.Int64("order_id", int64(id)))
	}

	if err := uc.publisher.OrderDeleted(ctx, id); err != nil {
		uc.logger.Warn("Failed to publish order deleted event", zap.Error(err), zap.Int64("order_id", int64(id)))
	}

	uc.logger.Info("Order deleted", zap.Int64("order_id", int64(id)))
	return nil
}
