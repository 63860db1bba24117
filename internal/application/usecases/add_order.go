package usecases

import (
	"context"
	"fmt"
	"time"

	"restaurant/internal/application/validation"
	"restaurant/internal/domain/model"
	"restaurant/internal/domain/repository"

	"go.uber.org/zap"
)

type AddOrderUseCase struct {
	catalog   repository.MealCatalog
	orderRepo repository.OrderRepository
	publisher repository.OrderEventPublisher
	validator *validation.Validator
	metrics   OrderMetrics
	now       func() time.Time
	logger    *zap.Logger
}

func NewAddOrderUseCase(
	catalog repository.MealCatalog,
	orderRepo repository.OrderRepository,
	publisher repository.OrderEventPublisher,
	validator *validation.Validator,
	metrics OrderMetrics,
	logger *zap.Logger,
) *AddOrderUseCase {
	return &AddOrderUseCase{
		catalog:   catalog,
		orderRepo: orderRepo,
		publisher: publisher,
		validator: validator,
		metrics:   metrics,
		now:       time.Now,
		logger:    logger,
	}
}

// Execute resolves the meal in the catalog and stores a new order for the table.
// An unknown meal yields model.ErrUnknownMeal without touching the store.
func (uc *AddOrderUseCase) Execute(ctx context.Context, tableID model.TableID, mealID model.MealID) (*model.Order, error) {
	meal, ok := uc.catalog.Lookup(mealID)
	if !ok {
		uc.logger.Info("Unknown meal requested", zap.Uint32("table_id", uint32(tableID)), zap.Uint32("meal_id", uint32(mealID)))
		return nil, fmt.Errorf("meal %d: %w", mealID, model.ErrUnknownMeal)
	}

	order := model.NewOrder(tableID, meal, uc.now())
	if err := uc.validator.ValidateOrder(order); err != nil {
		uc.logger.Warn("Order validation failed", zap.Uint32("meal_id", uint32(mealID)), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", model.ErrInvalidOrderData, err)
	}

	if err := uc.orderRepo.Add(ctx, &order); err != nil {
		uc.metrics.RecordStoreFailure("add")
		uc.logger.Error("Failed to save order to DB", zap.Error(err),
			zap.Uint32("table_id", uint32(tableID)), zap.Uint32("meal_id", uint32(mealID)))
		return nil, fmt.Errorf("failed to save order to DB: %w", err)
	}
	uc.metrics.RecordOrderAdded()

	if err := uc.publisher.OrderAdded(ctx, &order); err != nil {
		uc.logger.Warn("Failed to publish order added event", zap.Error(err), zap.Int64("order_id", int64(order.ID)))
	}

	uc.logger.Info("Order added",
		zap.Int64("order_id", int64(order.ID)),
		zap.Uint32("table_id", uint32(order.TableID)),
		zap.String("meal", meal.Name),
		zap.Time("ready_at", order.ReadyAt))
	return &order, nil
}
