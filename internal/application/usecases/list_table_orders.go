package usecases

import (
	"context"
	"fmt"

	"restaurant/internal/domain/model"
	"restaurant/internal/domain/repository"

	"go.uber.org/zap"
)

type ListTableOrdersUseCase struct {
	orderRepo repository.OrderRepository
	metrics   OrderMetrics
	logger    *zap.Logger
}

func NewListTableOrdersUseCase(orderRepo repository.OrderRepository, metrics OrderMetrics, logger *zap.Logger) *ListTableOrdersUseCase {
	return &ListTableOrdersUseCase{orderRepo: orderRepo, metrics: metrics, logger: logger}
}

func (uc *ListTableOrdersUseCase) Execute(ctx context.Context, tableID model.TableID) ([]*model.Order, error) {
	orders, err := uc.orderRepo.ListByTable(ctx, tableID)
	if err != nil {
		uc.metrics.RecordStoreFailure("list")
		uc.logger.Error("Failed to list table orders", zap.Error(err), zap.Uint32("table_id", uint32(tableID)))
		return nil, fmt.Errorf("failed to list orders for table %d: %w", tableID, err)
	}

	uc.logger.Debug("Table orders listed", zap.Uint32("table_id", uint32(tableID)), zap.Int("count", len(orders)))
	return orders, nil
}

func (uc *ListTableOrdersUseCase) ExecuteForMeal(ctx context.Context, tableID model.TableID, mealID model.MealID) ([]*model.Order, error) {
	orders, err := uc.orderRepo.ListByTableAndMeal(ctx, tableID, mealID)
	if err != nil {
		uc.metrics.RecordStoreFailure("list")
		uc.logger.Error("Failed to list table meal orders", zap.Error(err),
			zap.Uint32("table_id", uint32(tableID)), zap.Uint32("meal_id", uint32(mealID)))
		return nil, fmt.Errorf("failed to list orders for table %d meal %d: %w", tableID, mealID, err)
	}
	return orders, nil
}
