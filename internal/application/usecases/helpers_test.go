package usecases

import (
	"time"

	"restaurant/internal/domain/model"
	"restaurant/internal/infrastructure/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

func newTestMetrics() *metrics.OrderMetrics {
	return metrics.NewOrderMetrics(prometheus.NewRegistry())
}

func storedOrder(id model.OrderID, tableID model.TableID, mealID model.MealID) *model.Order {
	addedAt := time.Date(2024, 4, 2, 19, 15, 0, 0, time.UTC)
	return &model.Order{
		ID:      id,
		TableID: tableID,
		MealID:  mealID,
		AddedAt: addedAt,
		ReadyAt: addedAt.Add(3 * time.Minute),
	}
}
