package kafka

import (
	"time"

	"restaurant/internal/domain/model"
)

const (
	EventOrderAdded   = "order.added"
	EventOrderDeleted = "order.deleted"
)

type OrderEvent struct {
	EventID    string        `json:"event_id"`
	Type       string        `json:"type"`
	OccurredAt time.Time     `json:"occurred_at"`
	OrderID    model.OrderID `json:"order_id"`
	Order      *model.Order  `json:"order,omitempty"`
}

// PlaceOrderCommand is the payload accepted on the intake topic.
type PlaceOrderCommand struct {
	TableID model.TableID `json:"table_id"`
	MealID  model.MealID  `json:"meal_id" validate:"required"`
}
