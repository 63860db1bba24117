package model

import "time"

type (
	OrderID int64
	TableID uint32
)

// Order is a single meal requested by a table. ID is zero until the store accepts the order.
type Order struct {
	ID      OrderID   `json:"id"`
	TableID TableID   `json:"table_id"`
	MealID  MealID    `json:"meal_id" validate:"required"`
	AddedAt time.Time `json:"added_at" validate:"required"`
	ReadyAt time.Time `json:"ready_at" validate:"required,gtfield=AddedAt"`
}

// NewOrder builds an unsaved order for the table. Timestamps are kept in UTC at
// microsecond resolution so they survive a round trip through the database unchanged.
func NewOrder(tableID TableID, meal MealInfo, now time.Time) Order {
	addedAt := now.UTC().Truncate(time.Microsecond)
	return Order{
		TableID: tableID,
		MealID:  meal.ID,
		AddedAt: addedAt,
		ReadyAt: addedAt.Add(meal.CookingTime),
	}
}

// SameMeal reports whether both orders are for the same meal at the same table.
// Identity is ignored.
func (o Order) SameMeal(other Order) bool {
	return o.TableID == other.TableID && o.MealID == other.MealID
}
