package repository

import (
	"context"

	"restaurant/internal/domain/model"
)

//go:generate mockgen -source=order_repository.go -destination=mocks/order_repository.go -package=mocks

// OrderRepository is the durable order store. Soft-deleted orders are invisible
// to every read and to Delete.
type OrderRepository interface {
	// Add assigns order.ID atomically with the insert.
	Add(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id model.OrderID) (*model.Order, error)
	// Delete reports whether a live order existed and is now deleted.
	Delete(ctx context.Context, id model.OrderID) (bool, error)
	ListByTable(ctx context.Context, tableID model.TableID) ([]*model.Order, error)
	ListByTableAndMeal(ctx context.Context, tableID model.TableID, mealID model.MealID) ([]*model.Order, error)
}

type OrderCache interface {
	Get(ctx context.Context, id model.OrderID) (*model.Order, error)
	// SetIfAbsent stores the order unless the key already holds an order or a tombstone.
	SetIfAbsent(ctx context.Context, order *model.Order) error
	// Invalidate replaces whatever is cached for id with a tombstone.
	Invalidate(ctx context.Context, id model.OrderID) error
	Close() error
}

type OrderEventPublisher interface {
	OrderAdded(ctx context.Context, order *model.Order) error
	OrderDeleted(ctx context.Context, id model.OrderID) error
	Close() error
}

type AddOrderUseCaseProvider interface {
	Execute(ctx context.Context, tableID model.TableID, mealID model.MealID) (*model.Order, error)
}

type GetOrderUseCaseProvider interface {
	Execute(ctx context.Context, id model.OrderID) (*model.Order, error)
}

type DeleteOrderUseCaseProvider interface {
	Execute(ctx context.Context, id model.OrderID) error
}

type ListTableOrdersUseCaseProvider interface {
	Execute(ctx context.Context, tableID model.TableID) ([]*model.Order, error)
	ExecuteForMeal(ctx context.Context, tableID model.TableID, mealID model.MealID) ([]*model.Order, error)
}
