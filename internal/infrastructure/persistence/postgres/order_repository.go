package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"restaurant/internal/domain/model"
	"restaurant/internal/domain/repository"

	"go.uber.org/zap"
)

const orderColumns = `id, table_id, meal_id, added_at, ready_at`

type OrderRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewOrderRepository(db *sql.DB, logger *zap.Logger) repository.OrderRepository {
	return &OrderRepository{db: db, logger: logger}
}

func storageError(op string, err error) error {
	return fmt.Errorf("%w: failed to %s: %w", model.ErrStorageFailure, op, err)
}

func (r *OrderRepository) Add(ctx context.Context, order *model.Order) error {
	var id model.OrderID
	err := r.db.QueryRowContext(ctx, `
        INSERT INTO orders (table_id, meal_id, added_at, ready_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id`,
		int64(order.TableID), int64(order.MealID), order.AddedAt, order.ReadyAt).Scan(&id)
	if err != nil {
		return storageError("insert order", err)
	}

	order.ID = id
	r.logger.Debug("Order stored",
		zap.Int64("order_id", int64(id)), zap.Uint32("table_id", uint32(order.TableID)))
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id model.OrderID) (*model.Order, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT `+orderColumns+`
        FROM orders
        WHERE id = $1 AND deleted_at IS NULL`, int64(id))

	order, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrOrderNotFound
	}
	if err != nil {
		return nil, storageError("get order", err)
	}
	return order, nil
}

func (r *OrderRepository) Delete(ctx context.Context, id model.OrderID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
        UPDATE orders
        SET deleted_at = now()
        WHERE id = $1 AND deleted_at IS NULL`, int64(id))
	if err != nil {
		return false, storageError("delete order", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, storageError("read affected rows", err)
	}
	return affected == 1, nil
}

func (r *OrderRepository) ListByTable(ctx context.Context, tableID model.TableID) ([]*model.Order, error) {
	return r.list(ctx, "ListByTable", `
        SELECT `+orderColumns+`
        FROM orders
        WHERE table_id = $1 AND deleted_at IS NULL
        ORDER BY id`, int64(tableID))
}

func (r *OrderRepository) ListByTableAndMeal(ctx context.Context, tableID model.TableID, mealID model.MealID) ([]*model.Order, error) {
	return r.list(ctx, "ListByTableAndMeal", `
        SELECT `+orderColumns+`
        FROM orders
        WHERE table_id = $1 AND meal_id = $2 AND deleted_at IS NULL
        ORDER BY id`, int64(tableID), int64(mealID))
}

func (r *OrderRepository) list(ctx context.Context, caller, query string, args ...any) ([]*model.Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageError("list orders", err)
	}

	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			r.logger.Warn("Failed to close rows in "+caller, zap.Error(closeErr))
		}
	}()

	orders := []*model.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, storageError("scan order", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("iterate orders", err)
	}

	return orders, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(s scanner) (*model.Order, error) {
	var order model.Order
	if err := s.Scan(&order.ID, &order.TableID, &order.MealID, &order.AddedAt, &order.ReadyAt); err != nil {
		return nil, err
	}
	order.AddedAt = order.AddedAt.UTC()
	order.ReadyAt = order.ReadyAt.UTC()
	return &order, nil
}
