package main

import (
	"context"
	"errors"
	"time"

	"restaurant/internal/domain/model"

	"github.com/brianvoe/gofakeit/v7"
	"go.uber.org/zap"
)

type tableState int

const (
	tableEmpty tableState = iota
	tableOrdering
	tableEating
	tableComplete
)

func (s tableState) String() string {
	switch s {
	case tableEmpty:
		return "empty"
	case tableOrdering:
		return "ordering"
	case tableEating:
		return "eating"
	case tableComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// table is owned by exactly one waiter at a time; the tables channel hands it over.
type table struct {
	id        model.TableID
	state     tableState
	toOrder   int
	eatRounds int
}

type waiter struct {
	client   *orderClient
	meals    []model.MealID
	maxMeals int
	faker    *gofakeit.Faker
	logger   *zap.Logger
}

// serve advances the table by one step of its lifecycle.
func (w *waiter) serve(ctx context.Context, t *table) error {
	switch t.state {
	case tableEmpty:
		t.toOrder = w.faker.IntRange(1, w.maxMeals)
		t.state = tableOrdering
		w.logger.Debug("Guests seated", zap.Uint32("table_id", uint32(t.id)), zap.Int("meals", t.toOrder))

	case tableOrdering:
		mealID := w.meals[w.faker.IntN(len(w.meals))]
		order, err := w.client.PlaceOrder(ctx, t.id, mealID)
		if err != nil {
			return err
		}
		w.logger.Info("Order placed",
			zap.Uint32("table_id", uint32(t.id)),
			zap.Int64("order_id", int64(order.ID)),
			zap.Time("ready_at", order.ReadyAt))

		t.toOrder--
		if t.toOrder == 0 {
			t.eatRounds = w.faker.IntRange(1, 3)
			t.state = tableEating
		}

	case tableEating:
		t.eatRounds--
		if t.eatRounds <= 0 {
			t.state = tableComplete
		}

	case tableComplete:
		if err := w.clear(ctx, t.id); err != nil {
			return err
		}
		t.state = tableEmpty
	}
	return nil
}

func (w *waiter) clear(ctx context.Context, tableID model.TableID) error {
	orders, err := w.client.TableOrders(ctx, tableID)
	if err != nil {
		return err
	}

	for _, o := range orders {
		err := w.client.DeleteOrder(ctx, o.ID)
		if err != nil && !errors.Is(err, errUnexpectedStatus) {
			return err
		}
		if err != nil {
			// another client may have removed it first
			w.logger.Debug("Order already gone", zap.Int64("order_id", int64(o.ID)), zap.Error(err))
		}
	}
	w.logger.Info("Table cleared", zap.Uint32("table_id", uint32(tableID)), zap.Int("orders", len(orders)))
	return nil
}

// run serves tables from the shared queue until ctx is done.
func (w *waiter) run(ctx context.Context, tables chan *table, interval time.Duration) {
	for {
		select {
		case <-ctx.Done():
			return
		case t := <-tables:
			if err := w.serve(ctx, t); err != nil && ctx.Err() == nil {
				w.logger.Warn("Failed to serve table", zap.Uint32("table_id", uint32(t.id)), zap.Stringer("state", t.state), zap.Error(err))
			}
			tables <- t

			select {
			case <-ctx.Done():
				return
			case <-time.After(interval):
			}
		}
	}
}
