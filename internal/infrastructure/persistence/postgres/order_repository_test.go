package postgres

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"restaurant/internal/domain/catalog"
	"restaurant/internal/domain/model"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"go.uber.org/zap"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := tcPostgres.Run(ctx,
		"postgres:18-alpine",
		tcPostgres.WithDatabase("test_db"),
		tcPostgres.WithUsername("user"),
		tcPostgres.WithPassword("password"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err, "failed to start postgres container")

	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "failed to get connection string")

	db, err := sql.Open("pgx", connStr)
	require.NoError(t, err, "failed to open db connection")

	err = db.Ping()
	require.NoError(t, err, "failed to ping db")

	err = goose.Up(db, "../../../../migrations")
	require.NoError(t, err, "failed to apply migrations")

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func newTestRepo(t *testing.T) (*sql.DB, *OrderRepository) {
	t.Helper()
	db := setupTestDB(t)
	return db, NewOrderRepository(db, zap.NewNop()).(*OrderRepository)
}

func meal(t *testing.T, id model.MealID) model.MealInfo {
	t.Helper()
	m, ok := catalog.Default().Lookup(id)
	require.True(t, ok, "meal %d not in catalog", id)
	return m
}

func addOrder(t *testing.T, repo *OrderRepository, tableID model.TableID, mealID model.MealID) *model.Order {
	t.Helper()
	order := model.NewOrder(tableID, meal(t, mealID), time.Now())
	require.NoError(t, repo.Add(context.Background(), &order))
	return &order
}

func mealIDs(orders []*model.Order) []model.MealID {
	ids := make([]model.MealID, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.MealID)
	}
	return ids
}

func TestOrderRepository_AddAndGet(t *testing.T) {
	_, repo := newTestRepo(t)
	ctx := context.Background()

	for mealID := model.MealID(1); mealID <= 6; mealID++ {
		tableID := model.TableID(gofakeit.Number(0, 199))
		added := addOrder(t, repo, tableID, mealID)
		require.NotZero(t, added.ID)

		retrieved, err := repo.GetByID(ctx, added.ID)
		require.NoError(t, err)

		assert.Equal(t, added.ID, retrieved.ID)
		assert.Equal(t, tableID, retrieved.TableID)
		assert.Equal(t, mealID, retrieved.MealID)
		assert.Equal(t, meal(t, mealID).CookingTime, retrieved.ReadyAt.Sub(retrieved.AddedAt))
		assert.True(t, added.AddedAt.Equal(retrieved.AddedAt))
		assert.True(t, added.ReadyAt.Equal(retrieved.ReadyAt))
	}
}

func TestOrderRepository_Add_AssignsIncreasingIDs(t *testing.T) {
	_, repo := newTestRepo(t)

	first := addOrder(t, repo, 1, 1)
	second := addOrder(t, repo, 1, 1)
	third := addOrder(t, repo, 2, 4)

	assert.Less(t, first.ID, second.ID)
	assert.Less(t, second.ID, third.ID)
}

func TestOrderRepository_Add_ConcurrentUniqueIDs(t *testing.T) {
	_, repo := newTestRepo(t)
	ctx := context.Background()

	const workers = 32
	meals := catalog.Default().All()
	ids := make(chan model.OrderID, workers)
	errs := make(chan error, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			order := model.NewOrder(model.TableID(i%4), meals[i%len(meals)], time.Now())
			if err := repo.Add(ctx, &order); err != nil {
				errs <- err
				return
			}
			ids <- order.ID
		}()
	}
	wg.Wait()
	close(ids)
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	seen := make(map[model.OrderID]struct{}, workers)
	for id := range ids {
		_, dup := seen[id]
		require.False(t, dup, "id %d assigned twice", id)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, workers)
}

func TestOrderRepository_GetByID_NotFound(t *testing.T) {
	_, repo := newTestRepo(t)
	ctx := context.Background()

	addOrder(t, repo, 1, 1)

	for _, id := range []model.OrderID{0, -1, 999999} {
		_, err := repo.GetByID(ctx, id)
		assert.ErrorIs(t, err, model.ErrOrderNotFound)
	}
}

func TestOrderRepository_Delete(t *testing.T) {
	_, repo := newTestRepo(t)
	ctx := context.Background()

	order := addOrder(t, repo, 1, 3)

	deleted, err := repo.Delete(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = repo.GetByID(ctx, order.ID)
	assert.ErrorIs(t, err, model.ErrOrderNotFound)

	orders, err := repo.ListByTable(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, orders)

	deleted, err = repo.Delete(ctx, order.ID)
	require.NoError(t, err)
	assert.False(t, deleted, "second delete must report no live order")

	_, err = repo.GetByID(ctx, order.ID)
	assert.ErrorIs(t, err, model.ErrOrderNotFound)
}

func TestOrderRepository_Delete_NeverIssued(t *testing.T) {
	_, repo := newTestRepo(t)

	deleted, err := repo.Delete(context.Background(), 12345)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestOrderRepository_Delete_IsSoft(t *testing.T) {
	db, repo := newTestRepo(t)
	ctx := context.Background()

	order := addOrder(t, repo, 5, 2)
	_, err := repo.Delete(ctx, order.ID)
	require.NoError(t, err)

	var deletedAt sql.NullTime
	err = db.QueryRow("SELECT deleted_at FROM orders WHERE id = $1", int64(order.ID)).Scan(&deletedAt)
	require.NoError(t, err, "soft-deleted row must still exist")
	assert.True(t, deletedAt.Valid)
}

func TestOrderRepository_ListByTable_InsertionOrder(t *testing.T) {
	_, repo := newTestRepo(t)
	ctx := context.Background()

	addOrder(t, repo, 1, 1)
	addOrder(t, repo, 2, 5)
	addOrder(t, repo, 1, 1)
	addOrder(t, repo, 1, 2)

	orders, err := repo.ListByTable(ctx, 1)
	require.NoError(t, err)

	require.Len(t, orders, 3)
	assert.Equal(t, []model.MealID{1, 1, 2}, mealIDs(orders))
	for i, o := range orders {
		assert.Equal(t, model.TableID(1), o.TableID)
		if i > 0 {
			assert.Less(t, orders[i-1].ID, o.ID)
		}
	}
}

func TestOrderRepository_ListByTable_ExcludesDeleted(t *testing.T) {
	_, repo := newTestRepo(t)
	ctx := context.Background()

	first := addOrder(t, repo, 7, 1)
	second := addOrder(t, repo, 7, 2)
	third := addOrder(t, repo, 7, 3)

	_, err := repo.Delete(ctx, second.ID)
	require.NoError(t, err)

	orders, err := repo.ListByTable(ctx, 7)
	require.NoError(t, err)

	require.Len(t, orders, 2)
	assert.Equal(t, first.ID, orders[0].ID)
	assert.Equal(t, third.ID, orders[1].ID)
}

func TestOrderRepository_ListByTable_Empty(t *testing.T) {
	_, repo := newTestRepo(t)

	orders, err := repo.ListByTable(context.Background(), 42)
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestOrderRepository_ListByTableAndMeal(t *testing.T) {
	_, repo := newTestRepo(t)
	ctx := context.Background()

	first := addOrder(t, repo, 3, 4)
	addOrder(t, repo, 3, 5)
	second := addOrder(t, repo, 3, 4)
	addOrder(t, repo, 4, 4)
	deleted := addOrder(t, repo, 3, 4)

	_, err := repo.Delete(ctx, deleted.ID)
	require.NoError(t, err)

	orders, err := repo.ListByTableAndMeal(ctx, 3, 4)
	require.NoError(t, err)

	require.Len(t, orders, 2)
	assert.Equal(t, first.ID, orders[0].ID)
	assert.Equal(t, second.ID, orders[1].ID)
	for _, o := range orders {
		assert.True(t, o.SameMeal(*first))
	}
}

func TestOrderRepository_Add_RejectsInvalidTimestamps(t *testing.T) {
	db, repo := newTestRepo(t)
	ctx := context.Background()

	order := model.NewOrder(1, meal(t, 1), time.Now())
	order.ReadyAt = order.AddedAt

	err := repo.Add(ctx, &order)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrStorageFailure)
	assert.Zero(t, order.ID)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM orders").Scan(&count))
	assert.Equal(t, 0, count, "failed insert must leave no row behind")
}

func TestOrderRepository_Add_ContextCanceled(t *testing.T) {
	_, repo := newTestRepo(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	order := model.NewOrder(9, meal(t, 6), time.Now())
	err := repo.Add(ctx, &order)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, model.ErrStorageFailure)

	orders, err := repo.ListByTable(context.Background(), 9)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderRepository_StorageUnavailable(t *testing.T) {
	db, repo := newTestRepo(t)
	ctx := context.Background()
	require.NoError(t, db.Close())

	order := model.NewOrder(1, meal(t, 1), time.Now())
	assert.ErrorIs(t, repo.Add(ctx, &order), model.ErrStorageFailure)

	_, err := repo.GetByID(ctx, 1)
	assert.ErrorIs(t, err, model.ErrStorageFailure)
	assert.NotErrorIs(t, err, model.ErrOrderNotFound)

	_, err = repo.Delete(ctx, 1)
	assert.ErrorIs(t, err, model.ErrStorageFailure)

	_, err = repo.ListByTable(ctx, 1)
	assert.ErrorIs(t, err, model.ErrStorageFailure)

	_, err = repo.ListByTableAndMeal(ctx, 1, 1)
	assert.ErrorIs(t, err, model.ErrStorageFailure)
}
