package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"restaurant/internal/domain/model"

	"github.com/brianvoe/gofakeit/v7"
	"go.uber.org/zap"
)

var (
	addrFlag     = flag.String("addr", "http://localhost:8080", "Order service base URL")
	tablesFlag   = flag.Int("tables", 20, "Number of tables to serve")
	waitersFlag  = flag.Int("waiters", 4, "Number of concurrent waiters")
	maxMealsFlag = flag.Int("max-meals", 4, "Maximum meals ordered per seating")
	intervalFlag = flag.Duration("interval", 500*time.Millisecond, "Pause between waiter actions")
	timeoutFlag  = flag.Duration("timeout", 5*time.Second, "HTTP request timeout")
)

func main() {
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			fmt.Fprintf(os.Stderr, "logger sync failed: %v\n", err)
		}
	}()

	if *tablesFlag < 1 || *waitersFlag < 1 || *maxMealsFlag < 1 {
		logger.Fatal("tables, waiters and max-meals must be positive")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client := newOrderClient(*addrFlag, *timeoutFlag)

	meals, err := client.Meals(ctx)
	if err != nil {
		logger.Fatal("Failed to fetch meal catalog", zap.Error(err))
	}
	if len(meals) == 0 {
		logger.Fatal("Meal catalog is empty")
	}
	mealIDs := make([]model.MealID, 0, len(meals))
	for _, m := range meals {
		mealIDs = append(mealIDs, m.ID)
	}

	tables := make(chan *table, *tablesFlag)
	for i := range *tablesFlag {
		tables <- &table{id: model.TableID(i + 1)}
	}

	logger.Info("Waiters started",
		zap.String("addr", *addrFlag),
		zap.Int("tables", *tablesFlag),
		zap.Int("waiters", *waitersFlag),
		zap.Duration("interval", *intervalFlag))

	var wg sync.WaitGroup
	for i := range *waitersFlag {
		w := &waiter{
			client:   client,
			meals:    mealIDs,
			maxMeals: *maxMealsFlag,
			faker:    gofakeit.New(0),
			logger:   logger.With(zap.Int("waiter", i+1)),
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.run(ctx, tables, *intervalFlag)
		}()
	}

	<-ctx.Done()
	logger.Info("Stopping waiters...")
	wg.Wait()
}
