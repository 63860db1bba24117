package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"restaurant/internal/application/usecases"
	"restaurant/internal/application/validation"
	"restaurant/internal/domain/catalog"
	"restaurant/internal/domain/repository"
	"restaurant/internal/infrastructure/cache"
	"restaurant/internal/infrastructure/config"
	"restaurant/internal/infrastructure/db"
	"restaurant/internal/infrastructure/http/handlers"
	"restaurant/internal/infrastructure/http/server"
	kafkainfra "restaurant/internal/infrastructure/messaging/kafka"
	"restaurant/internal/infrastructure/metrics"
	"restaurant/internal/infrastructure/persistence/postgres"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			fmt.Fprintf(os.Stderr, "logger sync failed: %v\n", err)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbConn, err := db.NewDB(ctx, cfg.Database.DSN(), db.PoolConfig{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}, logger)
	if err != nil {
		logger.Fatal("DB connection failed", zap.Error(err))
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("Failed to close DB connection", zap.Error(err))
		}
	}()

	if err := db.RunMigrations(dbConn, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	meals, err := loadCatalog(cfg.Catalog)
	if err != nil {
		logger.Fatal("Failed to load meal catalog", zap.Error(err), zap.String("path", cfg.Catalog.Path))
	}
	logger.Info("Meal catalog loaded", zap.Int("meals", len(meals.All())))

	var orderCache repository.OrderCache = cache.NopOrderCache{}
	if cfg.Redis.Addr != "" {
		orderCache = cache.NewOrderCache(cache.NewCache(cfg.Redis.Addr, cfg.Redis.TTL, logger))
	}
	defer func() {
		if err := orderCache.Close(); err != nil {
			logger.Error("Failed to close cache", zap.Error(err))
		}
	}()

	var publisher repository.OrderEventPublisher = kafkainfra.NopPublisher{}
	if cfg.Kafka.Enabled() {
		publisher = kafkainfra.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.EventsTopic, logger)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("Failed to close event publisher", zap.Error(err))
		}
	}()

	orderMetrics := metrics.NewOrderMetrics(prometheus.DefaultRegisterer)
	orderRepo := postgres.NewOrderRepository(dbConn, logger)
	validator := validation.NewValidator()

	addOrderUC := usecases.NewAddOrderUseCase(meals, orderRepo, publisher, validator, orderMetrics, logger)
	getOrderUC := usecases.NewGetOrderUseCase(orderRepo, orderCache, orderMetrics, logger)
	deleteOrderUC := usecases.NewDeleteOrderUseCase(orderRepo, orderCache, publisher, orderMetrics, logger)
	listOrdersUC := usecases.NewListTableOrdersUseCase(orderRepo, orderMetrics, logger)

	var wg sync.WaitGroup
	if cfg.Kafka.Enabled() && cfg.Kafka.IntakeTopic != "" {
		reader := kafkainfra.NewReader(cfg.Kafka.Brokers, cfg.Kafka.IntakeTopic, cfg.Kafka.GroupID)
		wg.Add(1)
		go kafkainfra.ConsumeOrders(ctx, &wg, reader, addOrderUC, validator, logger)
	}

	orderHandler := handlers.NewOrderHandler(addOrderUC, getOrderUC, deleteOrderUC, listOrdersUC, logger)
	mealHandler := handlers.NewMealHandler(meals)
	srv := server.NewServer(orderHandler, mealHandler, orderMetrics, logger)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start(":" + cfg.HTTP.Port)
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			logger.Error("HTTP server failed", zap.Error(err))
		}
		stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", zap.Error(err))
	}

	wg.Wait()
	logger.Info("Service stopped")
}

func loadCatalog(cfg config.CatalogConfig) (*catalog.Catalog, error) {
	if cfg.Path == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(cfg.Path)
}
