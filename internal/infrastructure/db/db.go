package db

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
)

type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// NewDB opens a pgx-backed connection pool shared by all request handlers.
func NewDB(ctx context.Context, dsn string, pool PoolConfig, logger *zap.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		logger.Error("Failed to open DB connection", zap.Error(err))
		return nil, err
	}

	db.SetMaxOpenConns(pool.MaxOpenConns)
	db.SetMaxIdleConns(pool.MaxIdleConns)
	db.SetConnMaxLifetime(pool.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		logger.Error("Failed to ping DB", zap.Error(err))
		_ = db.Close()
		return nil, err
	}
	logger.Info("DB is ready", zap.Int("max_open_conns", pool.MaxOpenConns))
	return db, nil
}
