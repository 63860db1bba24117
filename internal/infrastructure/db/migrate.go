package db

import (
	"database/sql"
	"fmt"

	"restaurant/migrations"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

type ZapGooseAdapter struct {
	*zap.Logger
}

func (z *ZapGooseAdapter) Fatalf(format string, v ...any) {
	z.Fatal(fmt.Sprintf(format, v...))
}

func (z *ZapGooseAdapter) Printf(format string, v ...any) {
	z.Info(fmt.Sprintf(format, v...))
}

func RunMigrations(dbConn *sql.DB, logger *zap.Logger) error {
	goose.SetLogger(&ZapGooseAdapter{Logger: logger})
	goose.SetBaseFS(migrations.EmbedFS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set database dialect: %w", err)
	}

	if err := goose.Up(dbConn, "."); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Database migrations applied successfully")
	return nil
}
