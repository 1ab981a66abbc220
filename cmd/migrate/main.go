// Command migrate creates or updates the database schema and exits.
package main

import (
	"context"
	"log/slog"

	"foodsafe/config"
	logs "foodsafe/internal/infra/log"
	"foodsafe/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Invoke(migrate),
	).Run()
}

func migrate(lc fx.Lifecycle, shutdowner fx.Shutdowner, db *gorm.DB, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				exitCode := 0
				if err := postgres.Migrate(context.Background(), db); err != nil {
					logger.Error("Schema migration failed", slog.Any("error", err))
					exitCode = 1
				} else {
					logger.Info("Schema migrated")
				}

				if err := shutdowner.Shutdown(fx.ExitCode(exitCode)); err != nil {
					logger.Error("Failed to shutdown", slog.Any("error", err))
				}
			}()

			return nil
		},
	})
}
