// Command migrate applies the embedded goose migrations.
//
//	migrate -cmd up
//	migrate -cmd status
//	migrate -cmd version -version 20260301000001
package main

import (
	"context"
	"flag"
	"log/slog"

	"servicehub/config"
	"servicehub/internal/errors"
	logs "servicehub/internal/infra/log"
	"servicehub/internal/infra/persistence/migrations"
	"servicehub/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

type migrateFlags struct {
	cmd     string
	version string
}

type migrateParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	DB     *gorm.DB
	Logger *slog.Logger
}

func main() {
	var flags migrateFlags
	flag.StringVar(&flags.cmd, "cmd", "up", "migration command: up|down|status|redo|version")
	flag.StringVar(&flags.version, "version", "", "target version (YYYYMMDDHHMMSS) for -cmd=version")
	flag.Parse()

	fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Supply(flags),
		fx.Invoke(registerMigration),
	).Run()
}

// registerMigration runs after the database OnStart ping and shuts the app down with the outcome.
func registerMigration(params migrateParams, flags migrateFlags) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				exitCode := 0
				if err := migrate(context.Background(), params.DB, flags); err != nil {
					params.Logger.Error("Migration failed", slog.String("cmd", flags.cmd), slog.Any("error", err))
					exitCode = 1
				} else {
					params.Logger.Info("Migration finished", slog.String("cmd", flags.cmd))
				}

				if err := params.Shutdown(fx.ExitCode(exitCode)); err != nil {
					params.Logger.Error("Failed to shutdown", slog.Any("error", err))
				}
			}()

			return nil
		},
	})
}

func migrate(ctx context.Context, db *gorm.DB, flags migrateFlags) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB")
	}

	if flags.cmd == "version" {
		if flags.version == "" {
			return errors.New("missing -version for -cmd=version")
		}

		return migrations.MigrateTo(ctx, sqlDB, flags.version)
	}

	return migrations.Run(ctx, sqlDB, flags.cmd)
}
