package bootstrap

import (
	"context"
	"io/fs"
	"log/slog"

	"club-booking/internal/infra/db"
	"club-booking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// MigrationSource selects the embedded migration set of one service.
type MigrationSource struct {
	FS    fs.FS
	Dir   string
	Table string
}

func MigrationModule(src MigrationSource) fx.Option {
	return fx.Module("migration",
		fx.Supply(src),
		fx.Invoke(RunMigrations),
	)
}

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

// RunMigrations depends on the pool so the database is known reachable first.
func RunMigrations(cfg config.Config, src MigrationSource, _ *pgxpool.Pool, logger *slog.Logger) error {
	if err := db.Migrate(cfg.DB, src.FS, src.Dir, src.Table); err != nil {
		return err
	}
	logger.Info("migrations applied", "dir", src.Dir)
	return nil
}
