package db

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"club-booking/internal/pkg/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // registers pgx5://
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Migrate applies every pending migration found under dir in fsys. Each service
// keeps its own version table so both can share one database in tests.
func Migrate(cfg config.DBConfig, fsys fs.FS, dir, table string) error {
	src, err := iofs.New(fsys, dir)
	if err != nil {
		return fmt.Errorf("failed to open migrations %q: %w", dir, err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, migrateURL(cfg, table))
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() {
		_, _ = m.Close()
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func migrateURL(cfg config.DBConfig, table string) string {
	dsn := strings.Replace(cfg.BuildDSN(), "postgres://", "pgx5://", 1)
	return dsn + "&x-migrations-table=" + table
}
