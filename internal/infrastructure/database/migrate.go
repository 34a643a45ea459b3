package database

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Migration directions.
const (
	Up   = "up"
	Down = "down"
)

// RunMigrations applies (up) or rolls back (down) the migrations in migrationsPath.
func RunMigrations(dsn, migrationsPath, direction string, log *slog.Logger) error {
	m, err := migrate.New(
		fmt.Sprintf("file://%s", migrationsPath),
		dsn,
	)
	if err != nil {
		return fmt.Errorf("migration init: %w", err)
	}
	defer m.Close()

	switch direction {
	case Up:
		err = m.Up()
	case Down:
		err = m.Steps(-1)
	default:
		return fmt.Errorf("migration: unknown direction %q", direction)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration %s: %w", direction, err)
	}

	version, dirty, _ := m.Version()
	log.Info("migrations applied", "direction", direction, "version", version, "dirty", dirty)
	return nil
}
