package database

import (
	"errors"
	"fmt"
	"net/url"

	"campus-core/internal/config"
	"campus-core/pkg/logger"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunSchedulingMigrations applies the file-based migrations under
// internal/database/migrations that add the constraints and indexes the
// scheduling core depends on (the per-day/teacher/classroom/group uniqueness
// the conflict kernel assumes is enforced at the database level too) on top
// of whatever GORM's AutoMigrate already created.
func RunSchedulingMigrations(cfg *config.DatabaseConfig) error {
	migrationPath := "file://internal/database/migrations"

	databaseURL := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		cfg.User, url.QueryEscape(cfg.Password), cfg.Host, cfg.Port, cfg.DBName, cfg.SSLMode)

	m, err := migrate.New(migrationPath, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("No new scheduling migrations to apply")
			return nil
		}
		return fmt.Errorf("failed to run scheduling migrations: %w", err)
	}

	logger.Info("Scheduling database migrations applied successfully")
	return nil
}
