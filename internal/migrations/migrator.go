package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed schema/*.sql
var migrationFiles embed.FS

// Migrator управляет миграциями базы данных
type Migrator struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewMigrator создает новый экземпляр migrator
func NewMigrator(db *sql.DB, logger *zap.Logger) *Migrator {
	return &Migrator{
		db:     db,
		logger: logger,
	}
}

func (m *Migrator) instance() (*migrate.Migrate, error) {
	source, err := iofs.New(migrationFiles, "schema")
	if err != nil {
		return nil, fmt.Errorf("failed to create migration source: %w", err)
	}

	driver, err := postgres.WithInstance(m.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	instance, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}
	return instance, nil
}

// RunUp применяет все миграции вверх
func (m *Migrator) RunUp() error {
	m.logger.Info("Starting database migrations")

	instance, err := m.instance()
	if err != nil {
		return err
	}
	defer instance.Close()

	err = instance.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		m.logger.Info("No migrations to apply")
	case err != nil:
		return fmt.Errorf("failed to run migrations: %w", err)
	default:
		m.logger.Info("Migrations applied successfully")
	}
	return nil
}

// RunDown откатывает steps миграций
func (m *Migrator) RunDown(steps int) error {
	if steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", steps)
	}

	instance, err := m.instance()
	if err != nil {
		return err
	}
	defer instance.Close()

	if err := instance.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to roll back migrations: %w", err)
	}
	m.logger.Info("Migrations rolled back", zap.Int("steps", steps))
	return nil
}

// GetVersion возвращает текущую версию миграций
func (m *Migrator) GetVersion() (uint, bool, error) {
	instance, err := m.instance()
	if err != nil {
		return 0, false, err
	}
	defer instance.Close()

	version, dirty, err := instance.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}
