package database

import (
	"embed"
	"errors"
	"fmt"

	"github.com/sanish-bhagat/Health-Sathi/config"
	domainRepo "github.com/sanish-bhagat/Health-Sathi/internal/domain/repository"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Open creates or opens the on-disk store at cfg.Path, applies the
// versioned schema migrations, and returns the connection handle.
// Opening is idempotent: migrations already applied are skipped and
// existing data is never touched. Failures to open or migrate surface
// as ErrStoreUnavailable.
//
// SQLite allows a single writer at a time, so the connection pool is
// pinned to one connection. Callers own the handle lifecycle and must
// Close it on shutdown.
func Open(cfg config.StoreConfig) (*gorm.DB, error) {
	if err := runMigrations(cfg.Path); err != nil {
		return nil, fmt.Errorf("%w: %v", domainRepo.ErrStoreUnavailable, err)
	}

	dsn := fmt.Sprintf(
		"file:%s?_busy_timeout=%d&_journal_mode=WAL&_foreign_keys=on",
		cfg.Path, cfg.BusyTimeout.Milliseconds(),
	)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainRepo.ErrStoreUnavailable, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainRepo.ErrStoreUnavailable, err)
	}

	// Single writer to avoid SQLITE_BUSY between concurrent mutators.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("%w: %v", domainRepo.ErrStoreUnavailable, err)
	}

	logrus.Infof("Local store opened at %s", cfg.Path)

	return db, nil
}

// Close releases the underlying connection. Safe to call once the
// handle is no longer in use.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// runMigrations applies the embedded schema migrations to the database
// file, creating it on first use. The schema version is tracked inside
// the database, so re-running against an already-migrated store is a
// no-op.
func runMigrations(path string) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, "sqlite3://"+path)
	if err != nil {
		return fmt.Errorf("open migration target: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		m.Close()
		return fmt.Errorf("apply migrations: %w", err)
	}

	srcErr, dbErr := m.Close()
	if srcErr != nil {
		return fmt.Errorf("close migration source: %w", srcErr)
	}
	if dbErr != nil {
		return fmt.Errorf("close migration target: %w", dbErr)
	}

	return nil
}
