// Package db opens the configured database and owns the storage error of the repository layer.
package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	gormmysql "gorm.io/driver/mysql"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mohozompur-madrasa/madrasa-site/internal/config"
	"github.com/mohozompur-madrasa/madrasa-site/internal/db/dsn"
	"github.com/mohozompur-madrasa/madrasa-site/internal/db/models"
)

var (
	// ErrStorageUnavailable is returned by every repository operation the backing store failed.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Unavailable wraps err as ErrStorageUnavailable. A nil err stays nil.
func Unavailable(err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
}

// Dialector returns the gorm dialector of the configured engine.
func Dialector(cfg *config.DB) (gorm.Dialector, error) {
	switch cfg.GormEngine {
	case config.EngineMySQL:
		return gormmysql.Open(dsn.MySQL(cfg)), nil
	case config.EnginePostgres:
		return gormpostgres.Open(dsn.Postgres(cfg)), nil
	case config.EngineSQLite:
		path := dsn.SQLite(cfg)
		if path != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
				return nil, fmt.Errorf("can't create sqlite directory: %w", err)
			}
		}

		return sqlite.Open(path), nil
	default:
		return nil, config.ErrUnknownDBEngine
	}
}

// Open connects to the configured database and migrates the schema.
func Open(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := Dialector(&cfg.DB)
	if err != nil {
		return nil, err
	}

	logLevel := gormlogger.Warn
	if cfg.DevMode {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	// a sqlite file has a single writer
	if cfg.DB.GormEngine == config.EngineSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get sql db: %w", err)
		}

		sqlDB.SetMaxOpenConns(1)
	}

	if err = Migrate(db); err != nil {
		return nil, err
	}

	log.Info().Str("engine", cfg.DB.GormEngine).Msg("database ready")

	return db, nil
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	if db == nil {
		return ErrDBNil
	}

	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	return nil
}
