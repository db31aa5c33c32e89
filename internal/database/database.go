// Package database connects the service to Postgres and applies schema
// migrations on startup.
package database

import (
	"fmt"
	"time"

	"github.com/Gobusters/ectologger"
	"github.com/Ramsey-B/stem/pkg/database"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/carolbonk/fairmediator/config"
)

// Connect opens a Postgres connection pool, verifies it with a ping, and
// applies pending migrations from the configured folder.
func Connect(cfg *config.Config, logger ectologger.Logger) (database.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DatabaseHost,
		cfg.DatabasePort,
		cfg.DatabaseUserName,
		cfg.DatabasePassword,
		cfg.DatabaseName,
		cfg.DatabaseSSLMode,
	)

	var db *sqlx.DB
	var err error
	for attempt := 0; attempt <= cfg.DatabaseReconnectRetryCount; attempt++ {
		db, err = sqlx.Connect(cfg.DatabaseDriver, dsn)
		if err == nil {
			break
		}
		logger.WithError(err).Warnf("Failed to connect to database, attempt %d", attempt+1)
		time.Sleep(time.Second * time.Duration(attempt+1))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(cfg.DatabaseMaxOpenConns)
	db.SetMaxIdleConns(cfg.DatabaseMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DatabaseConnMaxLifetime)

	if err := migrateUp(cfg, logger, db); err != nil {
		return nil, err
	}

	return database.NewDatabaseInstance(db, logger), nil
}

func migrateUp(cfg *config.Config, logger ectologger.Logger, db *sqlx.DB) error {
	driver, err := migratepg.WithInstance(db.DB, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	ms := database.NewMigrationService(logger, &database.MigrationConfig{
		MigrationFolderPath: cfg.DatabaseMigrationFolderPath,
		Version:             uint(cfg.DatabaseMigrationVersion),
		Force:               cfg.DatabaseMigrationForce,
		AutoRollback:        cfg.DatabaseMigrationAutoRollback,
	})

	if err := ms.Migrate(cfg.DatabaseName, driver); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
