package database

import (
	"context"
	"database/sql"
	"embed"
	"log"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const connectAttempts = 3

// connectRetryDelay is a var so tests do not sleep for real.
var connectRetryDelay = 2 * time.Second

// NewPgxPool builds the connection pool and verifies it with a ping,
// retrying with a fixed delay so the service survives a store that is
// still coming up.
func NewPgxPool(ctx context.Context, url string) (DB, error) {
	var lastErr error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		pool, err := pgxpool.New(ctx, url)
		if err != nil {
			return nil, err
		}
		if err := pool.Ping(ctx); err == nil {
			return pool, nil
		} else {
			lastErr = err
			pool.Close()
		}
		if attempt < connectAttempts {
			log.Printf("postgres not ready (attempt %d/%d): %v", attempt, connectAttempts, lastErr)
			time.Sleep(connectRetryDelay)
		}
	}
	return nil, lastErr
}

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations applies the embedded SQL migrations (up all).
func RunMigrations(dbURL string) error {
	sqlDB, err := sql.Open("pgx", dbURL)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		return err
	}

	sourceDriver, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", sourceDriver, "postgres", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}
