package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/Pesokrava/tournament_registry/internal/config"
	"github.com/Pesokrava/tournament_registry/internal/pkg/logger"
	"github.com/Pesokrava/tournament_registry/internal/pkg/retry"
)

// NewPostgresDB opens a PostgreSQL connection pool and verifies it with a ping
func NewPostgresDB(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "postgres", cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// WaitForDB waits for the database to become available, then applies
// migrations when enabled in cfg
func WaitForDB(cfg *config.Config, log *logger.Logger, maxRetries int, retryDelay time.Duration) (*sqlx.DB, error) {
	var db *sqlx.DB

	err := retry.Do(context.Background(), retry.Policy{
		Attempts: maxRetries,
		Backoff:  retryDelay,
		OnRetry: func(attempt int, err error, wait time.Duration) {
			log.WithFields(map[string]any{
				"attempt": attempt,
				"wait_ms": wait.Milliseconds(),
			}).Warnf("Database not ready: %v", err)
		},
	}, func(ctx context.Context) error {
		connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		var err error
		db, err = NewPostgresDB(connectCtx, cfg)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d retries: %w", maxRetries, err)
	}

	if !cfg.Database.RunMigrations {
		return db, nil
	}

	version, err := RunMigrations(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	log.Infof("Database schema at version %d", version)

	return db, nil
}
