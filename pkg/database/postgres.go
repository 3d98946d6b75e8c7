package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/seo-bandwagon/SEOBW-home-sub001/pkg/apperrors"
	"github.com/seo-bandwagon/SEOBW-home-sub001/pkg/config"
	"github.com/seo-bandwagon/SEOBW-home-sub001/pkg/retry"
)

// DB wraps a pgxpool connection pool over the externally-owned SEO store.
// This service only ever reads from it.
type DB struct {
	*pgxpool.Pool
}

// Connect creates a connection pool from the application database config.
// Callers must check cfg.Configured() first: an empty URL means the store
// is not provisioned and the service runs degraded without a pool.
func Connect(ctx context.Context, cfg *config.DatabaseConfig) (*DB, error) {
	if !cfg.Configured() {
		return nil, apperrors.ErrStoreNotConfigured
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	poolConfig.MaxConns = cfg.MaxConnections
	if poolConfig.MaxConns == 0 {
		poolConfig.MaxConns = 25
	}

	poolConfig.MaxConnLifetime = time.Duration(cfg.MaxConnLifetimeMinutes) * time.Minute
	if poolConfig.MaxConnLifetime == 0 {
		poolConfig.MaxConnLifetime = time.Hour
	}

	poolConfig.MaxConnIdleTime = time.Duration(cfg.MaxConnIdleMinutes) * time.Minute
	if poolConfig.MaxConnIdleTime == 0 {
		poolConfig.MaxConnIdleTime = time.Minute * 30
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	// The store may still be starting when this service comes up.
	if err := retry.Do(ctx, retry.DefaultConfig(), func() error {
		return pool.Ping(ctx)
	}); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{Pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	db.Pool.Close()
}
