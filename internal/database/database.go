package database

import (
	"context"
	"fmt"
	"net/url"

	"ticket-engine/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

const applicationName = "ticket-engine"

// DSN builds the connection string for cfg. Credentials are escaped.
func DSN(cfg config.DatabaseConfig) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.User, cfg.Password),
		Host:   cfg.Host + ":" + cfg.Port,
		Path:   "/" + cfg.Name,
	}
	q := u.Query()
	q.Set("sslmode", "disable")
	q.Set("application_name", applicationName)
	u.RawQuery = q.Encode()
	return u.String()
}

// NewPool opens the pool backing the postgres key-value store.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		poolConfig.MaxConns = int32(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns >= 0 && int32(cfg.MaxIdleConns) <= poolConfig.MaxConns {
		poolConfig.MinConns = int32(cfg.MaxIdleConns)
	}
	poolConfig.MaxConnIdleTime = cfg.ConnMaxIdleTime
	poolConfig.MaxConnLifetime = cfg.ConnMaxLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping %s at %s: %w", cfg.Name, cfg.Host, err)
	}

	return pool, nil
}
