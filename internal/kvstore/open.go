package kvstore

import (
	"context"
	"fmt"

	"ticket-engine/internal/config"
	"ticket-engine/internal/database"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Open builds the backend selected by cfg.Storage.Backend. The returned
// closer releases any connection the backend holds.
func Open(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (Store, func(), error) {
	noop := func() {}

	switch cfg.Storage.Backend {
	case "memory":
		return NewMemoryStore(), noop, nil

	case "file", "":
		store, err := NewFileStore(cfg.Storage.Dir)
		if err != nil {
			return nil, noop, err
		}
		return store, noop, nil

	case "postgres":
		pool, err := database.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, noop, fmt.Errorf("failed to connect to database: %w", err)
		}
		store := NewPostgresStore(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, noop, err
		}
		return store, pool.Close, nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, noop, fmt.Errorf("failed to ping redis: %w", err)
		}
		closer := func() {
			if err := client.Close(); err != nil {
				logger.Warn().Err(err).Msg("failed to close redis client")
			}
		}
		return NewRedisStore(client, cfg.Redis.KeyPrefix), closer, nil

	default:
		return nil, noop, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
