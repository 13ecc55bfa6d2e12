package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"eventify/internal/config"
	"eventify/internal/ports/output"
)

// Open builds the Store selected by cfg.Driver. Postgres databases are
// migrated before use.
func Open(ctx context.Context, cfg config.StoreConfig, logger zerolog.Logger) (output.Store, error) {
	var (
		store output.Store
		err   error
	)
	switch cfg.Driver {
	case "memory":
		store = NewMemoryStore()
	case "sqlite":
		store, err = NewSQLiteStore(ctx, cfg.Path)
	case "postgres":
		if err := RunMigrations(cfg.DatabaseURL, logger); err != nil {
			return nil, err
		}
		pool, perr := NewPool(ctx, cfg.DatabaseURL, logger)
		if perr != nil {
			return nil, fmt.Errorf("connect postgres: %w", perr)
		}
		store = NewPostgresStore(pool)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if cfg.CacheTTL > 0 {
		store = NewCachedStore(store, cfg.CacheTTL)
	}
	logger.Info().
		Str("driver", cfg.Driver).
		Dur("cache_ttl", cfg.CacheTTL).
		Msg("store opened")
	return store, nil
}
