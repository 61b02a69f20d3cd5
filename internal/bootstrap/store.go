package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/TextRealm_Go/internal/config"
	"github.com/osse101/TextRealm_Go/internal/database"
	"github.com/osse101/TextRealm_Go/internal/database/memory"
	"github.com/osse101/TextRealm_Go/internal/database/postgres"
	"github.com/osse101/TextRealm_Go/internal/database/sqlite"
	"github.com/osse101/TextRealm_Go/internal/repository"
)

// OpenStore opens the backend selected by cfg.DBDriver. PostgreSQL
// migrations run only when cfg.RunMigrations is set; SQLite always migrates
// on open.
func OpenStore(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), database.PoolOptions{
			MaxConns:    cfg.DBMaxConns,
			MinConns:    cfg.DBMinConns,
			MaxIdleTime: DBMaxIdleTime,
			MaxLifetime: DBMaxLifetime,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
		}
		store := postgres.NewStore(pool)
		if cfg.RunMigrations {
			if err := store.Migrate(ctx); err != nil {
				_ = store.Close()
				return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
			}
		} else {
			slog.Info(LogMsgMigrationsSkip, "driver", cfg.DBDriver)
		}
		slog.Info(LogMsgStoreOpened, "driver", cfg.DBDriver, "host", cfg.DBHost, "db", cfg.DBName)
		return store, nil

	case config.DriverSQLite:
		store, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
		}
		slog.Info(LogMsgStoreOpened, "driver", cfg.DBDriver, "path", cfg.SQLitePath)
		return store, nil

	case config.DriverMemory:
		slog.Info(LogMsgStoreOpened, "driver", cfg.DBDriver)
		return memory.NewStore(), nil
	}
	return nil, fmt.Errorf("%s: %q", ErrMsgUnknownDriver, cfg.DBDriver)
}
