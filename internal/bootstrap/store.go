package bootstrap

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/br0k3x/osul-bot/internal/config"
	"github.com/br0k3x/osul-bot/internal/database"
	"github.com/br0k3x/osul-bot/internal/database/postgres"
	"github.com/br0k3x/osul-bot/internal/linking"
)

// Store holds the database pool and the repositories built on it.
// Both are nil when no database is configured.
type Store struct {
	Pool  *pgxpool.Pool
	Links linking.Repository
}

// OpenStore connects to PostgreSQL and applies migrations. The database is
// optional: with no DATABASE_URL, or when it cannot be reached or migrated,
// the returned Store is empty and linking operations report the store as
// unavailable while the rest of the service keeps running.
func OpenStore(ctx context.Context, cfg *config.Config) *Store {
	if cfg.DatabaseURL == "" {
		slog.Warn(LogMsgDatabaseDisabled)
		return &Store{}
	}

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, DBMaxConnIdleTime, DBMaxConnLifetime)
	if err != nil {
		slog.Error(LogMsgDatabaseUnavailable, "error", err)
		return &Store{}
	}

	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		slog.Error(LogMsgDatabaseUnavailable, "error", err)
		return &Store{}
	}

	return &Store{
		Pool:  pool,
		Links: postgres.NewLinkRepository(pool),
	}
}

// DBPool returns the pool for health checks, or an untyped nil when the
// database is disabled.
func (s *Store) DBPool() database.Pool {
	if s.Pool == nil {
		return nil
	}
	return s.Pool
}

// Close releases the pool, if any.
func (s *Store) Close() {
	if s.Pool != nil {
		s.Pool.Close()
	}
}
