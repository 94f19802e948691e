package bootstrap

import (
	"context"
	"log/slog"

	"olive-mill/internal/infra/db"
	"olive-mill/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return checkOverlapConstraint(ctx, pool)
		},
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

const overlapConstraintSQL = `SELECT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'bookings_no_overlap')`

// checkOverlapConstraint warns when the schema lacks the store-level guard
// against overlapping bookings. The service still starts.
func checkOverlapConstraint(ctx context.Context, pool *pgxpool.Pool) error {
	var present bool
	if err := pool.QueryRow(ctx, overlapConstraintSQL).Scan(&present); err != nil {
		return err
	}
	if !present {
		slog.Warn("bookings_no_overlap constraint missing, apply migrations with cmd/migrate")
	}
	return nil
}
