package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"fieldservice/internal/infra/db"
	"fieldservice/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(NewDB),
)

// requiredTables must exist before the service accepts work; a missing one
// means migrations/ was not applied to this database.
var requiredTables = []string{
	"specialists", "service_catalog", "products", "bookings",
	"product_requests", "referral_commissions", "notification_jobs",
}

func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, closePool, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := CheckSchema(ctx, pool); err != nil {
				return err
			}
			logger.Info("database ready", "host", cfg.DB.Host, "database", cfg.DB.DBName, "max_conns", pool.Config().MaxConns)
			return nil
		},
		OnStop: func(_ context.Context) error {
			closePool()
			return nil
		},
	})
	return pool, nil
}

// CheckSchema fails when any table the service needs is absent.
func CheckSchema(ctx context.Context, pool *pgxpool.Pool) error {
	var missing []string
	err := pool.QueryRow(ctx, `
		SELECT coalesce(array_agg(t), '{}')
		FROM unnest($1::text[]) AS t
		WHERE to_regclass('public.' || t) IS NULL`, requiredTables).Scan(&missing)
	if err != nil {
		return fmt.Errorf("failed to inspect schema: %w", err)
	}
	if len(missing) > 0 {
		return fmt.Errorf("database schema is missing tables %v: apply migrations/ first", missing)
	}
	return nil
}
