package components

import (
	"context"

	"fieldservice/internal/infra/notifier"
	"fieldservice/internal/infra/sqlitecache"
	"fieldservice/internal/infra/uow"
	"fieldservice/internal/pkg/config"
	"fieldservice/internal/usecase/shared"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		uow.NewPostgresUoW,
		NewAssignmentTimeCache,
		fx.Annotate(
			notifier.NewOutboxNotifier,
			fx.As(new(shared.Notifier)),
		),
	),
)

func NewAssignmentTimeCache(lc fx.Lifecycle, cfg config.Config) (shared.AssignmentTimeCache, error) {
	cache, err := sqlitecache.Open(cfg.Assignment.FallbackCachePath)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return cache.Close()
		},
	})
	return cache, nil
}
