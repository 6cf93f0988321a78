package bootstrap

import (
	"fieldservice/internal/pkg/config"
	"fieldservice/internal/usecase/assignment"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		func(engine assignment.Engine, cfg config.Config) *assignment.Worker {
			return assignment.NewWorker(engine, cfg.Assignment.ScanInterval)
		},
	),
	fx.Invoke(func(lc fx.Lifecycle, w *assignment.Worker) {
		lc.Append(fx.Hook{
			OnStart: w.Start,
			OnStop:  w.Stop,
		})
	}),
)
