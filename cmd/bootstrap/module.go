package bootstrap

import (
	"fieldservice/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// CoreModule wires everything a command needs to run usecases against the
// database. It starts no listeners.
var CoreModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	MetricsModule,
	components.RepositoryModule,
	components.UseCaseModule,
)

// Module is the full HTTP service including the background expiry worker.
var Module = fx.Options(
	CoreModule,
	JWTModule,
	components.HandlerModule,
	WorkerModule,
)
