package components

import (
	"fieldservice/internal/pkg/clock"
	"fieldservice/internal/usecase/assignment"
	"fieldservice/internal/usecase/commands"
	"fieldservice/internal/usecase/queries"
	"fieldservice/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
	usecaseAssignmentModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	shared.NewPolicy,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		commands.NewProductRequestUseCase,
		commands.NewReferralUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewEarningsQueries,
		queries.NewProductRequestQueries,
		queries.NewReferralQueries,
	),
)

var usecaseAssignmentModule = fx.Module("usecase/assignment",
	fx.Provide(
		assignment.NewEngine,
	),
)
