package components

import (
	"olive-mill/internal/domain/batch"
	"olive-mill/internal/domain/capacity"
	"olive-mill/internal/domain/schedule"
	"olive-mill/internal/pkg/clock"
	"olive-mill/internal/pkg/config"
	"olive-mill/internal/usecase/commands"
	"olive-mill/internal/usecase/queries"
	"olive-mill/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) *schedule.Scheduler {
		return schedule.NewScheduler(cfg.Milling.SlotStep, cfg.Milling.SlotMaxAttempts)
	},
	func(cfg config.Config) *batch.Aggregator {
		return batch.NewAggregator(cfg.Milling.ByproductRatio)
	},
	func(cfg config.Config) (*capacity.Guard, error) {
		return capacity.NewGuard(cfg.Milling.YieldMin, cfg.Milling.YieldMax)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(uow shared.UnitOfWork, s *schedule.Scheduler, cfg config.Config, clk clock.Clock) commands.BookingCommands {
			return commands.NewBookingUseCase(uow, s, cfg.Milling.SlotSearchHorizon, clk)
		},
		commands.NewBatchUseCase,
		commands.NewMappingUseCase,
		commands.NewTankUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewMappingQueries,
	),
)
