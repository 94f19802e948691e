package components

import (
	"olive-mill/internal/handler"
	"olive-mill/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewBatchHandler,
		api.NewMappingHandler,
		api.NewTankHandler,
		func(b *api.BookingHandler, bt *api.BatchHandler, m *api.MappingHandler, t *api.TankHandler) handler.Handlers {
			return handler.Handlers{Booking: b, Batch: bt, Mapping: m, Tank: t}
		},
	),
	fx.Invoke(handler.NewRouter),
)
