package bootstrap

import (
	"olive-mill/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	LedgerModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
