package bootstrap

import (
	"context"
	"log/slog"

	"olive-mill/internal/infra/ledger"
	"olive-mill/internal/pkg/config"
	"olive-mill/internal/usecase/shared"

	"go.uber.org/fx"
)

var LedgerModule = fx.Module("ledger",
	fx.Provide(
		NewMovementLedger,
	),
)

func NewMovementLedger(cfg config.Config, logger *slog.Logger) (shared.MovementLedger, error) {
	if !cfg.Ledger.Enabled() {
		logger.Info("movement ledger disabled")
		return ledger.NopLedger{}, nil
	}

	client, err := ledger.NewDynamoDBClient(context.Background(), cfg.Ledger)
	if err != nil {
		return nil, err
	}
	logger.Info("movement ledger enabled", "table", cfg.Ledger.Table)
	return ledger.NewDynamoLedger(client, cfg.Ledger.Table), nil
}
