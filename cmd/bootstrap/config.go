package bootstrap

import (
	"log/slog"

	"olive-mill/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logMillingConstants),
)

// logMillingConstants records the plant constants in effect at startup.
func logMillingConstants(cfg config.Config, logger *slog.Logger) {
	m := cfg.Milling
	logger.Info("milling constants",
		"byproduct_ratio", m.ByproductRatio.String(),
		"yield_min", m.YieldMin.String(),
		"yield_max", m.YieldMax.String(),
		"slot_step", m.SlotStep.String(),
		"slot_max_attempts", m.SlotMaxAttempts,
		"slot_search_horizon", m.SlotSearchHorizon.String())
}
