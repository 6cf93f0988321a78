package bootstrap

import (
	"log/slog"

	"fieldservice/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
	fx.Invoke(logBusinessRules),
)

// logBusinessRules records the rules that change payouts so an operator can
// tell which values a process ran with.
func logBusinessRules(cfg config.Config) {
	slog.Info("business rules loaded",
		"response_window", cfg.Assignment.ResponseWindow.String(),
		"scan_interval", cfg.Assignment.ScanInterval.String(),
		"full_kit_price", cfg.Products.FullKitPrice,
		"referral_percent", cfg.Referral.CommissionPercent,
		"default_commission_rate", cfg.Commission.DefaultRate,
	)
}
