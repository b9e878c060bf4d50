package bootstrap

import (
	"log/slog"

	"github.com/osse101/LootRarity_Go/internal/config"
	"github.com/osse101/LootRarity_Go/internal/logger"
)

// SetupLogger installs the process logger from configuration and reports config warnings.
func SetupLogger(cfg *config.Config) *slog.Logger {
	l := logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.IsDevelopment(),
	))

	l.Info(LogMsgStarting,
		"port", cfg.Port,
		"lazy_tables", cfg.LazyTables,
		"item_catalog", cfg.ItemCatalogPath)

	for _, w := range config.Warnings(cfg) {
		l.Warn(LogMsgConfigWarning, "warning", w)
	}
	return l
}
