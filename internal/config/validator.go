package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks struct-level constraints on cfg.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf(ErrMsgValidation, err)
	}
	return nil
}

// Warnings reports non-fatal configuration issues worth logging at startup.
func Warnings(cfg *Config) []string {
	var warnings []string

	if _, err := os.Stat(cfg.ItemCatalogPath); err != nil {
		warnings = append(warnings, fmt.Sprintf("item catalog %s is not readable; noted items and variants will not resolve", cfg.ItemCatalogPath))
	}
	if cfg.LazyTables && !cfg.IsDevelopment() {
		warnings = append(warnings, "LAZY_TABLES is enabled; the first lookup per domain will pay the compile cost")
	}
	if (cfg.DiscordToken == "") != (cfg.DiscordAppID == "") {
		warnings = append(warnings, "DISCORD_TOKEN and DISCORD_APP_ID must be set together")
	}
	return warnings
}
