package main

import (
	"os"

	"github.com/osse101/LootRarity_Go/internal/config"
	"github.com/osse101/LootRarity_Go/internal/item"
)

// ValidateCatalogCommand checks an item catalog against its schema and link rules.
type ValidateCatalogCommand struct{}

func (c *ValidateCatalogCommand) Name() string {
	return "validate-catalog"
}

func (c *ValidateCatalogCommand) Description() string {
	return "Validate the item catalog: validate-catalog [path]"
}

func (c *ValidateCatalogCommand) Run(args []string) error {
	path := os.Getenv(config.EnvItemCatalogPath)
	if path == "" {
		path = config.ConfigPathItems
	}
	if len(args) > 0 {
		path = args[0]
	}

	PrintHeader("Validating " + path)
	loader := item.NewLoader()
	cfg, err := loader.Load(path)
	if err != nil {
		PrintError("%v", err)
		return err
	}
	if err := loader.Validate(cfg); err != nil {
		PrintError("%v", err)
		return err
	}

	PrintSuccess("%d items, %d variant groups", len(cfg.Items), len(cfg.Variants))
	return nil
}
