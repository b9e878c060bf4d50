package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strconv"

	"github.com/osse101/LootRarity_Go/internal/bootstrap"
	"github.com/osse101/LootRarity_Go/internal/config"
	"github.com/osse101/LootRarity_Go/internal/domain"
	"github.com/osse101/LootRarity_Go/internal/rarity"
)

// RarityCommand answers a single lookup against the bundled tables.
type RarityCommand struct{}

func (c *RarityCommand) Name() string {
	return "rarity"
}

func (c *RarityCommand) Description() string {
	return "Look up a drop: rarity [-domain npc|thieving] <source> <item_id> [quantity]"
}

func (c *RarityCommand) Run(args []string) error {
	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	dropDomain := fs.String("domain", string(domain.DomainNPC), "drop domain")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rest := fs.Args()
	if len(rest) < 2 {
		return errors.New("usage: devtool rarity [-domain npc|thieving] <source> <item_id> [quantity]")
	}
	itemID, err := strconv.Atoi(rest[1])
	if err != nil {
		return fmt.Errorf("invalid item id %q: %w", rest[1], err)
	}
	quantity := 1
	if len(rest) > 2 {
		if quantity, err = strconv.Atoi(rest[2]); err != nil {
			return fmt.Errorf("invalid quantity %q: %w", rest[2], err)
		}
	}

	engine, err := loadEngine()
	if err != nil {
		return err
	}
	q, err := engine.Registry.Lookup(domain.DropDomain(*dropDomain))
	if err != nil {
		return err
	}

	name := engine.Names.DisplayName(itemID)
	p, ok := q.GetRarity(rest[0], itemID, quantity)
	if !ok {
		PrintWarning("No rarity for %s x%d (%d) from %s", name, quantity, itemID, rest[0])
		return nil
	}

	PrintSuccess("%s x%d (%d) from %s: %s (p=%.8g)",
		name, quantity, itemID, rest[0], rarity.FormatOneIn(p), p)
	return nil
}

func loadEngine() (*bootstrap.Engine, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = "warn"
	bootstrap.SetupLogger(cfg)

	ctx := context.Background()
	engine, err := bootstrap.NewEngine(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := engine.Load(ctx); err != nil {
		return nil, err
	}
	return engine, nil
}
