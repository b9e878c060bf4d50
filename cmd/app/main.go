package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/LootRarity_Go/internal/bootstrap"
	"github.com/osse101/LootRarity_Go/internal/config"
	"github.com/osse101/LootRarity_Go/internal/handler"
	"github.com/osse101/LootRarity_Go/internal/server"
)

//go:generate swag init -g cmd/app/main.go -d ../../ -o ../../docs --parseDependency --parseInternal

// @title Loot Rarity API
// @version 1.0
// @description Probability lookups for observed loot drops.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	bootstrap.SetupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine, err := bootstrap.NewEngine(ctx, cfg)
	if err != nil {
		slog.Error("Failed to build rarity engine", "error", err)
		os.Exit(1)
	}

	// /readyz stays unavailable until both tables are published.
	if !cfg.LazyTables {
		go func() {
			if err := engine.Load(ctx); err != nil {
				slog.Warn("Drop table load interrupted", "error", err)
			}
		}()
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		TrustedProxies: cfg.TrustedProxies,
		RateLimit:      cfg.RateLimit,
		Readiness:      engine.HealthCheckers(),
	}, handler.NewRarityHandler(engine.Registry, engine.Names))

	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{Server: srv})
}
