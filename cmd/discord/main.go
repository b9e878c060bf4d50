package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/LootRarity_Go/internal/bootstrap"
	"github.com/osse101/LootRarity_Go/internal/config"
	"github.com/osse101/LootRarity_Go/internal/discord"
)

// CommandFactory creates a Discord command and its handler.
type CommandFactory func() (*discordgo.ApplicationCommand, discord.CommandHandler)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}
	bootstrap.SetupLogger(cfg)

	botCfg, err := loadBotConfig(cfg)
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine, err := bootstrap.NewEngine(ctx, cfg)
	if err != nil {
		slog.Error("Failed to build rarity engine", "error", err)
		os.Exit(1)
	}
	if err := engine.Load(ctx); err != nil {
		slog.Error("Failed to load drop tables", "error", err)
		os.Exit(1)
	}

	bot, err := discord.New(botCfg)
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	factories := []CommandFactory{
		func() (*discordgo.ApplicationCommand, discord.CommandHandler) {
			return discord.RarityCommand(engine.Registry, engine.Names)
		},
	}
	for _, factory := range factories {
		bot.Registry.Register(factory())
	}

	forceUpdate := os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true"
	if err := bot.RegisterCommands(forceUpdate); err != nil {
		slog.Error("Failed to register commands", "error", err)
		// Don't exit - bot can still run if commands are already registered
	}

	if err := bot.Run(ctx); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
}

// loadBotConfig returns an error if required variables are missing.
func loadBotConfig(cfg *config.Config) (discord.Config, error) {
	if cfg.DiscordToken == "" {
		return discord.Config{}, errors.New(config.EnvDiscordToken + " is required")
	}
	if cfg.DiscordAppID == "" {
		return discord.Config{}, errors.New(config.EnvDiscordAppID + " is required")
	}
	return discord.Config{Token: cfg.DiscordToken, AppID: cfg.DiscordAppID}, nil
}
