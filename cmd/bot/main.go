package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/br0k3x/osul-bot/internal/bootstrap"
	"github.com/br0k3x/osul-bot/internal/config"
	"github.com/br0k3x/osul-bot/internal/discord"
	"github.com/br0k3x/osul-bot/internal/linking"
	"github.com/br0k3x/osul-bot/internal/osu"
)

// EnvForceCommandUpdate re-registers slash commands even when unchanged.
const EnvForceCommandUpdate = "DISCORD_FORCE_COMMAND_UPDATE"

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	bootstrap.SetupLogger(cfg, bootstrap.ServiceNameBot)

	if err := requireBotConfig(cfg); err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	// Every bot command reads stored tokens, so an unusable store is fatal here.
	store := bootstrap.OpenStore(context.Background(), cfg)
	if store.Pool == nil {
		slog.Error("Link store unavailable, bot cannot start")
		os.Exit(1)
	}
	defer store.Close()

	oauthClient := osu.NewOAuthClient(osu.OAuthConfig{
		ClientID:     cfg.OsuClientID,
		ClientSecret: cfg.OsuClientSecret,
		TokenURL:     cfg.OsuTokenURL,
		AuthorizeURL: cfg.OsuAuthorizeURL,
		RedirectURI:  cfg.CallbackURI,
	}, nil)

	// The bot never grants roles itself; linking happens through the web flow.
	links := linking.NewService(store.Links, nil, linking.RoleConfig{})
	profiles := discord.NewProfileService(
		links,
		osu.NewAPIClient(cfg.OsuAPIURL, oauthClient, nil),
		discord.DefaultProfileCacheSize,
		discord.DefaultProfileCacheTTL,
	)

	bot, err := discord.New(discord.Config{
		Token:   cfg.DiscordBotToken,
		AppID:   cfg.DiscordAppID,
		GuildID: cfg.DiscordGuildID,
	}, &discord.Services{
		Links:    links,
		Profiles: profiles,
		Auth:     oauthClient,
		Info:     discord.BotInfo{Version: cfg.Version, CallbackURI: cfg.CallbackURI},
	})
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	forceUpdate := os.Getenv(EnvForceCommandUpdate) == "true"
	if forceUpdate {
		slog.Info("Force command update enabled via environment variable")
	}
	if err := bot.RegisterCommands(forceUpdate); err != nil {
		// Commands registered by an earlier run keep working.
		slog.Error("Failed to register commands", "error", err)
	}

	if err := bot.Run(); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
}

// requireBotConfig checks the variables the bot cannot run without.
func requireBotConfig(cfg *config.Config) error {
	switch {
	case cfg.DiscordBotToken == "":
		return errors.New(config.EnvDiscordBotToken + " is required")
	case cfg.DiscordAppID == "":
		return errors.New(config.EnvDiscordAppID + " is required")
	case cfg.DatabaseURL == "":
		return errors.New(config.EnvDatabaseURL + " is required")
	}
	return nil
}
