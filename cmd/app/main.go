package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/br0k3x/osul-bot/internal/bootstrap"
	"github.com/br0k3x/osul-bot/internal/config"
	"github.com/br0k3x/osul-bot/internal/linking"
	"github.com/br0k3x/osul-bot/internal/osu"
	"github.com/br0k3x/osul-bot/internal/server"
	"github.com/br0k3x/osul-bot/internal/web"
)

// @title osu!lounge API
// @version 1.0
// @description Links Discord accounts to osu! OAuth tokens and grants guild roles.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	bootstrap.SetupLogger(cfg, bootstrap.ServiceNameAPI)

	warnings, err := cfg.ValidateWithWarnings()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	ctx := context.Background()

	store := bootstrap.OpenStore(ctx, cfg)

	discordClients, err := bootstrap.OpenDiscord(cfg)
	if err != nil {
		slog.Error("Failed to set up Discord", "error", err)
		os.Exit(1)
	}

	oauthClient := osu.NewOAuthClient(osu.OAuthConfig{
		ClientID:     cfg.OsuClientID,
		ClientSecret: cfg.OsuClientSecret,
		TokenURL:     cfg.OsuTokenURL,
		AuthorizeURL: cfg.OsuAuthorizeURL,
		RedirectURI:  cfg.CallbackURI,
	}, nil)

	linkingService := linking.NewService(store.Links, discordClients.Roles, linking.RoleConfig{
		GuildID: cfg.DiscordGuildID,
		RoleIDs: cfg.LinkRoleIDs(),
	})

	pages, err := web.NewPages(web.PageData{
		ClientID:     cfg.OsuClientID,
		CallbackURI:  cfg.CallbackURI,
		APIBaseURL:   cfg.APIBaseURL,
		AuthorizeURL: cfg.OsuAuthorizeURL,
		Scopes:       osu.DefaultScopes,
	})
	if err != nil {
		slog.Error("Failed to load page templates", "error", err)
		os.Exit(1)
	}

	srv := server.NewServer(server.Options{
		Port:               cfg.Port,
		CORSAllowedOrigin:  cfg.CORSAllowedOrigin,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		TrustedProxies:     cfg.TrustedProxies,
		SSLDir:             cfg.SSLDir,
		APIBaseURL:         cfg.APIBaseURL,
		Version:            cfg.Version,
	}, server.Dependencies{
		DB:          store.DBPool(),
		OAuth:       oauthClient,
		CallbackURI: cfg.CallbackURI,
		Links:       linkingService,
		Members:     discordClients.Members,
		GuildID:     cfg.DiscordGuildID,
		Pages:       pages,
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		Store:  store,
	})
}
