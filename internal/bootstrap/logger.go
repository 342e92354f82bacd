package bootstrap

import (
	"log/slog"

	"github.com/br0k3x/osul-bot/internal/config"
	"github.com/br0k3x/osul-bot/internal/logger"
)

// SetupLogger initializes the default slog logger from the application
// configuration. Source locations are only attached in development.
func SetupLogger(cfg *config.Config, serviceName string) {
	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		serviceName,
		cfg.Version,
		cfg.Environment,
		cfg.IsDevelopment(),
	))

	slog.Info(LogMsgStarting,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"database", cfg.DatabaseURL != "",
		"discord", cfg.DiscordBotToken != "",
		"guild_id", cfg.DiscordGuildID)
}
