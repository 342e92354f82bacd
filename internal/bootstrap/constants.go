package bootstrap

import "time"

// Service names reported in every log line
const (
	ServiceNameAPI = "osul-api"
	ServiceNameBot = "osul-bot"
)

// Connection pool lifetimes
const (
	DBMaxConnIdleTime = 5 * time.Minute
	DBMaxConnLifetime = time.Hour
)

// ShutdownTimeout bounds graceful shutdown of the HTTP server
const ShutdownTimeout = 30 * time.Second

// Log messages for startup and shutdown
const (
	LogMsgStarting             = "Starting osu!lounge"
	LogMsgConfigurationLoaded  = "Configuration loaded"
	LogMsgDatabaseDisabled     = "DATABASE_URL not set, link storage disabled"
	LogMsgDatabaseUnavailable  = "Database unavailable, link storage disabled"
	LogMsgDiscordDisabled      = "DISCORD_BOT_TOKEN not set, role grants and member search disabled"
	LogMsgRoleGrantsDisabled   = "Discord guild or verified role not set, role grants disabled"
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgServerStopped        = "Server stopped"
)

// ErrMsgFailedToOpenDiscord wraps Discord session creation errors
const ErrMsgFailedToOpenDiscord = "failed to create Discord session"
