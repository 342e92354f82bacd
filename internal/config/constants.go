package config

// Default values for optional configuration
const (
	DefaultPort               = 3002
	DefaultLogLevel           = "info"
	DefaultLogFormat          = "text"
	DefaultEnvironment        = "dev"
	DefaultServiceName        = "osul-api"
	DefaultOsuTokenURL        = "https://osu.ppy.sh/oauth/token"
	DefaultOsuAuthorizeURL    = "https://osu.ppy.sh/oauth/authorize"
	DefaultOsuAPIURL          = "https://osu.ppy.sh/api/v2"
	DefaultAPIBaseURL         = "https://stats.br0k3x.info/api"
	DefaultDBMaxConns         = 10
	DefaultCORSAllowedOrigin  = "*"
	DefaultSSLDir             = "api/ssl"
	DefaultRateLimitPerMinute = 120
)

// Environment variable names
const (
	EnvPort                  = "PORT"
	EnvLogLevel              = "LOG_LEVEL"
	EnvLogFormat             = "LOG_FORMAT"
	EnvEnvironment           = "ENVIRONMENT"
	EnvVersion               = "VERSION"
	EnvOsuClientID           = "OSU_CLIENT_ID"
	EnvOsuClientSecret       = "OSU_CLIENT_SECRET"
	EnvOsuTokenURL           = "OSU_TOKEN_URL"
	EnvOsuAuthorizeURL       = "OSU_AUTHORIZE_URL"
	EnvOsuAPIURL             = "OSU_API_URL"
	EnvCallbackURI           = "CALLBACK_URI"
	EnvAPIBaseURL            = "API_BASE_URL"
	EnvDatabaseURL           = "DATABASE_URL"
	EnvDBMaxConns            = "DB_MAX_CONNS"
	EnvDiscordBotToken       = "DISCORD_BOT_TOKEN"
	EnvDiscordAppID          = "DISCORD_APP_ID"
	EnvDiscordGuildID        = "DISCORD_GUILD_ID"
	EnvDiscordVerifiedRoleID = "DISCORD_VERIFIED_ROLE_ID"
	EnvDiscordMemberRoleID   = "DISCORD_MEMBER_ROLE_ID"
	EnvCORSAllowedOrigin     = "CORS_ALLOWED_ORIGIN"
	EnvSSLDir                = "SSL_DIR"
	EnvRateLimitPerMinute    = "RATE_LIMIT_PER_MINUTE"
	EnvTrustedProxies        = "TRUSTED_PROXIES"
)
