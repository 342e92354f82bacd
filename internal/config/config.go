package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	Version     string

	// osu! OAuth application
	OsuClientID     string
	OsuClientSecret string
	OsuTokenURL     string
	OsuAuthorizeURL string
	OsuAPIURL       string
	CallbackURI     string
	APIBaseURL      string // public URL of this API, substituted into pages

	DatabaseURL string
	DBMaxConns  int

	DiscordBotToken       string
	DiscordAppID          string
	DiscordGuildID        string
	DiscordVerifiedRoleID string
	DiscordMemberRoleID   string

	CORSAllowedOrigin  string
	SSLDir             string
	RateLimitPerMinute int
	TrustedProxies     []string // proxies whose X-Forwarded-For is honored
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:   getEnv(EnvLogFormat, DefaultLogFormat),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		Version:     getEnv(EnvVersion, "dev"),

		OsuClientID:     getEnv(EnvOsuClientID, ""),
		OsuClientSecret: getEnv(EnvOsuClientSecret, ""),
		OsuTokenURL:     getEnv(EnvOsuTokenURL, DefaultOsuTokenURL),
		OsuAuthorizeURL: getEnv(EnvOsuAuthorizeURL, DefaultOsuAuthorizeURL),
		OsuAPIURL:       getEnv(EnvOsuAPIURL, DefaultOsuAPIURL),
		CallbackURI:     getEnv(EnvCallbackURI, ""),
		APIBaseURL:      getEnv(EnvAPIBaseURL, DefaultAPIBaseURL),

		DatabaseURL: getEnv(EnvDatabaseURL, ""),
		DBMaxConns:  getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),

		DiscordBotToken:       getEnv(EnvDiscordBotToken, ""),
		DiscordAppID:          getEnv(EnvDiscordAppID, ""),
		DiscordGuildID:        getEnv(EnvDiscordGuildID, ""),
		DiscordVerifiedRoleID: getEnv(EnvDiscordVerifiedRoleID, ""),
		DiscordMemberRoleID:   getEnv(EnvDiscordMemberRoleID, ""),

		CORSAllowedOrigin:  getEnv(EnvCORSAllowedOrigin, DefaultCORSAllowedOrigin),
		SSLDir:             getEnv(EnvSSLDir, DefaultSSLDir),
		RateLimitPerMinute: getEnvAsInt(EnvRateLimitPerMinute, DefaultRateLimitPerMinute),
		TrustedProxies:     getEnvAsList(EnvTrustedProxies),
	}

	port, err := strconv.Atoi(getEnv(EnvPort, strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	return cfg, nil
}

// RoleAssignmentEnabled reports whether roles can be granted after linking.
// Bot token, guild and verified role must all be present.
func (c *Config) RoleAssignmentEnabled() bool {
	return c.DiscordBotToken != "" && c.DiscordGuildID != "" && c.DiscordVerifiedRoleID != ""
}

// MemberSearchEnabled reports whether guild member search can be served.
func (c *Config) MemberSearchEnabled() bool {
	return c.DiscordBotToken != "" && c.DiscordGuildID != ""
}

// LinkRoleIDs returns the roles granted on link, verified role first.
func (c *Config) LinkRoleIDs() []string {
	if c.DiscordVerifiedRoleID == "" {
		return nil
	}
	roles := []string{c.DiscordVerifiedRoleID}
	if c.DiscordMemberRoleID != "" {
		roles = append(roles, c.DiscordMemberRoleID)
	}
	return roles
}

// IsDevelopment reports whether the service runs in a dev environment.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable, falling back to the
// default when unset or unparsable.
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvAsList splits a comma-separated environment variable, dropping empty items.
func getEnvAsList(key string) []string {
	var items []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
