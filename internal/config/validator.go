package config

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidateWithWarnings checks the loaded configuration.
// Malformed values are errors; missing optional features are reported as
// warnings so the service can still boot with reduced functionality.
func (c *Config) ValidateWithWarnings() ([]string, error) {
	var problems []string

	if c.Port <= 0 || c.Port > 65535 {
		problems = append(problems, fmt.Sprintf("PORT out of range: %d", c.Port))
	}

	urls := map[string]string{
		EnvOsuTokenURL:     c.OsuTokenURL,
		EnvOsuAuthorizeURL: c.OsuAuthorizeURL,
		EnvOsuAPIURL:       c.OsuAPIURL,
		EnvCallbackURI:     c.CallbackURI,
	}
	for _, name := range []string{EnvOsuTokenURL, EnvOsuAuthorizeURL, EnvOsuAPIURL, EnvCallbackURI} {
		raw := urls[name]
		if raw == "" {
			continue
		}
		if !isAbsoluteURL(raw) {
			problems = append(problems, fmt.Sprintf("%s is not an absolute URL: %q", name, raw))
		}
	}

	if c.RateLimitPerMinute <= 0 {
		problems = append(problems, fmt.Sprintf("%s must be positive", EnvRateLimitPerMinute))
	}

	if len(problems) > 0 {
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}

	var warnings []string

	if c.OsuClientID == "" || c.OsuClientSecret == "" {
		warnings = append(warnings, "OSU_CLIENT_ID/OSU_CLIENT_SECRET not set - OAuth endpoints will fail")
	}
	if c.CallbackURI == "" {
		warnings = append(warnings, "CALLBACK_URI not set - authorization code exchange will be rejected")
	}
	if c.DatabaseURL == "" {
		warnings = append(warnings, "DATABASE_URL not set - account linking disabled")
	}
	if !c.MemberSearchEnabled() {
		warnings = append(warnings, "DISCORD_BOT_TOKEN/DISCORD_GUILD_ID not set - member search disabled")
	} else if !c.RoleAssignmentEnabled() {
		warnings = append(warnings, "DISCORD_VERIFIED_ROLE_ID not set - roles will not be granted on link")
	}

	return warnings, nil
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}
