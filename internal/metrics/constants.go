package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameOAuthExchanges = "osu_oauth_exchanges_total"
	MetricNameLinkUpserts    = "account_links_upserted_total"
	MetricNameUnlinks        = "account_links_removed_total"
	MetricNameRoleGrants     = "discord_role_grants_total"
	MetricNameMemberSearches = "discord_member_searches_total"
	MetricNameBotCommands    = "discord_bot_commands_total"
	MetricNameRateLimited    = "http_requests_rate_limited_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextOAuthExchanges = "Total number of osu! token endpoint calls by grant and outcome"
	HelpTextLinkUpserts    = "Total number of account link records written"
	HelpTextUnlinks        = "Total number of account link records removed"
	HelpTextRoleGrants     = "Total number of Discord role grants by outcome"
	HelpTextMemberSearches = "Total number of guild member searches by outcome"
	HelpTextBotCommands    = "Total number of bot slash commands handled"
	HelpTextRateLimited    = "Total number of requests rejected by the rate limiter"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelGrant   = "grant"
	LabelOutcome = "outcome"
	LabelCommand = "command"
)

// HTTPLatencyBuckets are tuned for pass-through calls to third-party APIs.
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}
