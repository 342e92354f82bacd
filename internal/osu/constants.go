package osu

// Scopes requested on the authorize URL
var DefaultScopes = []string{"identify", "public"}

// Grant types, used as metric labels
const (
	GrantAuthorizationCode = "authorization_code"
	GrantRefreshToken      = "refresh_token"
)

// Metric outcome labels
const (
	OutcomeSuccess     = "success"
	OutcomeRejected    = "rejected"
	OutcomeUnreachable = "unreachable"
	OutcomeInvalid     = "invalid"
)

// Log messages
const (
	LogMsgTokenExchangeFailed = "osu! OAuth token error"
	LogMsgTokenRefreshed      = "osu! access token refreshed"
)
