package handler

// Client-facing error messages. Internal error details are never exposed
// except for the upstream OAuth body, which is passed through verbatim.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgGenericServerError    = "Something went wrong"

	// OAuth
	ErrMsgMissingCodeOrState  = "Missing code or state parameter"
	ErrMsgMissingRefreshToken = "Missing refresh_token parameter"
	ErrMsgOAuthExchangeFailed = "OAuth token exchange failed"
	ErrMsgOAuthCallbackFailed = "OAuth callback failed"
	ErrMsgOAuthRefreshFailed  = "OAuth refresh failed"

	// Linking
	ErrMsgMissingLinkFields    = "Missing id, osu_token, or osu_refresh parameter"
	ErrMsgDatabaseNotConnected = "Database not connected"
	ErrMsgLinkFailed           = "Failed to link Discord account"
	ErrMsgStatusFailed         = "Failed to get link status"
	ErrMsgUnlinkFailed         = "Failed to unlink Discord account"
	ErrMsgNotLinked            = "Discord account is not linked"

	// Discord search
	ErrMsgUsernameRequired     = "Username is required"
	ErrMsgDiscordNotConfigured = "Discord bot not configured"
	ErrMsgSearchFailed         = "Failed to search for Discord user"
	ErrMsgDiscordUserNotFound  = "User not found in the server. Please make sure you entered the correct username."
)

// Success messages
const (
	MsgLinkSuccess   = "Discord account linked successfully"
	MsgUnlinkSuccess = "Discord account unlinked successfully"
)

// Log messages
const (
	LogMsgOAuthExchangeFailed = "osu! OAuth token exchange failed"
	LogMsgConfigMissing       = "Required configuration missing"
	LogMsgRequestFailed       = "Request failed"
)

// Service descriptor values
const (
	APIStatusActive = "active"
	APIVersion      = "v1.0"
	APIDatabase     = "postgres"
)
