package discord

// MemberSearchLimit is the single-page member fetch size; larger guilds are not paged.
const MemberSearchLimit = 1000

// Metric outcome labels
const (
	OutcomeSuccess  = "success"
	OutcomeFailed   = "failed"
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Log messages
const (
	LogMsgRoleGranted       = "Granted Discord role"
	LogMsgRoleGrantFailed   = "Failed to grant Discord role"
	LogMsgMemberFound       = "Guild member found"
	LogMsgMemberNotFound    = "No guild member matched"
	LogMsgMemberFetchFailed = "Failed to fetch guild members"
)

// Log context keys
const (
	LogKeyGuildID   = "guild_id"
	LogKeyUserID    = "user_id"
	LogKeyRoleID    = "role_id"
	LogKeyUsername  = "username"
	LogKeyMembers   = "members"
	LogKeyCommand   = "command"
	LogKeyError     = "error"
	LogKeyBeatmapID = "beatmap_id"
)

// Command and option names
const (
	CommandOsu       = "osu"
	SubcommandLink   = "link"
	SubcommandUnlink = "unlink"
	SubcommandAuth   = "auth"
	SubcommandProf   = "profile"
	SubcommandTop    = "top"
	OptionUser       = "user"
	OptionMode       = "mode"
	OptionDetailed   = "detailed"

	CommandGeneral  = "general"
	SubcommandAbout = "about"

	// CommandBeatmapLink labels beatmap link replies in the command metric.
	CommandBeatmapLink = "beatmap_link"
)

// Embed colors
const (
	ColorOsuPink = 0xff66aa
	ColorSuccess = 0x2ecc71
	ColorInfo    = 0x3498db
)

// FooterOsuLounge is the standard embed footer.
const FooterOsuLounge = "osu!lounge"

// Instance identity shown by /general about
const (
	OfficialCallbackURI = "https://osul.br0k3.me/oauth/osu/callback"
	ProjectRepository   = "br0k3x/osulounge"
)

// User-facing messages
const (
	MsgNotLinked      = "You haven't linked your osu! account yet. Use `/osu auth` to get started."
	MsgUnlinked       = "Your osu! account has been unlinked."
	MsgStoreDown      = "Account storage is unavailable right now. Please try again later."
	MsgGenericError   = "Something went wrong. Please try again later."
	MsgUserNotFound   = "That osu! user could not be found."
	MsgProfileExpired = "Your osu! session has expired. Use `/osu auth` to link again."
	MsgInvalidMode    = "Unknown game mode."
	MsgAuthPrompt     = "Click the link below to authorize osu!lounge with your osu! account:\n%s"
	MsgLinkedSince    = "Your osu! account is linked since <t:%d:F>."
	MsgNoTopScores    = "No top plays found for **%s** in %s."
)
