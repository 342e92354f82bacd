package linking

// ============================================================================
// Error Context Messages (Wrapped Errors)
// ============================================================================

const (
	// ErrContextFailedToUpsertLink wraps link store write errors
	ErrContextFailedToUpsertLink = "failed to upsert link: %w"

	// ErrContextFailedToGetLink wraps link store read errors
	ErrContextFailedToGetLink = "failed to get link: %w"

	// ErrContextFailedToUnlink wraps unlink operation errors
	ErrContextFailedToUnlink = "failed to unlink: %w"

	// ErrContextFailedToUpdateTokens wraps token persistence errors
	ErrContextFailedToUpdateTokens = "failed to update tokens: %w"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgAccountLinked      = "Discord account linked"
	LogMsgRolesAssigned      = "Assigned roles to Discord user"
	LogMsgRoleAssignmentSkip = "Role assignment not configured, skipping"
	LogMsgRoleGrantFailed    = "Failed to assign Discord role"
	LogMsgAccountUnlinked    = "Discord account unlinked"
	LogMsgTokensUpdated      = "Stored osu! tokens updated"
)

// ============================================================================
// Log Context Keys
// ============================================================================

const (
	LogKeyDiscordID = "discord_id"
	LogKeyGuildID   = "guild_id"
	LogKeyRoleID    = "role_id"
	LogKeyRoles     = "roles"
	LogKeyFailed    = "failed"
	LogKeyError     = "error"
)

// WarningRoleGrantFailed is reported to callers for each role that could not be granted.
const WarningRoleGrantFailed = "failed to assign role %s"
