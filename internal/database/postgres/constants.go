package postgres

// Error Messages - Link Operations
const (
	ErrMsgFailedToUpsertLink   = "failed to upsert link"
	ErrMsgFailedToGetLink      = "failed to get link"
	ErrMsgFailedToUpdateTokens = "failed to update tokens"
	ErrMsgFailedToDeleteLink   = "failed to delete link"
)
