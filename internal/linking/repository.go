package linking

import (
	"context"

	"github.com/br0k3x/osul-bot/internal/domain"
)

// Repository persists link records keyed by Discord user ID.
// Lookups of unknown IDs return domain.ErrNotFound.
type Repository interface {
	// UpsertLink atomically creates the record or overwrites its tokens and linkedAt.
	UpsertLink(ctx context.Context, discordID, accessToken, refreshToken string) (*domain.LinkRecord, error)
	GetLink(ctx context.Context, discordID string) (*domain.LinkRecord, error)
	UpdateTokens(ctx context.Context, discordID, accessToken, refreshToken string) error
	DeleteLink(ctx context.Context, discordID string) error
}

// RoleGrantFailure describes one role that could not be granted.
type RoleGrantFailure struct {
	RoleID string
	Err    error
}

// RoleGranter grants guild roles to a member, one call per role in order.
// Every role is attempted regardless of earlier failures.
type RoleGranter interface {
	GrantRoles(ctx context.Context, guildID, userID string, roleIDs []string) []RoleGrantFailure
}
