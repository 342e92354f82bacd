package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/br0k3x/osul-bot/internal/linking"
	"github.com/br0k3x/osul-bot/internal/logger"
	"github.com/br0k3x/osul-bot/internal/metrics"
)

// RoleAdder is the subset of *discordgo.Session used to grant roles.
type RoleAdder interface {
	GuildMemberRoleAdd(guildID, userID, roleID string, options ...discordgo.RequestOption) error
}

// RoleClient grants guild roles through the Discord REST API.
type RoleClient struct {
	session RoleAdder
}

// NewRoleClient creates a role client over a bot session
func NewRoleClient(session RoleAdder) *RoleClient {
	return &RoleClient{session: session}
}

// GrantRoles adds each role in order with one call per role. A failed grant is
// logged and reported but never stops the remaining grants.
func (c *RoleClient) GrantRoles(ctx context.Context, guildID, userID string, roleIDs []string) []linking.RoleGrantFailure {
	log := logger.FromContext(ctx)

	var failures []linking.RoleGrantFailure
	for _, roleID := range roleIDs {
		if err := c.session.GuildMemberRoleAdd(guildID, userID, roleID, discordgo.WithContext(ctx)); err != nil {
			metrics.RoleGrants.WithLabelValues(OutcomeFailed).Inc()
			log.Warn(LogMsgRoleGrantFailed,
				LogKeyGuildID, guildID,
				LogKeyUserID, userID,
				LogKeyRoleID, roleID,
				LogKeyError, err)
			failures = append(failures, linking.RoleGrantFailure{RoleID: roleID, Err: err})
			continue
		}
		metrics.RoleGrants.WithLabelValues(OutcomeSuccess).Inc()
		log.Debug(LogMsgRoleGranted, LogKeyGuildID, guildID, LogKeyUserID, userID, LogKeyRoleID, roleID)
	}
	return failures
}
