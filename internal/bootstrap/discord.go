package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"

	"github.com/br0k3x/osul-bot/internal/config"
	"github.com/br0k3x/osul-bot/internal/discord"
	"github.com/br0k3x/osul-bot/internal/handler"
	"github.com/br0k3x/osul-bot/internal/linking"
)

// DiscordClients are the REST clients the HTTP service uses. Fields are left
// as untyped nils when the corresponding feature is not configured.
type DiscordClients struct {
	Session *discordgo.Session
	Roles   linking.RoleGranter
	Members handler.MemberSearcher
}

// OpenDiscord builds the role and member clients. No gateway connection is
// opened; both clients only issue REST calls.
func OpenDiscord(cfg *config.Config) (*DiscordClients, error) {
	if cfg.DiscordBotToken == "" {
		slog.Warn(LogMsgDiscordDisabled)
		return &DiscordClients{}, nil
	}

	session, err := discord.NewSession(cfg.DiscordBotToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToOpenDiscord, err)
	}

	clients := &DiscordClients{Session: session}
	if cfg.MemberSearchEnabled() {
		clients.Members = discord.NewMemberClient(session)
	}
	if cfg.RoleAssignmentEnabled() {
		clients.Roles = discord.NewRoleClient(session)
	} else {
		slog.Warn(LogMsgRoleGrantsDisabled)
	}
	return clients, nil
}
