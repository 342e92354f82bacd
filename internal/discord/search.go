package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/br0k3x/osul-bot/internal/domain"
	"github.com/br0k3x/osul-bot/internal/logger"
	"github.com/br0k3x/osul-bot/internal/metrics"
)

// MemberLister is the subset of *discordgo.Session used to list guild members.
type MemberLister interface {
	GuildMembers(guildID, after string, limit int, options ...discordgo.RequestOption) ([]*discordgo.Member, error)
}

// MemberClient looks up guild members by name.
type MemberClient struct {
	session MemberLister
}

// NewMemberClient creates a member search client over a bot session
func NewMemberClient(session MemberLister) *MemberClient {
	return &MemberClient{session: session}
}

// FindByUsername fetches up to MemberSearchLimit members and returns the first
// whose username or global name equals the search key, ignoring case. A
// trailing "#discriminator" on the key is dropped.
func (c *MemberClient) FindByUsername(ctx context.Context, guildID, username string) (*domain.GuildMember, error) {
	log := logger.FromContext(ctx)

	if username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrInvalidRequest)
	}
	// Casers carry state and are not shared across goroutines.
	lower := cases.Lower(language.Und)
	key, _, _ := strings.Cut(username, "#")
	key = lower.String(key)

	members, err := c.session.GuildMembers(guildID, "", MemberSearchLimit, discordgo.WithContext(ctx))
	if err != nil {
		metrics.MemberSearches.WithLabelValues(OutcomeError).Inc()
		log.Error(LogMsgMemberFetchFailed, LogKeyGuildID, guildID, LogKeyError, err)
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnreachable, err)
	}

	for _, m := range members {
		if m == nil || m.User == nil {
			continue
		}
		if lower.String(m.User.Username) == key || (m.User.GlobalName != "" && lower.String(m.User.GlobalName) == key) {
			metrics.MemberSearches.WithLabelValues(OutcomeFound).Inc()
			log.Info(LogMsgMemberFound, LogKeyUsername, username, LogKeyUserID, m.User.ID)
			return &domain.GuildMember{
				UserID:        m.User.ID,
				Username:      m.User.Username,
				Discriminator: m.User.Discriminator,
				GlobalName:    m.User.GlobalName,
			}, nil
		}
	}

	metrics.MemberSearches.WithLabelValues(OutcomeNotFound).Inc()
	log.Info(LogMsgMemberNotFound, LogKeyUsername, username, LogKeyMembers, len(members))
	return nil, domain.ErrNotFound
}
