package discord

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roleCall struct {
	guildID, userID, roleID string
}

type fakeRoleAdder struct {
	calls []roleCall
	fail  map[string]error
}

func (f *fakeRoleAdder) GuildMemberRoleAdd(guildID, userID, roleID string, _ ...discordgo.RequestOption) error {
	f.calls = append(f.calls, roleCall{guildID, userID, roleID})
	return f.fail[roleID]
}

func TestGrantRoles_AllSucceed(t *testing.T) {
	fake := &fakeRoleAdder{}
	client := NewRoleClient(fake)

	failures := client.GrantRoles(context.Background(), "guild", "user", []string{"verified", "member"})

	assert.Empty(t, failures)
	assert.Equal(t, []roleCall{
		{"guild", "user", "verified"},
		{"guild", "user", "member"},
	}, fake.calls)
}

func TestGrantRoles_FirstFailureDoesNotStopSecond(t *testing.T) {
	boom := errors.New("missing permissions")
	fake := &fakeRoleAdder{fail: map[string]error{"verified": boom}}
	client := NewRoleClient(fake)

	failures := client.GrantRoles(context.Background(), "guild", "user", []string{"verified", "member"})

	require.Len(t, failures, 1)
	assert.Equal(t, "verified", failures[0].RoleID)
	assert.ErrorIs(t, failures[0].Err, boom)

	require.Len(t, fake.calls, 2, "every role is attempted")
	assert.Equal(t, "verified", fake.calls[0].roleID)
	assert.Equal(t, "member", fake.calls[1].roleID)
}

func TestGrantRoles_NoRoles(t *testing.T) {
	fake := &fakeRoleAdder{}
	client := NewRoleClient(fake)

	assert.Empty(t, client.GrantRoles(context.Background(), "guild", "user", nil))
	assert.Empty(t, fake.calls)
}
