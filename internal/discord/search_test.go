package discord

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/br0k3x/osul-bot/internal/domain"
)

type fakeMemberLister struct {
	members []*discordgo.Member
	err     error
	calls   int
	limit   int
}

func (f *fakeMemberLister) GuildMembers(_ string, _ string, limit int, _ ...discordgo.RequestOption) ([]*discordgo.Member, error) {
	f.calls++
	f.limit = limit
	return f.members, f.err
}

func member(id, username, globalName string) *discordgo.Member {
	return &discordgo.Member{User: &discordgo.User{ID: id, Username: username, GlobalName: globalName, Discriminator: "0"}}
}

func TestFindByUsername(t *testing.T) {
	tests := []struct {
		name    string
		members []*discordgo.Member
		query   string
		wantID  string
		wantErr error
	}{
		{
			name:    "case-insensitive with discriminator",
			members: []*discordgo.Member{member("1", "Alice", "Al")},
			query:   "ALICE#1234",
			wantID:  "1",
		},
		{
			name:    "matches global name",
			members: []*discordgo.Member{member("1", "alice_osu", "Alice Liddell"), member("2", "bob", "")},
			query:   "alice liddell",
			wantID:  "1",
		},
		{
			name:    "first match wins",
			members: []*discordgo.Member{member("1", "bob", ""), member("2", "carol", "Bob")},
			query:   "BOB",
			wantID:  "1",
		},
		{
			name:    "members without user are skipped",
			members: []*discordgo.Member{{}, member("3", "dave", "")},
			query:   "dave",
			wantID:  "3",
		},
		{
			name:    "no match is not found",
			members: []*discordgo.Member{member("1", "Alice", "Al")},
			query:   "mallory",
			wantErr: domain.ErrNotFound,
		},
		{
			name:    "empty global name never matches empty key",
			members: []*discordgo.Member{member("1", "Alice", "")},
			query:   "#0001",
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeMemberLister{members: tt.members}
			client := NewMemberClient(fake)

			got, err := client.FindByUsername(context.Background(), "guild", tt.query)

			assert.Equal(t, 1, fake.calls)
			assert.Equal(t, MemberSearchLimit, fake.limit)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, got.UserID)
		})
	}
}

func TestFindByUsername_ReturnsAllFields(t *testing.T) {
	fake := &fakeMemberLister{members: []*discordgo.Member{
		{User: &discordgo.User{ID: "42", Username: "Alice", Discriminator: "1234", GlobalName: "Al"}},
	}}

	got, err := NewMemberClient(fake).FindByUsername(context.Background(), "guild", "al")

	require.NoError(t, err)
	assert.Equal(t, &domain.GuildMember{UserID: "42", Username: "Alice", Discriminator: "1234", GlobalName: "Al"}, got)
}

func TestFindByUsername_FetchError(t *testing.T) {
	fake := &fakeMemberLister{err: errors.New("401 unauthorized")}

	_, err := NewMemberClient(fake).FindByUsername(context.Background(), "guild", "alice")

	assert.ErrorIs(t, err, domain.ErrUpstreamUnreachable)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestFindByUsername_EmptyQuery(t *testing.T) {
	fake := &fakeMemberLister{}

	_, err := NewMemberClient(fake).FindByUsername(context.Background(), "guild", "")

	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	assert.Zero(t, fake.calls)
}
