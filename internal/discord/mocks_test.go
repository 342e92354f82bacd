package discord

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/br0k3x/osul-bot/internal/domain"
	"github.com/br0k3x/osul-bot/internal/linking"
	"github.com/br0k3x/osul-bot/internal/osu"
)

// MockLinkService is a mock implementation of linking.Service
type MockLinkService struct {
	mock.Mock
}

func (m *MockLinkService) Link(ctx context.Context, discordID, accessToken, refreshToken string) (*linking.LinkResult, error) {
	args := m.Called(ctx, discordID, accessToken, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*linking.LinkResult), args.Error(1)
}

func (m *MockLinkService) Status(ctx context.Context, discordID string) (*domain.LinkRecord, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LinkRecord), args.Error(1)
}

func (m *MockLinkService) Unlink(ctx context.Context, discordID string) error {
	args := m.Called(ctx, discordID)
	return args.Error(0)
}

func (m *MockLinkService) SaveTokens(ctx context.Context, discordID string, tokens domain.TokenPair) error {
	args := m.Called(ctx, discordID, tokens)
	return args.Error(0)
}

// MockProfileAPI is a mock implementation of ProfileAPI
type MockProfileAPI struct {
	mock.Mock
}

func (m *MockProfileAPI) GetUser(ctx context.Context, tokens domain.TokenPair, username, mode string) (*osu.User, *domain.TokenPair, error) {
	args := m.Called(ctx, tokens, username, mode)
	var user *osu.User
	if u := args.Get(0); u != nil {
		user = u.(*osu.User)
	}
	var refreshed *domain.TokenPair
	if r := args.Get(1); r != nil {
		refreshed = r.(*domain.TokenPair)
	}
	return user, refreshed, args.Error(2)
}

func (m *MockProfileAPI) GetBestScores(ctx context.Context, tokens domain.TokenPair, userID int, mode string, limit int) ([]osu.Score, *domain.TokenPair, error) {
	args := m.Called(ctx, tokens, userID, mode, limit)
	var scores []osu.Score
	if s := args.Get(0); s != nil {
		scores = s.([]osu.Score)
	}
	var refreshed *domain.TokenPair
	if r := args.Get(1); r != nil {
		refreshed = r.(*domain.TokenPair)
	}
	return scores, refreshed, args.Error(2)
}

func (m *MockProfileAPI) GetBeatmap(ctx context.Context, tokens domain.TokenPair, beatmapID int) (*osu.Beatmap, *domain.TokenPair, error) {
	args := m.Called(ctx, tokens, beatmapID)
	var beatmap *osu.Beatmap
	if b := args.Get(0); b != nil {
		beatmap = b.(*osu.Beatmap)
	}
	var refreshed *domain.TokenPair
	if r := args.Get(1); r != nil {
		refreshed = r.(*domain.TokenPair)
	}
	return beatmap, refreshed, args.Error(2)
}

func (m *MockProfileAPI) GetBeatmapset(ctx context.Context, tokens domain.TokenPair, beatmapsetID int) (*osu.Beatmapset, *domain.TokenPair, error) {
	args := m.Called(ctx, tokens, beatmapsetID)
	var set *osu.Beatmapset
	if b := args.Get(0); b != nil {
		set = b.(*osu.Beatmapset)
	}
	var refreshed *domain.TokenPair
	if r := args.Get(1); r != nil {
		refreshed = r.(*domain.TokenPair)
	}
	return set, refreshed, args.Error(2)
}
