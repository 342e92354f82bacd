package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/br0k3x/osul-bot/internal/domain"
	"github.com/br0k3x/osul-bot/internal/linking"
)

// ============================================================================
// MOCKS
// ============================================================================

type MockTokenExchanger struct {
	mock.Mock
}

func (m *MockTokenExchanger) ExchangeCode(ctx context.Context, code, redirectURI string) (*domain.TokenPair, error) {
	args := m.Called(ctx, code, redirectURI)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TokenPair), args.Error(1)
}

func (m *MockTokenExchanger) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TokenPair), args.Error(1)
}

type MockLinkingService struct {
	mock.Mock
}

func (m *MockLinkingService) Link(ctx context.Context, discordID, accessToken, refreshToken string) (*linking.LinkResult, error) {
	args := m.Called(ctx, discordID, accessToken, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*linking.LinkResult), args.Error(1)
}

func (m *MockLinkingService) Status(ctx context.Context, discordID string) (*domain.LinkRecord, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LinkRecord), args.Error(1)
}

func (m *MockLinkingService) Unlink(ctx context.Context, discordID string) error {
	args := m.Called(ctx, discordID)
	return args.Error(0)
}

func (m *MockLinkingService) SaveTokens(ctx context.Context, discordID string, tokens domain.TokenPair) error {
	args := m.Called(ctx, discordID, tokens)
	return args.Error(0)
}

type MockMemberSearcher struct {
	mock.Mock
}

func (m *MockMemberSearcher) FindByUsername(ctx context.Context, guildID, username string) (*domain.GuildMember, error) {
	args := m.Called(ctx, guildID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GuildMember), args.Error(1)
}

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}
