package linking

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/br0k3x/osul-bot/internal/domain"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) UpsertLink(ctx context.Context, discordID, accessToken, refreshToken string) (*domain.LinkRecord, error) {
	args := m.Called(ctx, discordID, accessToken, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LinkRecord), args.Error(1)
}

func (m *MockRepository) GetLink(ctx context.Context, discordID string) (*domain.LinkRecord, error) {
	args := m.Called(ctx, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LinkRecord), args.Error(1)
}

func (m *MockRepository) UpdateTokens(ctx context.Context, discordID, accessToken, refreshToken string) error {
	return m.Called(ctx, discordID, accessToken, refreshToken).Error(0)
}

func (m *MockRepository) DeleteLink(ctx context.Context, discordID string) error {
	return m.Called(ctx, discordID).Error(0)
}

type MockRoleGranter struct {
	mock.Mock
}

func (m *MockRoleGranter) GrantRoles(ctx context.Context, guildID, userID string, roleIDs []string) []RoleGrantFailure {
	args := m.Called(ctx, guildID, userID, roleIDs)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]RoleGrantFailure)
}
