package linking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/br0k3x/osul-bot/internal/domain"
)

var roleConfig = RoleConfig{GuildID: "guild-1", RoleIDs: []string{"verified", "member"}}

func TestLink_UpsertsThenGrantsRoles(t *testing.T) {
	repo := new(MockRepository)
	roles := new(MockRoleGranter)
	svc := NewService(repo, roles, roleConfig)

	record := &domain.LinkRecord{DiscordID: "123", AccessToken: "a", RefreshToken: "b", LinkedAt: time.Now()}

	var order []string
	repo.On("UpsertLink", mock.Anything, "123", "a", "b").
		Run(func(mock.Arguments) { order = append(order, "upsert") }).
		Return(record, nil)
	roles.On("GrantRoles", mock.Anything, "guild-1", "123", []string{"verified", "member"}).
		Run(func(mock.Arguments) { order = append(order, "grant") }).
		Return(nil)

	result, err := svc.Link(context.Background(), "123", "a", "b")

	require.NoError(t, err)
	assert.Equal(t, record, result.Record)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, []string{"upsert", "grant"}, order)
	repo.AssertExpectations(t)
	roles.AssertExpectations(t)
}

func TestLink_RoleFailuresBecomeWarnings(t *testing.T) {
	repo := new(MockRepository)
	roles := new(MockRoleGranter)
	svc := NewService(repo, roles, roleConfig)

	repo.On("UpsertLink", mock.Anything, "123", "a", "b").Return(&domain.LinkRecord{DiscordID: "123"}, nil)
	roles.On("GrantRoles", mock.Anything, "guild-1", "123", mock.Anything).
		Return([]RoleGrantFailure{{RoleID: "verified", Err: errors.New("missing permissions")}})

	result, err := svc.Link(context.Background(), "123", "a", "b")

	require.NoError(t, err, "role failures never fail the link")
	assert.Equal(t, []string{"failed to assign role verified"}, result.Warnings)
}

func TestLink_RoleAssignmentDisabled(t *testing.T) {
	repo := new(MockRepository)
	roles := new(MockRoleGranter)
	svc := NewService(repo, roles, RoleConfig{GuildID: "guild-1"})

	repo.On("UpsertLink", mock.Anything, "123", "a", "b").Return(&domain.LinkRecord{DiscordID: "123"}, nil)

	_, err := svc.Link(context.Background(), "123", "a", "b")

	require.NoError(t, err)
	roles.AssertNotCalled(t, "GrantRoles", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLink_StoreFailureSkipsRoles(t *testing.T) {
	repo := new(MockRepository)
	roles := new(MockRoleGranter)
	svc := NewService(repo, roles, roleConfig)

	repo.On("UpsertLink", mock.Anything, "123", "a", "b").Return(nil, errors.New("connection reset"))

	_, err := svc.Link(context.Background(), "123", "a", "b")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to upsert link")
	roles.AssertNotCalled(t, "GrantRoles", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_StoreUnavailable(t *testing.T) {
	svc := NewService(nil, nil, roleConfig)
	ctx := context.Background()

	_, err := svc.Link(ctx, "123", "a", "b")
	assert.True(t, errors.Is(err, domain.ErrStoreUnavailable))

	_, err = svc.Status(ctx, "123")
	assert.True(t, errors.Is(err, domain.ErrStoreUnavailable))

	err = svc.Unlink(ctx, "123")
	assert.True(t, errors.Is(err, domain.ErrStoreUnavailable))

	err = svc.SaveTokens(ctx, "123", domain.TokenPair{AccessToken: "a", RefreshToken: "b"})
	assert.True(t, errors.Is(err, domain.ErrStoreUnavailable))
}

func TestLink_MissingFields(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, nil, RoleConfig{})

	for _, tc := range [][3]string{{"", "a", "b"}, {"1", "", "b"}, {"1", "a", ""}} {
		_, err := svc.Link(context.Background(), tc[0], tc[1], tc[2])
		assert.True(t, errors.Is(err, domain.ErrInvalidRequest))
	}
	repo.AssertNotCalled(t, "UpsertLink", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestStatus_NotFound(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, nil, RoleConfig{})

	repo.On("GetLink", mock.Anything, "404").Return(nil, domain.ErrNotFound)

	_, err := svc.Status(context.Background(), "404")

	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestUnlink(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, nil, RoleConfig{})

	repo.On("DeleteLink", mock.Anything, "123").Return(nil).Once()
	repo.On("DeleteLink", mock.Anything, "456").Return(domain.ErrNotFound).Once()

	require.NoError(t, svc.Unlink(context.Background(), "123"))
	assert.True(t, errors.Is(svc.Unlink(context.Background(), "456"), domain.ErrNotFound))
	repo.AssertExpectations(t)
}

func TestSaveTokens(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, nil, RoleConfig{})

	repo.On("UpdateTokens", mock.Anything, "123", "new-a", "new-b").Return(nil)

	err := svc.SaveTokens(context.Background(), "123", domain.TokenPair{AccessToken: "new-a", RefreshToken: "new-b"})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}
