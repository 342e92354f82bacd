package discord

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/br0k3x/osul-bot/internal/domain"
	"github.com/br0k3x/osul-bot/internal/osu"
)

func linkedRecord() *domain.LinkRecord {
	return &domain.LinkRecord{
		DiscordID:    "123",
		AccessToken:  "access",
		RefreshToken: "refresh",
		LinkedAt:     time.Now(),
	}
}

func TestProfileLookup_UsesStoredTokens(t *testing.T) {
	links := new(MockLinkService)
	api := new(MockProfileAPI)
	svc := NewProfileService(links, api, 8, time.Minute)

	links.On("Status", mock.Anything, "123").Return(linkedRecord(), nil)
	api.On("GetUser", mock.Anything, domain.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, "", domain.ModeStandard).
		Return(&osu.User{ID: 2, Username: "peppy"}, nil, nil).Once()

	user, err := svc.Lookup(context.Background(), "123", "", "")

	require.NoError(t, err)
	assert.Equal(t, "peppy", user.Username)
	links.AssertNotCalled(t, "SaveTokens", mock.Anything, mock.Anything, mock.Anything)
}

func TestProfileLookup_PersistsRefreshedTokens(t *testing.T) {
	links := new(MockLinkService)
	api := new(MockProfileAPI)
	svc := NewProfileService(links, api, 8, time.Minute)

	refreshed := &domain.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}
	links.On("Status", mock.Anything, "123").Return(linkedRecord(), nil)
	api.On("GetUser", mock.Anything, mock.Anything, "peppy", domain.ModeTaiko).
		Return(&osu.User{ID: 2, Username: "peppy"}, refreshed, nil)
	links.On("SaveTokens", mock.Anything, "123", *refreshed).Return(nil).Once()

	_, err := svc.Lookup(context.Background(), "123", "peppy", domain.ModeTaiko)

	require.NoError(t, err)
	links.AssertExpectations(t)
}

func TestProfileLookup_PersistsRefreshedTokensEvenOnRetryFailure(t *testing.T) {
	links := new(MockLinkService)
	api := new(MockProfileAPI)
	svc := NewProfileService(links, api, 8, time.Minute)

	refreshed := &domain.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}
	links.On("Status", mock.Anything, "123").Return(linkedRecord(), nil)
	api.On("GetUser", mock.Anything, mock.Anything, "ghost", domain.ModeStandard).
		Return(nil, refreshed, domain.ErrNotFound)
	links.On("SaveTokens", mock.Anything, "123", *refreshed).Return(nil).Once()

	_, err := svc.Lookup(context.Background(), "123", "ghost", "")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	links.AssertExpectations(t)
}

func TestProfileLookup_CachesResults(t *testing.T) {
	links := new(MockLinkService)
	api := new(MockProfileAPI)
	svc := NewProfileService(links, api, 8, time.Minute)

	links.On("Status", mock.Anything, "123").Return(linkedRecord(), nil).Twice()
	api.On("GetUser", mock.Anything, mock.Anything, "Peppy", domain.ModeMania).
		Return(&osu.User{ID: 2, Username: "peppy"}, nil, nil).Once()

	_, err := svc.Lookup(context.Background(), "123", "Peppy", domain.ModeMania)
	require.NoError(t, err)
	_, err = svc.Lookup(context.Background(), "123", "peppy", domain.ModeMania)
	require.NoError(t, err)

	api.AssertNumberOfCalls(t, "GetUser", 1)

	svc.Forget("123")
	links.On("Status", mock.Anything, "123").Return(nil, domain.ErrNotFound).Once()
	_, err = svc.Lookup(context.Background(), "123", "peppy", domain.ModeMania)
	assert.ErrorIs(t, err, ErrNotLinked)
}

func TestProfileLookup_NotLinked(t *testing.T) {
	links := new(MockLinkService)
	api := new(MockProfileAPI)
	svc := NewProfileService(links, api, 8, time.Minute)

	links.On("Status", mock.Anything, "123").Return(nil, domain.ErrNotFound)

	_, err := svc.Lookup(context.Background(), "123", "", "")

	assert.ErrorIs(t, err, ErrNotLinked)
	api.AssertNotCalled(t, "GetUser", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProfileLookup_InvalidMode(t *testing.T) {
	links := new(MockLinkService)
	api := new(MockProfileAPI)
	svc := NewProfileService(links, api, 8, time.Minute)

	_, err := svc.Lookup(context.Background(), "123", "", "catch")

	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	links.AssertNotCalled(t, "Status", mock.Anything, mock.Anything)
}

func TestProfileLookup_StoreError(t *testing.T) {
	links := new(MockLinkService)
	svc := NewProfileService(links, new(MockProfileAPI), 8, time.Minute)

	links.On("Status", mock.Anything, "123").Return(nil, domain.ErrStoreUnavailable)

	_, err := svc.Lookup(context.Background(), "123", "", "")

	assert.True(t, errors.Is(err, domain.ErrStoreUnavailable))
}

func TestProfileLookup_UnlinkElsewhereBypassesCache(t *testing.T) {
	links := new(MockLinkService)
	api := new(MockProfileAPI)
	svc := NewProfileService(links, api, 8, time.Minute)

	links.On("Status", mock.Anything, "123").Return(linkedRecord(), nil).Once()
	api.On("GetUser", mock.Anything, mock.Anything, "", domain.ModeStandard).
		Return(&osu.User{ID: 2, Username: "peppy"}, nil, nil).Once()

	_, err := svc.Lookup(context.Background(), "123", "", "")
	require.NoError(t, err)

	// Unlinked through the HTTP API, so Forget was never called here.
	links.On("Status", mock.Anything, "123").Return(nil, domain.ErrNotFound).Once()
	_, err = svc.Lookup(context.Background(), "123", "", "")
	assert.ErrorIs(t, err, ErrNotLinked)

	// Relinking must not resurrect the stale cached profile.
	links.On("Status", mock.Anything, "123").Return(linkedRecord(), nil).Once()
	api.On("GetUser", mock.Anything, mock.Anything, "", domain.ModeStandard).
		Return(&osu.User{ID: 2, Username: "peppy-renamed"}, nil, nil).Once()
	user, err := svc.Lookup(context.Background(), "123", "", "")
	require.NoError(t, err)
	assert.Equal(t, "peppy-renamed", user.Username)
	api.AssertNumberOfCalls(t, "GetUser", 2)
}

func TestProfileLookup_KeepsStoredRefreshTokenWhenNotRotated(t *testing.T) {
	links := new(MockLinkService)
	api := new(MockProfileAPI)
	svc := NewProfileService(links, api, 8, time.Minute)

	links.On("Status", mock.Anything, "123").Return(linkedRecord(), nil)
	api.On("GetUser", mock.Anything, mock.Anything, "", domain.ModeStandard).
		Return(&osu.User{ID: 2}, &domain.TokenPair{AccessToken: "new-access"}, nil)
	links.On("SaveTokens", mock.Anything, "123", domain.TokenPair{AccessToken: "new-access", RefreshToken: "refresh"}).
		Return(nil).Once()

	_, err := svc.Lookup(context.Background(), "123", "", "")

	require.NoError(t, err)
	links.AssertExpectations(t)
}

func TestTopScores(t *testing.T) {
	links := new(MockLinkService)
	api := new(MockProfileAPI)
	svc := NewProfileService(links, api, 8, time.Minute)

	scores := []osu.Score{{ID: 1, PP: 500}, {ID: 2, PP: 400}}
	links.On("Status", mock.Anything, "123").Return(linkedRecord(), nil)
	api.On("GetUser", mock.Anything, mock.Anything, "peppy", domain.ModeTaiko).
		Return(&osu.User{ID: 2, Username: "peppy"}, nil, nil)
	api.On("GetBestScores", mock.Anything, mock.Anything, 2, domain.ModeTaiko, TopScoresLimit).
		Return(scores, nil, nil).Once()

	user, got, err := svc.TopScores(context.Background(), "123", "peppy", domain.ModeTaiko)

	require.NoError(t, err)
	assert.Equal(t, "peppy", user.Username)
	assert.Equal(t, scores, got)
}

func TestTopScores_UsesTokensRefreshedByProfileFetch(t *testing.T) {
	links := new(MockLinkService)
	api := new(MockProfileAPI)
	svc := NewProfileService(links, api, 8, time.Minute)

	refreshed := &domain.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}
	links.On("Status", mock.Anything, "123").Return(linkedRecord(), nil)
	links.On("SaveTokens", mock.Anything, "123", *refreshed).Return(nil).Once()
	api.On("GetUser", mock.Anything, mock.Anything, "", domain.ModeStandard).
		Return(&osu.User{ID: 2}, refreshed, nil)
	api.On("GetBestScores", mock.Anything, *refreshed, 2, domain.ModeStandard, TopScoresLimit).
		Return([]osu.Score{}, nil, nil).Once()

	_, _, err := svc.TopScores(context.Background(), "123", "", "")

	require.NoError(t, err)
	api.AssertExpectations(t)
	links.AssertExpectations(t)
}

func TestTopScores_NotLinked(t *testing.T) {
	links := new(MockLinkService)
	api := new(MockProfileAPI)
	svc := NewProfileService(links, api, 8, time.Minute)

	links.On("Status", mock.Anything, "123").Return(nil, domain.ErrNotFound)

	_, _, err := svc.TopScores(context.Background(), "123", "", "")

	assert.ErrorIs(t, err, ErrNotLinked)
	api.AssertNotCalled(t, "GetBestScores", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBeatmapLookups(t *testing.T) {
	links := new(MockLinkService)
	api := new(MockProfileAPI)
	svc := NewProfileService(links, api, 8, time.Minute)

	stored := domain.TokenPair{AccessToken: "access", RefreshToken: "refresh"}
	links.On("Status", mock.Anything, "123").Return(linkedRecord(), nil)
	api.On("GetBeatmap", mock.Anything, stored, 75).Return(&osu.Beatmap{ID: 75, Version: "Insane"}, nil, nil)
	api.On("GetBeatmapset", mock.Anything, stored, 1).Return(&osu.Beatmapset{ID: 1, Title: "DISCO PRINCE"}, nil, nil)

	beatmap, err := svc.Beatmap(context.Background(), "123", 75)
	require.NoError(t, err)
	assert.Equal(t, "Insane", beatmap.Version)

	set, err := svc.Beatmapset(context.Background(), "123", 1)
	require.NoError(t, err)
	assert.Equal(t, "DISCO PRINCE", set.Title)

	links.On("Status", mock.Anything, "456").Return(nil, domain.ErrNotFound)
	_, err = svc.Beatmap(context.Background(), "456", 75)
	assert.ErrorIs(t, err, ErrNotLinked)
}
