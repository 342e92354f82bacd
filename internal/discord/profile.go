package discord

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/br0k3x/osul-bot/internal/domain"
	"github.com/br0k3x/osul-bot/internal/linking"
	"github.com/br0k3x/osul-bot/internal/logger"
	"github.com/br0k3x/osul-bot/internal/osu"
)

// TopScoresLimit is how many best scores /osu top shows.
const TopScoresLimit = 5

// ErrNotLinked is returned when the caller has no stored osu! tokens.
var ErrNotLinked = errors.New("osu! account not linked")

// ProfileAPI calls the osu! API with a user's tokens.
// A non-nil refreshed pair means the access token was renewed.
type ProfileAPI interface {
	GetUser(ctx context.Context, tokens domain.TokenPair, username, mode string) (user *osu.User, refreshed *domain.TokenPair, err error)
	GetBestScores(ctx context.Context, tokens domain.TokenPair, userID int, mode string, limit int) (scores []osu.Score, refreshed *domain.TokenPair, err error)
	GetBeatmap(ctx context.Context, tokens domain.TokenPair, beatmapID int) (beatmap *osu.Beatmap, refreshed *domain.TokenPair, err error)
	GetBeatmapset(ctx context.Context, tokens domain.TokenPair, beatmapsetID int) (set *osu.Beatmapset, refreshed *domain.TokenPair, err error)
}

// ProfileService resolves osu! data for Discord users using their stored tokens.
type ProfileService struct {
	links linking.Service
	api   ProfileAPI
	cache *profileCache
}

// session carries one caller's tokens through a command.
type session struct {
	discordID string
	tokens    domain.TokenPair
}

// NewProfileService creates a profile service with a short-lived result cache
func NewProfileService(links linking.Service, api ProfileAPI, cacheSize int, cacheTTL time.Duration) *ProfileService {
	return &ProfileService{
		links: links,
		api:   api,
		cache: newProfileCache(cacheSize, cacheTTL),
	}
}

// Lookup fetches the profile of username (or of the caller when empty) in
// mode using the caller's stored tokens. Renewed tokens are persisted.
func (p *ProfileService) Lookup(ctx context.Context, discordID, username, mode string) (*osu.User, error) {
	user, _, err := p.lookup(ctx, discordID, username, mode)
	return user, err
}

// TopScores fetches the best scores of username (or of the caller) in mode.
func (p *ProfileService) TopScores(ctx context.Context, discordID, username, mode string) (*osu.User, []osu.Score, error) {
	user, sess, err := p.lookup(ctx, discordID, username, mode)
	if err != nil {
		return nil, nil, err
	}

	scores, refreshed, err := p.api.GetBestScores(ctx, sess.tokens, user.ID, normalizeMode(mode), TopScoresLimit)
	p.renew(ctx, sess, refreshed)
	if err != nil {
		return nil, nil, err
	}
	return user, scores, nil
}

// Beatmap fetches a single difficulty with the caller's tokens.
func (p *ProfileService) Beatmap(ctx context.Context, discordID string, beatmapID int) (*osu.Beatmap, error) {
	sess, err := p.open(ctx, discordID)
	if err != nil {
		return nil, err
	}
	beatmap, refreshed, err := p.api.GetBeatmap(ctx, sess.tokens, beatmapID)
	p.renew(ctx, sess, refreshed)
	return beatmap, err
}

// Beatmapset fetches a beatmapset with the caller's tokens.
func (p *ProfileService) Beatmapset(ctx context.Context, discordID string, beatmapsetID int) (*osu.Beatmapset, error) {
	sess, err := p.open(ctx, discordID)
	if err != nil {
		return nil, err
	}
	set, refreshed, err := p.api.GetBeatmapset(ctx, sess.tokens, beatmapsetID)
	p.renew(ctx, sess, refreshed)
	return set, err
}

// Forget drops cached profiles requested by discordID, e.g. after an unlink.
func (p *ProfileService) Forget(discordID string) {
	p.cache.InvalidateUser(discordID)
}

// lookup checks the link before the cache so an unlink made elsewhere
// stops cached profiles from being served.
func (p *ProfileService) lookup(ctx context.Context, discordID, username, mode string) (*osu.User, *session, error) {
	mode = normalizeMode(mode)
	if _, ok := domain.ModeDisplayNames[mode]; !ok {
		return nil, nil, fmt.Errorf("%w: unknown mode %q", domain.ErrInvalidRequest, mode)
	}

	sess, err := p.open(ctx, discordID)
	if errors.Is(err, ErrNotLinked) {
		p.cache.InvalidateUser(discordID)
	}
	if err != nil {
		return nil, nil, err
	}

	if user, ok := p.cache.Get(discordID, username, mode); ok {
		return user, sess, nil
	}

	user, refreshed, err := p.api.GetUser(ctx, sess.tokens, username, mode)
	p.renew(ctx, sess, refreshed)
	if err != nil {
		return nil, nil, err
	}

	p.cache.Set(discordID, username, mode, user)
	return user, sess, nil
}

func (p *ProfileService) open(ctx context.Context, discordID string) (*session, error) {
	record, err := p.links.Status(ctx, discordID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrNotLinked
	}
	if err != nil {
		return nil, err
	}
	return &session{
		discordID: discordID,
		tokens: domain.TokenPair{
			AccessToken:  record.AccessToken,
			RefreshToken: record.RefreshToken,
		},
	}, nil
}

// renew adopts and persists a refreshed pair. The stored refresh token stays
// in use when the provider did not rotate it.
func (p *ProfileService) renew(ctx context.Context, sess *session, refreshed *domain.TokenPair) {
	if refreshed == nil {
		return
	}
	next := *refreshed
	if next.RefreshToken == "" {
		next.RefreshToken = sess.tokens.RefreshToken
	}
	sess.tokens = next

	if err := p.links.SaveTokens(ctx, sess.discordID, next); err != nil {
		logger.FromContext(ctx).Error("Failed to persist refreshed osu! tokens", LogKeyUserID, sess.discordID, LogKeyError, err)
	}
}

func normalizeMode(mode string) string {
	if mode == "" {
		return domain.ModeStandard
	}
	return mode
}
