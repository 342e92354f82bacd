package linking

import (
	"context"
	"fmt"

	"github.com/br0k3x/osul-bot/internal/domain"
	"github.com/br0k3x/osul-bot/internal/logger"
	"github.com/br0k3x/osul-bot/internal/metrics"
)

// RoleConfig selects the roles granted after a successful link.
// An empty GuildID or RoleIDs disables role assignment.
type RoleConfig struct {
	GuildID string
	RoleIDs []string
}

// Service defines the account linking operations
type Service interface {
	// Link stores the tokens for discordID, then grants the configured roles.
	Link(ctx context.Context, discordID, accessToken, refreshToken string) (*LinkResult, error)

	// Status returns the stored record for discordID
	Status(ctx context.Context, discordID string) (*domain.LinkRecord, error)

	// Unlink removes the stored record for discordID
	Unlink(ctx context.Context, discordID string) error

	// SaveTokens replaces the stored tokens after a refresh
	SaveTokens(ctx context.Context, discordID string, tokens domain.TokenPair) error
}

// LinkResult represents the outcome of a link request.
// Warnings lists role grants that failed; the link itself still succeeded.
type LinkResult struct {
	Record   *domain.LinkRecord
	Warnings []string
}

type service struct {
	repo   Repository
	roles  RoleGranter
	config RoleConfig
}

// NewService creates a new linking service.
// repo may be nil when no database is configured; every operation then
// fails with domain.ErrStoreUnavailable. roles may be nil to disable grants.
func NewService(repo Repository, roles RoleGranter, config RoleConfig) Service {
	return &service{
		repo:   repo,
		roles:  roles,
		config: config,
	}
}

func (s *service) Link(ctx context.Context, discordID, accessToken, refreshToken string) (*LinkResult, error) {
	log := logger.FromContext(ctx)

	if s.repo == nil {
		return nil, domain.ErrStoreUnavailable
	}
	if discordID == "" || accessToken == "" || refreshToken == "" {
		return nil, fmt.Errorf("%w: id, osu_token and osu_refresh are required", domain.ErrInvalidRequest)
	}

	record, err := s.repo.UpsertLink(ctx, discordID, accessToken, refreshToken)
	if err != nil {
		return nil, fmt.Errorf(ErrContextFailedToUpsertLink, err)
	}
	metrics.LinkUpserts.Inc()
	log.Info(LogMsgAccountLinked, LogKeyDiscordID, discordID)

	// The record is durable from here on; role failures never fail the link.
	return &LinkResult{
		Record:   record,
		Warnings: s.grantRoles(ctx, discordID),
	}, nil
}

func (s *service) grantRoles(ctx context.Context, discordID string) []string {
	log := logger.FromContext(ctx)

	if s.roles == nil || s.config.GuildID == "" || len(s.config.RoleIDs) == 0 {
		log.Debug(LogMsgRoleAssignmentSkip)
		return nil
	}

	failures := s.roles.GrantRoles(ctx, s.config.GuildID, discordID, s.config.RoleIDs)

	var warnings []string
	for _, f := range failures {
		log.Error(LogMsgRoleGrantFailed, LogKeyDiscordID, discordID, LogKeyRoleID, f.RoleID, LogKeyError, f.Err)
		warnings = append(warnings, fmt.Sprintf(WarningRoleGrantFailed, f.RoleID))
	}

	log.Info(LogMsgRolesAssigned,
		LogKeyDiscordID, discordID,
		LogKeyRoles, len(s.config.RoleIDs),
		LogKeyFailed, len(failures))
	return warnings
}

func (s *service) Status(ctx context.Context, discordID string) (*domain.LinkRecord, error) {
	if s.repo == nil {
		return nil, domain.ErrStoreUnavailable
	}
	if discordID == "" {
		return nil, fmt.Errorf("%w: id is required", domain.ErrInvalidRequest)
	}

	record, err := s.repo.GetLink(ctx, discordID)
	if err != nil {
		return nil, fmt.Errorf(ErrContextFailedToGetLink, err)
	}
	return record, nil
}

func (s *service) Unlink(ctx context.Context, discordID string) error {
	if s.repo == nil {
		return domain.ErrStoreUnavailable
	}
	if discordID == "" {
		return fmt.Errorf("%w: id is required", domain.ErrInvalidRequest)
	}

	if err := s.repo.DeleteLink(ctx, discordID); err != nil {
		return fmt.Errorf(ErrContextFailedToUnlink, err)
	}
	metrics.Unlinks.Inc()
	logger.FromContext(ctx).Info(LogMsgAccountUnlinked, LogKeyDiscordID, discordID)
	return nil
}

func (s *service) SaveTokens(ctx context.Context, discordID string, tokens domain.TokenPair) error {
	if s.repo == nil {
		return domain.ErrStoreUnavailable
	}
	if discordID == "" || tokens.AccessToken == "" || tokens.RefreshToken == "" {
		return fmt.Errorf("%w: id and both tokens are required", domain.ErrInvalidRequest)
	}

	if err := s.repo.UpdateTokens(ctx, discordID, tokens.AccessToken, tokens.RefreshToken); err != nil {
		return fmt.Errorf(ErrContextFailedToUpdateTokens, err)
	}
	logger.FromContext(ctx).Debug(LogMsgTokensUpdated, LogKeyDiscordID, discordID)
	return nil
}
