package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/br0k3x/osul-bot/internal/domain"
)

// LinkRepository implements linking.Repository
type LinkRepository struct {
	db *pgxpool.Pool
}

// NewLinkRepository creates a new link repository
func NewLinkRepository(db *pgxpool.Pool) *LinkRepository {
	return &LinkRepository{db: db}
}

// UpsertLink creates the record or overwrites its tokens and linked_at in a
// single statement, so concurrent links for one user cannot create duplicates.
func (r *LinkRepository) UpsertLink(ctx context.Context, discordID, accessToken, refreshToken string) (*domain.LinkRecord, error) {
	query := `
		INSERT INTO osu_links (discord_id, osu_access_token, osu_refresh_token, linked_at)
		VALUES ($1, $2, $3, clock_timestamp())
		ON CONFLICT (discord_id) DO UPDATE
		SET osu_access_token = EXCLUDED.osu_access_token,
		    osu_refresh_token = EXCLUDED.osu_refresh_token,
		    linked_at = EXCLUDED.linked_at
		RETURNING discord_id, osu_access_token, osu_refresh_token, linked_at
	`
	var record domain.LinkRecord
	err := r.db.QueryRow(ctx, query, discordID, accessToken, refreshToken).Scan(
		&record.DiscordID,
		&record.AccessToken,
		&record.RefreshToken,
		&record.LinkedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToUpsertLink, err)
	}
	return &record, nil
}

// GetLink retrieves the record for a Discord user
func (r *LinkRepository) GetLink(ctx context.Context, discordID string) (*domain.LinkRecord, error) {
	query := `
		SELECT discord_id, osu_access_token, osu_refresh_token, linked_at
		FROM osu_links
		WHERE discord_id = $1
	`
	var record domain.LinkRecord
	err := r.db.QueryRow(ctx, query, discordID).Scan(
		&record.DiscordID,
		&record.AccessToken,
		&record.RefreshToken,
		&record.LinkedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetLink, err)
	}
	return &record, nil
}

// UpdateTokens replaces the stored tokens without touching linked_at
func (r *LinkRepository) UpdateTokens(ctx context.Context, discordID, accessToken, refreshToken string) error {
	query := `
		UPDATE osu_links
		SET osu_access_token = $2, osu_refresh_token = $3
		WHERE discord_id = $1
	`
	tag, err := r.db.Exec(ctx, query, discordID, accessToken, refreshToken)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateTokens, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteLink removes the record for a Discord user
func (r *LinkRepository) DeleteLink(ctx context.Context, discordID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM osu_links WHERE discord_id = $1`, discordID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteLink, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
