package osu

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/br0k3x/osul-bot/internal/domain"
	"github.com/br0k3x/osul-bot/internal/logger"
)

const defaultAPITimeout = 10 * time.Second

// errUnauthorized signals an expired or revoked access token.
var errUnauthorized = fmt.Errorf("%w: osu! api rejected the access token", domain.ErrUpstreamOAuth)

// Statistics is the per-mode statistics block of a user.
type Statistics struct {
	GlobalRank             *int    `json:"global_rank"`
	CountryRank            *int    `json:"country_rank"`
	PP                     float64 `json:"pp"`
	HitAccuracy            float64 `json:"hit_accuracy"`
	PlayCount              int     `json:"play_count"`
	PlayTime               int     `json:"play_time"`
	RankedScore            int64   `json:"ranked_score"`
	TotalScore             int64   `json:"total_score"`
	ReplaysWatchedByOthers int     `json:"replays_watched_by_others"`
	Count300               int64   `json:"count_300"`
	Count100               int64   `json:"count_100"`
	Count50                int64   `json:"count_50"`
	CountMiss              int64   `json:"count_miss"`
	Level                  struct {
		Current  int `json:"current"`
		Progress int `json:"progress"`
	} `json:"level"`
	GradeCounts struct {
		SS  int `json:"ss"`
		SSH int `json:"ssh"`
		S   int `json:"s"`
		SH  int `json:"sh"`
		A   int `json:"a"`
	} `json:"grade_counts"`
}

// Team is the team a user plays for.
type Team struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
}

// User is the subset of the osu! user object shown by the bot.
type User struct {
	ID                     int        `json:"id"`
	Username               string     `json:"username"`
	CountryCode            string     `json:"country_code"`
	AvatarURL              string     `json:"avatar_url"`
	LastVisit              *time.Time `json:"last_visit"`
	Statistics             Statistics `json:"statistics"`
	Team                   *Team      `json:"team"`
	PreviousUsernames      []string   `json:"previous_usernames"`
	Playstyle              []string   `json:"playstyle"`
	Occupation             *string    `json:"occupation"`
	Interests              *string    `json:"interests"`
	Location               *string    `json:"location"`
	Discord                *string    `json:"discord"`
	Twitter                *string    `json:"twitter"`
	PendingBeatmapsetCount int        `json:"pending_beatmapset_count"`
	SupportLevel           int        `json:"support_level"`
	RankHighest            *struct {
		Rank int `json:"rank"`
	} `json:"rank_highest"`
	Kudosu struct {
		Total     int `json:"total"`
		Available int `json:"available"`
	} `json:"kudosu"`
	Cover struct {
		URL string `json:"url"`
	} `json:"cover"`
}

// Covers holds the artwork URLs of a beatmapset.
type Covers struct {
	Cover2x string `json:"cover@2x"`
	Card2x  string `json:"card@2x"`
	List2x  string `json:"list@2x"`
}

// Beatmap is a single difficulty.
type Beatmap struct {
	ID               int         `json:"id"`
	BeatmapsetID     int         `json:"beatmapset_id"`
	Version          string      `json:"version"`
	Mode             string      `json:"mode"`
	Status           string      `json:"status"`
	DifficultyRating float64     `json:"difficulty_rating"`
	BPM              float64     `json:"bpm"`
	TotalLength      int         `json:"total_length"`
	CountCircles     int         `json:"count_circles"`
	CountSliders     int         `json:"count_sliders"`
	CountSpinners    int         `json:"count_spinners"`
	MaxCombo         int         `json:"max_combo"`
	CS               float64     `json:"cs"`
	AR               float64     `json:"ar"`
	OD               float64     `json:"accuracy"`
	HP               float64     `json:"drain"`
	Beatmapset       *Beatmapset `json:"beatmapset,omitempty"`
}

// Beatmapset is a song with its difficulties.
type Beatmapset struct {
	ID         int        `json:"id"`
	Title      string     `json:"title"`
	Artist     string     `json:"artist"`
	Creator    string     `json:"creator"`
	Status     string     `json:"status"`
	BPM        float64    `json:"bpm"`
	RankedDate *time.Time `json:"ranked_date"`
	Covers     Covers     `json:"covers"`
	Beatmaps   []Beatmap  `json:"beatmaps"`
}

// Score is one entry of a user's best performances.
type Score struct {
	ID         int64     `json:"id"`
	PP         float64   `json:"pp"`
	Accuracy   float64   `json:"accuracy"`
	Rank       string    `json:"rank"`
	MaxCombo   int       `json:"max_combo"`
	Mods       []string  `json:"mods"`
	CreatedAt  time.Time `json:"created_at"`
	Statistics struct {
		Count300  int `json:"count_300"`
		Count100  int `json:"count_100"`
		Count50   int `json:"count_50"`
		CountMiss int `json:"count_miss"`
	} `json:"statistics"`
	Beatmap    Beatmap    `json:"beatmap"`
	Beatmapset Beatmapset `json:"beatmapset"`
}

// APIClient calls the osu! v2 API on behalf of a linked user.
type APIClient struct {
	baseURL    string
	oauth      TokenExchanger
	httpClient *http.Client
}

// NewAPIClient creates a client. oauth is used to refresh expired access tokens.
func NewAPIClient(baseURL string, oauth TokenExchanger, httpClient *http.Client) *APIClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultAPITimeout}
	}
	return &APIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		oauth:      oauth,
		httpClient: httpClient,
	}
}

// GetUser fetches a profile. An empty username fetches the token owner.
// When the access token was rejected and refreshed, the new pair is returned
// alongside the user so the caller can persist it; otherwise it is nil.
func (c *APIClient) GetUser(ctx context.Context, tokens domain.TokenPair, username, mode string) (*User, *domain.TokenPair, error) {
	path := "me/" + url.PathEscape(mode)
	if username != "" {
		path = "users/" + url.PathEscape(username) + "/" + url.PathEscape(mode)
	}

	var user User
	refreshed, err := c.getAuthorized(ctx, tokens, path, &user)
	if err != nil {
		return nil, refreshed, err
	}
	return &user, refreshed, nil
}

// GetBestScores fetches up to limit of a user's best scores in mode.
func (c *APIClient) GetBestScores(ctx context.Context, tokens domain.TokenPair, userID int, mode string, limit int) ([]Score, *domain.TokenPair, error) {
	query := url.Values{}
	query.Set("mode", mode)
	query.Set("limit", strconv.Itoa(limit))
	path := "users/" + strconv.Itoa(userID) + "/scores/best?" + query.Encode()

	var scores []Score
	refreshed, err := c.getAuthorized(ctx, tokens, path, &scores)
	if err != nil {
		return nil, refreshed, err
	}
	return scores, refreshed, nil
}

// GetBeatmap fetches a single difficulty together with its set.
func (c *APIClient) GetBeatmap(ctx context.Context, tokens domain.TokenPair, beatmapID int) (*Beatmap, *domain.TokenPair, error) {
	var beatmap Beatmap
	refreshed, err := c.getAuthorized(ctx, tokens, "beatmaps/"+strconv.Itoa(beatmapID), &beatmap)
	if err != nil {
		return nil, refreshed, err
	}
	return &beatmap, refreshed, nil
}

// GetBeatmapset fetches a beatmapset with all of its difficulties.
func (c *APIClient) GetBeatmapset(ctx context.Context, tokens domain.TokenPair, beatmapsetID int) (*Beatmapset, *domain.TokenPair, error) {
	var set Beatmapset
	refreshed, err := c.getAuthorized(ctx, tokens, "beatmapsets/"+strconv.Itoa(beatmapsetID), &set)
	if err != nil {
		return nil, refreshed, err
	}
	return &set, refreshed, nil
}

// getAuthorized performs a GET and, if the access token is rejected,
// refreshes it once and retries. The refreshed pair is returned even when
// the retry fails so it is never lost.
func (c *APIClient) getAuthorized(ctx context.Context, tokens domain.TokenPair, path string, out interface{}) (*domain.TokenPair, error) {
	err := c.get(ctx, tokens.AccessToken, path, out)
	if !errors.Is(err, errUnauthorized) {
		return nil, err
	}

	refreshed, err := c.oauth.Refresh(ctx, tokens.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh access token: %w", err)
	}
	logger.FromContext(ctx).Info(LogMsgTokenRefreshed)

	if err := c.get(ctx, refreshed.AccessToken, path, out); err != nil {
		return refreshed, err
	}
	return refreshed, nil
}

func (c *APIClient) get(ctx context.Context, accessToken, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstreamUnreachable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return errUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: osu! %s", domain.ErrNotFound, path)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("osu! api returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode osu! response: %w", err)
	}
	return nil
}
