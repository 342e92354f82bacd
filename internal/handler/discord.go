package handler

import (
	"context"
	"net/http"

	"github.com/br0k3x/osul-bot/internal/domain"
	"github.com/br0k3x/osul-bot/internal/logger"
)

// MemberSearcher finds a guild member by username or global name
type MemberSearcher interface {
	FindByUsername(ctx context.Context, guildID, username string) (*domain.GuildMember, error)
}

// DiscordHandlers contains handlers backed by the Discord REST API
type DiscordHandlers struct {
	search  MemberSearcher
	guildID string
}

// NewDiscordHandlers creates new Discord handlers. A nil search or empty
// guildID leaves member search unconfigured.
func NewDiscordHandlers(search MemberSearcher, guildID string) *DiscordHandlers {
	return &DiscordHandlers{search: search, guildID: guildID}
}

// SearchUserRequest is the request body for a member search
type SearchUserRequest struct {
	Username string `json:"username" validate:"required"`
}

// SearchUserResponse describes the matched guild member
type SearchUserResponse struct {
	Success       bool   `json:"success"`
	UserID        string `json:"userId"`
	Username      string `json:"username"`
	Discriminator string `json:"discriminator"`
	GlobalName    string `json:"globalName"`
}

var searchFailures = failureMessages{Failed: ErrMsgSearchFailed, NotFound: ErrMsgDiscordUserNotFound}

// HandleSearchUser handles POST /api/discord/search-user
// @Summary Find a guild member by username
// @Description Case-insensitive match on username or global name; a trailing #discriminator is ignored.
// @Tags discord
// @Accept json
// @Produce json
// @Param request body SearchUserRequest true "Username to search for"
// @Success 200 {object} SearchUserResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/discord/search-user [post]
func (h *DiscordHandlers) HandleSearchUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SearchUserRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Search user", ErrMsgUsernameRequired); err != nil {
			return
		}

		if h.search == nil || h.guildID == "" {
			logger.FromContext(r.Context()).Error(LogMsgConfigMissing, "feature", "discord member search")
			respondError(w, http.StatusInternalServerError, ErrMsgDiscordNotConfigured)
			return
		}

		member, err := h.search.FindByUsername(r.Context(), h.guildID, req.Username)
		if err != nil {
			respondServiceError(w, r, searchFailures, err)
			return
		}

		respondJSON(w, http.StatusOK, SearchUserResponse{
			Success:       true,
			UserID:        member.UserID,
			Username:      member.Username,
			Discriminator: member.Discriminator,
			GlobalName:    member.GlobalName,
		})
	}
}
