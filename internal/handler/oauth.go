package handler

import (
	"fmt"
	"net/http"

	"github.com/br0k3x/osul-bot/internal/domain"
	"github.com/br0k3x/osul-bot/internal/osu"
)

// OAuthHandlers contains handlers for the osu! OAuth grants
type OAuthHandlers struct {
	oauth       osu.TokenExchanger
	redirectURI string
}

// NewOAuthHandlers creates new OAuth handlers. redirectURI must match the
// URI registered with the osu! OAuth application.
func NewOAuthHandlers(oauth osu.TokenExchanger, redirectURI string) *OAuthHandlers {
	return &OAuthHandlers{oauth: oauth, redirectURI: redirectURI}
}

// CallbackRequest is the request body for an authorization code exchange
type CallbackRequest struct {
	Code  string `json:"code" validate:"required"`
	State string `json:"state" validate:"required"`
}

// RefreshRequest is the request body for a token refresh
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// TokensResponse wraps the token endpoint response
type TokensResponse struct {
	Success bool              `json:"success"`
	Tokens  *domain.TokenPair `json:"tokens"`
}

var (
	callbackFailures = failureMessages{Failed: ErrMsgOAuthCallbackFailed}
	refreshFailures  = failureMessages{Failed: ErrMsgOAuthRefreshFailed}
)

// HandleCallback handles POST /api/oauth/osu/callback
// @Summary Exchange an osu! authorization code
// @Description Exchanges the code from the osu! authorize redirect for a token pair
// @Tags oauth
// @Accept json
// @Produce json
// @Param request body CallbackRequest true "Authorization code and state"
// @Success 200 {object} TokensResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse "Upstream rejection; status mirrors osu!"
// @Failure 500 {object} ErrorResponse
// @Router /api/oauth/osu/callback [post]
func (h *OAuthHandlers) HandleCallback() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CallbackRequest
		if err := DecodeAndValidateRequest(r, w, &req, "OAuth callback", ErrMsgMissingCodeOrState); err != nil {
			return
		}

		if h.redirectURI == "" {
			respondServiceError(w, r, callbackFailures, fmt.Errorf("%w: callback URI", domain.ErrConfigurationMissing))
			return
		}

		tokens, err := h.oauth.ExchangeCode(r.Context(), req.Code, h.redirectURI)
		if err != nil {
			respondServiceError(w, r, callbackFailures, err)
			return
		}

		respondJSON(w, http.StatusOK, TokensResponse{Success: true, Tokens: tokens})
	}
}

// HandleRefresh handles POST /api/oauth/osu/refresh
// @Summary Refresh an osu! access token
// @Tags oauth
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "Refresh token"
// @Success 200 {object} TokensResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse "Upstream rejection; status mirrors osu!"
// @Failure 500 {object} ErrorResponse
// @Router /api/oauth/osu/refresh [post]
func (h *OAuthHandlers) HandleRefresh() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RefreshRequest
		if err := DecodeAndValidateRequest(r, w, &req, "OAuth refresh", ErrMsgMissingRefreshToken); err != nil {
			return
		}

		tokens, err := h.oauth.Refresh(r.Context(), req.RefreshToken)
		if err != nil {
			respondServiceError(w, r, refreshFailures, err)
			return
		}

		respondJSON(w, http.StatusOK, TokensResponse{Success: true, Tokens: tokens})
	}
}
