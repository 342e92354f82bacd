package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/br0k3x/osul-bot/internal/linking"
)

// LinkingHandlers contains handlers for Discord account linking
type LinkingHandlers struct {
	svc linking.Service
}

// NewLinkingHandlers creates new linking handlers
func NewLinkingHandlers(svc linking.Service) *LinkingHandlers {
	return &LinkingHandlers{svc: svc}
}

// LinkRequest is the request body for linking a Discord account
type LinkRequest struct {
	ID         string `json:"id" validate:"required"`
	OsuToken   string `json:"osu_token" validate:"required"`
	OsuRefresh string `json:"osu_refresh" validate:"required"`
}

// LinkStatusResponse reports whether a Discord account is linked
type LinkStatusResponse struct {
	Linked   bool      `json:"linked"`
	LinkedAt time.Time `json:"linkedAt"`
}

var (
	linkFailures   = failureMessages{Failed: ErrMsgLinkFailed, NotFound: ErrMsgNotLinked}
	statusFailures = failureMessages{Failed: ErrMsgStatusFailed, NotFound: ErrMsgNotLinked}
	unlinkFailures = failureMessages{Failed: ErrMsgUnlinkFailed, NotFound: ErrMsgNotLinked}
)

// HandleLink handles POST /api/oauth/osu/link/discord
// @Summary Link a Discord account to osu! tokens
// @Description Stores the tokens for the Discord user, then grants the configured guild roles.
// @Description Role grants are best-effort; failures are listed in warnings.
// @Tags linking
// @Accept json
// @Produce json
// @Param request body LinkRequest true "Discord id and osu! tokens"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/oauth/osu/link/discord [post]
func (h *LinkingHandlers) HandleLink() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LinkRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Link Discord", ErrMsgMissingLinkFields); err != nil {
			return
		}

		result, err := h.svc.Link(r.Context(), req.ID, req.OsuToken, req.OsuRefresh)
		if err != nil {
			respondServiceError(w, r, linkFailures, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{
			Success:  true,
			Message:  MsgLinkSuccess,
			Warnings: result.Warnings,
		})
	}
}

// HandleStatus handles GET /api/oauth/osu/link/discord/{id}
// @Summary Get link status of a Discord account
// @Tags linking
// @Produce json
// @Param id path string true "Discord user id"
// @Success 200 {object} LinkStatusResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/oauth/osu/link/discord/{id} [get]
func (h *LinkingHandlers) HandleStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record, err := h.svc.Status(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, statusFailures, err)
			return
		}

		respondJSON(w, http.StatusOK, LinkStatusResponse{Linked: true, LinkedAt: record.LinkedAt})
	}
}

// HandleUnlink handles DELETE /api/oauth/osu/link/discord/{id}
// @Summary Unlink a Discord account
// @Tags linking
// @Produce json
// @Param id path string true "Discord user id"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/oauth/osu/link/discord/{id} [delete]
func (h *LinkingHandlers) HandleUnlink() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.svc.Unlink(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondServiceError(w, r, unlinkFailures, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Success: true, Message: MsgUnlinkSuccess})
	}
}
