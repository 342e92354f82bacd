package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/br0k3x/osul-bot/internal/domain"
	"github.com/br0k3x/osul-bot/internal/logger"
)

// ErrorResponse is the body of every failed request.
// Details and Status are only set for upstream OAuth failures.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Status  int    `json:"status,omitempty"`
}

// SuccessResponse is returned by operations without a payload.
// Warnings lists side effects that failed without failing the request.
type SuccessResponse struct {
	Success  bool     `json:"success"`
	Message  string   `json:"message"`
	Warnings []string `json:"warnings,omitempty"`
}

// bufferPool reduces allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode before writing headers so an encoding failure can still become a 500.
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// failureMessages names the client-facing messages for one operation.
type failureMessages struct {
	// Failed is used for transport and storage failures.
	Failed string
	// NotFound is used when the target does not exist.
	NotFound string
}

// respondServiceError maps a service error to a status code and JSON body
// and logs it. Upstream OAuth rejections keep their status and raw body.
func respondServiceError(w http.ResponseWriter, r *http.Request, msgs failureMessages, err error) {
	log := logger.FromContext(r.Context())

	var oauthErr *domain.OAuthError
	switch {
	case errors.As(err, &oauthErr):
		log.Warn(LogMsgOAuthExchangeFailed, "status", oauthErr.Status, "body", oauthErr.Body)
		respondJSON(w, oauthErr.Status, ErrorResponse{
			Error:   ErrMsgOAuthExchangeFailed,
			Details: oauthErr.Body,
			Status:  oauthErr.Status,
		})
	case errors.Is(err, domain.ErrInvalidRequest):
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestSummary)
	case errors.Is(err, domain.ErrNotFound):
		respondError(w, http.StatusNotFound, msgs.NotFound)
	case errors.Is(err, domain.ErrStoreUnavailable):
		log.Error(LogMsgRequestFailed, "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgDatabaseNotConnected)
	case errors.Is(err, domain.ErrConfigurationMissing):
		log.Error(LogMsgConfigMissing, "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
	default:
		log.Error(LogMsgRequestFailed, "error", err)
		respondError(w, http.StatusInternalServerError, msgs.Failed)
	}
}
