package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/br0k3x/osul-bot/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// DecodeAndValidateRequest decodes a JSON request body into req and validates it.
// On failure a 400 has already been written with missingMsg as the error and
// the handler should return without calling any downstream component.
//
// Example usage:
//
//	var req CallbackRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "OAuth callback", ErrMsgMissingCodeOrState); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName, missingMsg string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Debug(fmt.Sprintf("%s request rejected", actionName), "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  missingMsg,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}
