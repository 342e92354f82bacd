package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Request errors
	ErrMsgInvalidRequest = "invalid request"

	// Upstream errors
	ErrMsgUpstreamOAuth       = "oauth token exchange failed"
	ErrMsgUpstreamUnreachable = "upstream unreachable"

	// Storage errors
	ErrMsgStoreUnavailable = "database not connected"

	// Lookup errors
	ErrMsgNotFound = "not found"

	// Configuration errors
	ErrMsgConfigurationMissing = "configuration missing"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInvalidRequest = errors.New(ErrMsgInvalidRequest)

	ErrUpstreamOAuth       = errors.New(ErrMsgUpstreamOAuth)
	ErrUpstreamUnreachable = errors.New(ErrMsgUpstreamUnreachable)

	ErrStoreUnavailable = errors.New(ErrMsgStoreUnavailable)

	ErrNotFound = errors.New(ErrMsgNotFound)

	ErrConfigurationMissing = errors.New(ErrMsgConfigurationMissing)
)

// OAuthError is returned when the identity provider rejects a token request.
// Status and Body are the upstream response, untouched.
type OAuthError struct {
	Status int
	Body   string
}

func (e *OAuthError) Error() string {
	return fmt.Sprintf("%s: status %d", ErrMsgUpstreamOAuth, e.Status)
}

// Is lets errors.Is(err, ErrUpstreamOAuth) match any OAuthError.
func (e *OAuthError) Is(target error) bool {
	return target == ErrUpstreamOAuth
}
