package osu

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/br0k3x/osul-bot/internal/domain"
	"github.com/br0k3x/osul-bot/internal/logger"
	"github.com/br0k3x/osul-bot/internal/metrics"
)

// TokenExchanger performs the two OAuth grants against the osu! token endpoint.
type TokenExchanger interface {
	ExchangeCode(ctx context.Context, code, redirectURI string) (*domain.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error)
}

// OAuthConfig holds the osu! OAuth application settings
type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	AuthorizeURL string
	RedirectURI  string
}

// OAuthClient exchanges authorization codes and refresh tokens.
// Every call is a single attempt; upstream rejections are surfaced untouched.
type OAuthClient struct {
	config     oauth2.Config
	httpClient *http.Client
}

// NewOAuthClient creates a client. A nil httpClient uses http.DefaultClient.
func NewOAuthClient(cfg OAuthConfig, httpClient *http.Client) *OAuthClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &OAuthClient{
		config: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.AuthorizeURL,
				TokenURL: cfg.TokenURL,
				// Auto-detect would retry with a second request on failure.
				AuthStyle: oauth2.AuthStyleInParams,
			},
			RedirectURL: cfg.RedirectURI,
			Scopes:      DefaultScopes,
		},
		httpClient: httpClient,
	}
}

// AuthCodeURL returns the provider's authorize URL carrying state.
func (c *OAuthClient) AuthCodeURL(state string) string {
	return c.config.AuthCodeURL(state)
}

// ExchangeCode trades an authorization code for a token pair.
func (c *OAuthClient) ExchangeCode(ctx context.Context, code, redirectURI string) (*domain.TokenPair, error) {
	if code == "" || redirectURI == "" {
		metrics.OAuthExchanges.WithLabelValues(GrantAuthorizationCode, OutcomeInvalid).Inc()
		return nil, fmt.Errorf("%w: code and redirect_uri are required", domain.ErrInvalidRequest)
	}
	if err := c.checkCredentials(); err != nil {
		return nil, err
	}

	cfg := c.config
	cfg.RedirectURL = redirectURI

	tok, err := cfg.Exchange(c.clientContext(ctx), code)
	if err != nil {
		return nil, c.translate(ctx, GrantAuthorizationCode, err)
	}

	metrics.OAuthExchanges.WithLabelValues(GrantAuthorizationCode, OutcomeSuccess).Inc()
	return toTokenPair(tok), nil
}

// Refresh mints a new token pair from a refresh token. RefreshToken is empty
// when the provider did not rotate it.
func (c *OAuthClient) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	if refreshToken == "" {
		metrics.OAuthExchanges.WithLabelValues(GrantRefreshToken, OutcomeInvalid).Inc()
		return nil, fmt.Errorf("%w: refresh_token is required", domain.ErrInvalidRequest)
	}
	if err := c.checkCredentials(); err != nil {
		return nil, err
	}

	// The seed token has no access token, so the source always hits the endpoint.
	src := c.config.TokenSource(c.clientContext(ctx), &oauth2.Token{RefreshToken: refreshToken})
	tok, err := src.Token()
	if err != nil {
		return nil, c.translate(ctx, GrantRefreshToken, err)
	}

	metrics.OAuthExchanges.WithLabelValues(GrantRefreshToken, OutcomeSuccess).Inc()
	pair := toTokenPair(tok)
	// The refresher copies the seed refresh token forward when the response
	// has none; report only what the provider issued.
	if issued, _ := tok.Extra("refresh_token").(string); issued == "" {
		pair.RefreshToken = ""
	}
	return pair, nil
}

func (c *OAuthClient) checkCredentials() error {
	if c.config.ClientID == "" || c.config.ClientSecret == "" {
		return fmt.Errorf("%w: osu! client credentials", domain.ErrConfigurationMissing)
	}
	return nil
}

func (c *OAuthClient) clientContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
}

// translate maps oauth2 errors onto the domain taxonomy.
func (c *OAuthClient) translate(ctx context.Context, grant string, err error) error {
	log := logger.FromContext(ctx)

	var rErr *oauth2.RetrieveError
	if errors.As(err, &rErr) && rErr.Response != nil {
		metrics.OAuthExchanges.WithLabelValues(grant, OutcomeRejected).Inc()
		log.Error(LogMsgTokenExchangeFailed, "grant", grant, "status", rErr.Response.StatusCode, "body", string(rErr.Body))
		return &domain.OAuthError{Status: rErr.Response.StatusCode, Body: string(rErr.Body)}
	}

	metrics.OAuthExchanges.WithLabelValues(grant, OutcomeUnreachable).Inc()
	log.Error(LogMsgTokenExchangeFailed, "grant", grant, "error", err)
	return fmt.Errorf("%w: %v", domain.ErrUpstreamUnreachable, err)
}

func toTokenPair(tok *oauth2.Token) *domain.TokenPair {
	pair := &domain.TokenPair{
		TokenType:    tok.TokenType,
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ExpiresIn:    tok.ExpiresIn,
	}
	if pair.ExpiresIn == 0 && !tok.Expiry.IsZero() {
		pair.ExpiresIn = int64(time.Until(tok.Expiry).Round(time.Second) / time.Second)
	}
	return pair
}
