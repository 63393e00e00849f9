package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"github.com/brixlabs/brix-cli/internal/core/domain"
	"github.com/brixlabs/brix-cli/internal/core/ports/driven"
)

// Config keys read by the OAuth provider.
const (
	keyOAuthClientID     = "auth.oauth.client_id"
	keyOAuthTokenURL     = "auth.oauth.token_url"
	keyOAuthAccessToken  = "auth.oauth.access_token"
	keyOAuthRefreshToken = "auth.oauth.refresh_token"
	keyOAuthExpiry       = "auth.oauth.expiry"
)

// Ensure OAuthProvider implements the TokenProvider interface.
var _ driven.TokenProvider = (*OAuthProvider)(nil)

// OAuthProvider provides OAuth access tokens with automatic refresh via an
// oauth2.TokenSource. Refreshed tokens are written back to the config store
// so the next process start reuses them.
type OAuthProvider struct {
	config driven.ConfigStore

	mu     sync.Mutex
	source oauth2.TokenSource
}

// NewOAuthProvider creates a token provider for OAuth-based authentication.
func NewOAuthProvider(config driven.ConfigStore) *OAuthProvider {
	return &OAuthProvider{config: config}
}

// GetToken returns a valid access token, refreshing through the token
// endpoint when the stored one has expired.
func (p *OAuthProvider) GetToken(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	stored := p.storedToken()
	if stored.AccessToken == "" && stored.RefreshToken == "" {
		return "", domain.ErrAuthRequired
	}

	if p.source == nil {
		cfg := &oauth2.Config{
			ClientID: p.config.GetString(keyOAuthClientID),
			Endpoint: oauth2.Endpoint{TokenURL: p.config.GetString(keyOAuthTokenURL)},
		}
		p.source = cfg.TokenSource(context.Background(), stored)
	}

	token, err := p.source.Token()
	if err != nil {
		return "", fmt.Errorf("refresh token: %w", err)
	}

	if token.AccessToken != stored.AccessToken {
		if err := p.persist(token); err != nil {
			return "", fmt.Errorf("persist refreshed token: %w", err)
		}
	}

	return token.AccessToken, nil
}

// IsAuthenticated returns true if OAuth credentials are stored.
func (p *OAuthProvider) IsAuthenticated() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	stored := p.storedToken()
	return stored.AccessToken != "" || stored.RefreshToken != ""
}

// storedToken reads the persisted token. Caller must hold the lock.
func (p *OAuthProvider) storedToken() *oauth2.Token {
	token := &oauth2.Token{
		AccessToken:  p.config.GetString(keyOAuthAccessToken),
		RefreshToken: p.config.GetString(keyOAuthRefreshToken),
	}
	if raw := p.config.GetString(keyOAuthExpiry); raw != "" {
		if expiry, err := time.Parse(time.RFC3339, raw); err == nil {
			token.Expiry = expiry
		}
	}
	return token
}

// persist writes a refreshed token back to the config store. Caller must
// hold the lock.
func (p *OAuthProvider) persist(token *oauth2.Token) error {
	if err := p.config.Set(keyOAuthAccessToken, token.AccessToken); err != nil {
		return err
	}
	if token.RefreshToken != "" {
		if err := p.config.Set(keyOAuthRefreshToken, token.RefreshToken); err != nil {
			return err
		}
	}
	if !token.Expiry.IsZero() {
		if err := p.config.Set(keyOAuthExpiry, token.Expiry.UTC().Format(time.RFC3339)); err != nil {
			return err
		}
	}
	return nil
}
