package auth

import (
	"github.com/brixlabs/brix-cli/internal/core/ports/driven"
)

// Auth methods selectable via the auth.method config key.
const (
	MethodPAT   = "pat"
	MethodOAuth = "oauth"
)

// NewTokenProvider creates the TokenProvider selected by configuration.
// Falls back to the null provider when nothing is configured, so commands
// that hit the API fail with domain.ErrAuthRequired instead of a raw 401.
func NewTokenProvider(config driven.ConfigStore) driven.TokenProvider {
	switch config.GetString("auth.method") {
	case MethodPAT:
		return NewPATProvider(config)
	case MethodOAuth:
		return NewOAuthProvider(config)
	default:
		// A bare token with no method set is treated as a PAT.
		if config.GetString(keyPATToken) != "" {
			return NewPATProvider(config)
		}
		return NewNullTokenProvider()
	}
}
