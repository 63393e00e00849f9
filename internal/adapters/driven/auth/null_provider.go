// Package auth provides TokenProvider implementations for the marketplace API.
package auth

import (
	"context"

	"github.com/brixlabs/brix-cli/internal/core/domain"
	"github.com/brixlabs/brix-cli/internal/core/ports/driven"
)

// Ensure NullTokenProvider implements the TokenProvider interface.
var _ driven.TokenProvider = (*NullTokenProvider)(nil)

// NullTokenProvider is the provider used before any credentials are
// configured. Every token request fails with domain.ErrAuthRequired so
// callers can prompt for `brix auth login`.
type NullTokenProvider struct{}

// NewNullTokenProvider creates a token provider for the unauthenticated state.
func NewNullTokenProvider() *NullTokenProvider {
	return &NullTokenProvider{}
}

// GetToken always fails since no credentials are configured.
func (p *NullTokenProvider) GetToken(_ context.Context) (string, error) {
	return "", domain.ErrAuthRequired
}

// IsAuthenticated always returns false.
func (p *NullTokenProvider) IsAuthenticated() bool {
	return false
}
