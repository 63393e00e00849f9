package auth

import (
	"context"

	"github.com/brixlabs/brix-cli/internal/core/domain"
	"github.com/brixlabs/brix-cli/internal/core/ports/driven"
)

// Config keys read by the PAT provider.
const (
	keyPATToken = "auth.token"
)

// Ensure PATProvider implements the TokenProvider interface.
var _ driven.TokenProvider = (*PATProvider)(nil)

// PATProvider provides a static Personal Access Token from the config
// store. PATs don't expire and don't require refresh.
type PATProvider struct {
	config driven.ConfigStore
}

// NewPATProvider creates a token provider for PAT-based authentication.
func NewPATProvider(config driven.ConfigStore) *PATProvider {
	return &PATProvider{config: config}
}

// GetToken returns the stored PAT.
func (p *PATProvider) GetToken(_ context.Context) (string, error) {
	token := p.config.GetString(keyPATToken)
	if token == "" {
		return "", domain.ErrAuthRequired
	}
	return token, nil
}

// IsAuthenticated returns true if a PAT is stored.
func (p *PATProvider) IsAuthenticated() bool {
	return p.config.GetString(keyPATToken) != ""
}
