package driven

import "context"

// TokenProvider supplies bearer tokens for authenticated API calls.
// Implementations handle refresh transparently; the core treats the
// provider as an opaque collaborator. A 401 from the server is escalated,
// not handled here.
type TokenProvider interface {
	// GetToken returns a valid access token.
	// Returns domain.ErrAuthRequired when no credentials are configured.
	GetToken(ctx context.Context) (string, error)

	// IsAuthenticated returns true if valid authentication is available.
	IsAuthenticated() bool
}
