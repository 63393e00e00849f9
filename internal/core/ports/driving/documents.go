package driving

import (
	"context"

	"github.com/brixlabs/brix-cli/internal/core/domain"
)

// DocumentManager moves documents through the two-phase upload protocol
// and manages confirmed project documents.
type DocumentManager interface {
	// Upload performs slot request, binary transfer and confirmation as
	// sequential phases. A transfer failure never reaches confirmation.
	Upload(ctx context.Context, projectID string, doc domain.LocalDocument) (*domain.ProjectDocument, error)

	// List returns the confirmed documents for a project.
	List(ctx context.Context, projectID string) ([]domain.ProjectDocument, error)

	// Delete removes a document. Idempotent.
	Delete(ctx context.Context, documentID string) error

	// SetVisibility toggles builder access. Idempotent.
	SetVisibility(ctx context.Context, documentID string, visibility domain.DocumentVisibility) error

	// Download fetches a document's content.
	Download(ctx context.Context, documentID string) ([]byte, error)
}
