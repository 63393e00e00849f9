package driven

import (
	"context"

	"github.com/brixlabs/brix-cli/internal/core/domain"
)

// DraftStore persists the single in-progress project draft.
// The draft is single-writer (the active session); concurrent writers are
// last-write-wins at the storage layer.
type DraftStore interface {
	// Load returns the persisted draft.
	// Returns domain.ErrNotFound when no draft exists.
	Load(ctx context.Context) (*domain.ProjectDraft, error)

	// Save overwrites the persisted draft. Called on every field edit.
	Save(ctx context.Context, draft *domain.ProjectDraft) error

	// Clear removes the persisted draft. Called after successful submission.
	// Clearing an absent draft is a no-op.
	Clear(ctx context.Context) error
}
