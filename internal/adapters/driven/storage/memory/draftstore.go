// Package memory provides in-memory implementations of the driven storage
// ports. Used in tests and as a fallback when no data directory exists.
package memory

import (
	"context"
	"sync"

	"github.com/brixlabs/brix-cli/internal/core/domain"
	"github.com/brixlabs/brix-cli/internal/core/ports/driven"
)

// Ensure DraftStore implements the interface.
var _ driven.DraftStore = (*DraftStore)(nil)

// DraftStore is an in-memory implementation of driven.DraftStore.
type DraftStore struct {
	mu    sync.RWMutex
	draft *domain.ProjectDraft
}

// NewDraftStore creates a new in-memory draft store.
func NewDraftStore() *DraftStore {
	return &DraftStore{}
}

// Load returns the stored draft.
func (s *DraftStore) Load(_ context.Context) (*domain.ProjectDraft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.draft == nil {
		return nil, domain.ErrNotFound
	}
	draft := *s.draft
	return &draft, nil
}

// Save overwrites the stored draft.
func (s *DraftStore) Save(_ context.Context, draft *domain.ProjectDraft) error {
	if draft == nil {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *draft
	s.draft = &copied
	return nil
}

// Clear removes the stored draft. Clearing an absent draft is a no-op.
func (s *DraftStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = nil
	return nil
}

// HasDraft reports whether a draft is stored. Test helper.
func (s *DraftStore) HasDraft() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.draft != nil
}
