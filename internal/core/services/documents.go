package services

import (
	"context"
	"fmt"

	"github.com/brixlabs/brix-cli/internal/core/domain"
	"github.com/brixlabs/brix-cli/internal/core/ports/driven"
	"github.com/brixlabs/brix-cli/internal/core/ports/driving"
	"github.com/brixlabs/brix-cli/internal/logger"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentManager = (*DocumentService)(nil)

// DocumentService moves documents through the two-phase upload protocol
// and manages confirmed project documents.
type DocumentService struct {
	api  driven.DocumentAPI
	blob driven.BlobTransfer
}

// NewDocumentService creates a document manager.
func NewDocumentService(api driven.DocumentAPI, blob driven.BlobTransfer) *DocumentService {
	return &DocumentService{api: api, blob: blob}
}

// Upload runs the three sequential phases: request a slot, transfer the
// binary, confirm. A transfer failure never reaches confirmation; the
// pending slot is left for the server to expire.
func (s *DocumentService) Upload(ctx context.Context, projectID string, doc domain.LocalDocument) (*domain.ProjectDocument, error) {
	slot, err := s.api.RequestUploadSlot(ctx, driven.UploadRequest{
		ProjectID:    projectID,
		FileName:     doc.FileName,
		FileSize:     doc.Size,
		MimeType:     doc.MimeType,
		DocumentType: doc.DocumentType,
	})
	if err != nil {
		return nil, fmt.Errorf("request upload slot: %w", err)
	}

	if err := s.blob.Put(ctx, slot.UploadURL, doc.FilePath, doc.MimeType); err != nil {
		return nil, fmt.Errorf("transfer %s: %w", doc.FileName, err)
	}

	confirmed, err := s.api.ConfirmUpload(ctx, slot.DocumentID)
	if err != nil {
		return nil, fmt.Errorf("confirm upload: %w", err)
	}

	logger.Debug("Uploaded %s as document %s", doc.FileName, confirmed.ID)
	return confirmed, nil
}

// List returns the confirmed documents for a project.
func (s *DocumentService) List(ctx context.Context, projectID string) ([]domain.ProjectDocument, error) {
	docs, err := s.api.ListDocuments(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

// Delete removes a document. Idempotent: deleting an absent document is
// not an error.
func (s *DocumentService) Delete(ctx context.Context, documentID string) error {
	err := s.api.DeleteDocument(ctx, documentID)
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}

// SetVisibility toggles builder access to a document.
func (s *DocumentService) SetVisibility(ctx context.Context, documentID string, visibility domain.DocumentVisibility) error {
	if err := s.api.SetVisibility(ctx, documentID, visibility); err != nil {
		return fmt.Errorf("set visibility: %w", err)
	}
	return nil
}

// Download resolves the read URL then fetches the content.
func (s *DocumentService) Download(ctx context.Context, documentID string) ([]byte, error) {
	url, err := s.api.DownloadURL(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("resolve download: %w", err)
	}
	content, err := s.blob.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("download document: %w", err)
	}
	return content, nil
}
