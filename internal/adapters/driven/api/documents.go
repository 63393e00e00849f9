package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/brixlabs/brix-cli/internal/core/domain"
	"github.com/brixlabs/brix-cli/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.DocumentAPI = (*Client)(nil)

// uploadSlotRequest is the POST /documents/upload-url payload.
type uploadSlotRequest struct {
	ProjectID    string `json:"projectId"`
	FileName     string `json:"fileName"`
	FileSize     int64  `json:"fileSize"`
	MimeType     string `json:"mimeType"`
	DocumentType string `json:"documentType"`
}

// uploadSlotResponse is the slot grant.
type uploadSlotResponse struct {
	UploadURL  string `json:"uploadUrl"`
	DocumentID string `json:"documentId"`
}

// documentResponse is the wire format of a confirmed document.
type documentResponse struct {
	ID           string    `json:"id"`
	ProjectID    string    `json:"projectId"`
	FileName     string    `json:"fileName"`
	DocumentType string    `json:"documentType"`
	MimeType     string    `json:"mimeType"`
	Size         int64     `json:"size"`
	Visibility   string    `json:"visibility"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

// RequestUploadSlot obtains a write-once URL and pending document id.
func (c *Client) RequestUploadSlot(ctx context.Context, req driven.UploadRequest) (*driven.UploadSlot, error) {
	payload := uploadSlotRequest{
		ProjectID:    req.ProjectID,
		FileName:     req.FileName,
		FileSize:     req.FileSize,
		MimeType:     req.MimeType,
		DocumentType: string(req.DocumentType),
	}

	var resp uploadSlotResponse
	if err := c.do(ctx, http.MethodPost, "/documents/upload-url", payload, &resp); err != nil {
		return nil, fmt.Errorf("request upload slot: %w", err)
	}
	return &driven.UploadSlot{UploadURL: resp.UploadURL, DocumentID: resp.DocumentID}, nil
}

// ConfirmUpload finalises an upload after a successful transfer.
func (c *Client) ConfirmUpload(ctx context.Context, documentID string) (*domain.ProjectDocument, error) {
	var resp documentResponse
	path := fmt.Sprintf("/documents/%s/confirm", documentID)
	if err := c.do(ctx, http.MethodPost, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("confirm upload: %w", err)
	}
	return resp.toDomain(), nil
}

// ListDocuments returns the confirmed documents for a project.
func (c *Client) ListDocuments(ctx context.Context, projectID string) ([]domain.ProjectDocument, error) {
	var resp struct {
		Documents []documentResponse `json:"documents"`
	}
	path := fmt.Sprintf("/projects/%s/documents", projectID)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	docs := make([]domain.ProjectDocument, 0, len(resp.Documents))
	for _, d := range resp.Documents {
		docs = append(docs, *d.toDomain())
	}
	return docs, nil
}

// DeleteDocument removes a document.
func (c *Client) DeleteDocument(ctx context.Context, documentID string) error {
	path := fmt.Sprintf("/documents/%s", documentID)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// SetVisibility toggles builder access to a document.
func (c *Client) SetVisibility(ctx context.Context, documentID string, visibility domain.DocumentVisibility) error {
	payload := struct {
		Visibility string `json:"visibility"`
	}{Visibility: string(visibility)}

	path := fmt.Sprintf("/documents/%s/visibility", documentID)
	return c.do(ctx, http.MethodPut, path, payload, nil)
}

// DownloadURL resolves a read URL for a document.
func (c *Client) DownloadURL(ctx context.Context, documentID string) (string, error) {
	var resp struct {
		DownloadURL string `json:"downloadUrl"`
	}
	path := fmt.Sprintf("/documents/%s/download", documentID)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return "", fmt.Errorf("resolve download: %w", err)
	}
	return resp.DownloadURL, nil
}

func (d *documentResponse) toDomain() *domain.ProjectDocument {
	return &domain.ProjectDocument{
		ID:           d.ID,
		ProjectID:    d.ProjectID,
		FileName:     d.FileName,
		DocumentType: domain.DocumentType(d.DocumentType),
		MimeType:     d.MimeType,
		Size:         d.Size,
		Visibility:   domain.DocumentVisibility(d.Visibility),
		UploadedAt:   d.UploadedAt,
	}
}
