// Package blob moves document bytes to and from signed storage URLs.
// These transfers are unauthenticated at the API level; the signed URL
// itself carries the grant.
package blob

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/brixlabs/brix-cli/internal/core/ports/driven"
)

// DefaultTimeout bounds a single transfer. Large surveys and photo sets
// need more headroom than ordinary API calls.
const DefaultTimeout = 2 * time.Minute

// Ensure Transfer implements the interface.
var _ driven.BlobTransfer = (*Transfer)(nil)

// Transfer is an HTTP implementation of the blob transfer port.
type Transfer struct {
	client *http.Client
}

// NewTransfer creates a blob transfer with the default timeout.
func NewTransfer() *Transfer {
	return &Transfer{client: &http.Client{Timeout: DefaultTimeout}}
}

// Put streams a local file to a write-once upload URL.
func (t *Transfer) Put(ctx context.Context, uploadURL, filePath, mimeType string) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("stat file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, file)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.ContentLength = info.Size()
	if mimeType != "" {
		req.Header.Set("Content-Type", mimeType)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("upload file: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body) //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("upload file: storage returned status %d", resp.StatusCode)
	}
	return nil
}

// Get fetches the content behind a download URL.
func (t *Transfer) Get(ctx context.Context, downloadURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, downloadURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("download file: storage returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	return body, nil
}
