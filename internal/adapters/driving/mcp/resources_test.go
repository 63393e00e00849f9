package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brixlabs/brix-cli/internal/core/domain"
)

// stubDocumentManager serves a fixed document list.
type stubDocumentManager struct {
	docs      []domain.ProjectDocument
	projectID string
}

func (d *stubDocumentManager) Upload(_ context.Context, _ string, _ domain.LocalDocument) (*domain.ProjectDocument, error) {
	return nil, nil
}

func (d *stubDocumentManager) List(_ context.Context, projectID string) ([]domain.ProjectDocument, error) {
	d.projectID = projectID
	return d.docs, nil
}

func (d *stubDocumentManager) Delete(_ context.Context, _ string) error { return nil }

func (d *stubDocumentManager) SetVisibility(_ context.Context, _ string, _ domain.DocumentVisibility) error {
	return nil
}

func (d *stubDocumentManager) Download(_ context.Context, _ string) ([]byte, error) {
	return nil, nil
}

func readRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: uri},
	}
}

func TestHandleDraftResource(t *testing.T) {
	wizard := newTestWizard(t)
	ctx := context.Background()
	require.NoError(t, wizard.SetAddress(ctx, domain.PropertyAddress{
		Line1:    "123 Test Street",
		City:     "London",
		Postcode: "SW1A 1AA",
	}))

	server, err := NewServer(&Ports{Wizard: wizard})
	require.NoError(t, err)

	result, err := server.handleDraftResource(ctx, readRequest("brix://draft"))
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "application/json", result.Contents[0].MIMEType)

	var info struct {
		Flow string `json:"flow"`
		City string `json:"city"`
	}
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &info))
	assert.Equal(t, "standard", info.Flow)
	assert.Equal(t, "London", info.City)
}

func TestHandleDocumentsResource(t *testing.T) {
	docs := &stubDocumentManager{docs: []domain.ProjectDocument{
		{
			ID:           "doc-1",
			ProjectID:    "proj-1",
			FileName:     "floorplan.pdf",
			DocumentType: domain.DocumentTypeFloorPlan,
			Visibility:   domain.VisibilityShared,
		},
	}}

	server, err := NewServer(&Ports{Wizard: newTestWizard(t), Documents: docs})
	require.NoError(t, err)

	result, err := server.handleDocumentsResource(context.Background(),
		readRequest("brix://projects/proj-1/documents"))
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "proj-1", docs.projectID)

	var infos []struct {
		ID         string `json:"id"`
		Visibility string `json:"visibility"`
	}
	require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &infos))
	require.Len(t, infos, 1)
	assert.Equal(t, "doc-1", infos[0].ID)
	assert.Equal(t, "shared", infos[0].Visibility)
}

func TestHandleDocumentsResource_NoManager(t *testing.T) {
	server, err := NewServer(&Ports{Wizard: newTestWizard(t)})
	require.NoError(t, err)

	result, err := server.handleDocumentsResource(context.Background(),
		readRequest("brix://projects/proj-1/documents"))
	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "[]", result.Contents[0].Text)
}

func TestProjectIDFromURI(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		want    string
		wantErr bool
	}{
		{"valid", "brix://projects/proj-1/documents", "proj-1", false},
		{"missing id", "brix://projects//documents", "", true},
		{"wrong collection", "brix://drafts/proj-1/documents", "", true},
		{"wrong leaf", "brix://projects/proj-1/files", "", true},
		{"too few parts", "brix://projects", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := projectIDFromURI(tt.uri)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
