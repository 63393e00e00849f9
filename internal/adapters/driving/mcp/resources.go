package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for Brix resources.
const uriScheme = "brix://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the intake draft.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "draft",
		Name:        "draft",
		Description: "The in-progress intake draft",
		MIMEType:    "application/json",
	}, s.handleDraftResource)

	// Template for a project's confirmed documents.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "projects/{projectId}/documents",
		Name:        "project-documents",
		Description: "Confirmed documents of a specific project",
		MIMEType:    "application/json",
	}, s.handleDocumentsResource)
}

// handleDraftResource returns the working intake draft.
func (s *Server) handleDraftResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	draft := s.ports.Wizard.Draft()

	// Simplified view; staged file paths stay local.
	type documentInfo struct {
		LocalID string `json:"local_id"`
		Name    string `json:"name"`
		Type    string `json:"type"`
	}
	type draftInfo struct {
		Flow        string         `json:"flow"`
		ProjectType string         `json:"project_type,omitempty"`
		Description string         `json:"description,omitempty"`
		City        string         `json:"city,omitempty"`
		Documents   []documentInfo `json:"documents,omitempty"`
	}

	info := draftInfo{
		Flow:        string(draft.Flow),
		ProjectType: draft.ProjectType,
		Description: draft.Requirements.Description,
		City:        draft.PropertyAddress.City,
	}
	for _, doc := range draft.Documents {
		info.Documents = append(info.Documents, documentInfo{
			LocalID: doc.LocalID,
			Name:    doc.FileName,
			Type:    string(doc.DocumentType),
		})
	}

	data, err := json.Marshal(info)
	if err != nil {
		return nil, fmt.Errorf("marshalling draft: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleDocumentsResource returns the confirmed documents for a project.
func (s *Server) handleDocumentsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Documents == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	projectID, err := projectIDFromURI(req.Params.URI)
	if err != nil {
		return nil, err
	}

	docs, err := s.ports.Documents.List(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}

	type docInfo struct {
		ID         string `json:"id"`
		Name       string `json:"name"`
		Type       string `json:"type"`
		Visibility string `json:"visibility"`
	}

	infos := make([]docInfo, len(docs))
	for i, doc := range docs {
		infos[i] = docInfo{
			ID:         doc.ID,
			Name:       doc.FileName,
			Type:       string(doc.DocumentType),
			Visibility: string(doc.Visibility),
		}
	}

	data, err := json.Marshal(infos)
	if err != nil {
		return nil, fmt.Errorf("marshalling documents: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// projectIDFromURI extracts the project id from brix://projects/{id}/documents.
func projectIDFromURI(uri string) (string, error) {
	trimmed := strings.TrimPrefix(uri, uriScheme)
	parts := strings.Split(trimmed, "/")
	if len(parts) != 3 || parts[0] != "projects" || parts[2] != "documents" || parts[1] == "" {
		return "", fmt.Errorf("invalid resource URI: %s", uri)
	}
	return parts[1], nil
}
