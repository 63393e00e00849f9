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
var _ driven.GenerationAPI = (*Client)(nil)

// generationStartResponse is the wire format of a generation kickoff.
type generationStartResponse struct {
	SowID  string `json:"sowId"`
	Status string `json:"status"`
}

// jobStatusResponse is the wire format of a job status poll.
type jobStatusResponse struct {
	Status              string    `json:"status"`
	Progress            float64   `json:"progress"`
	EstimatedCompletion time.Time `json:"estimatedCompletion"`
}

// sowSectionPayload is the wire format of one artifact section.
type sowSectionPayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// sowResponse is the wire format of the finished artifact.
type sowResponse struct {
	ID          string              `json:"id"`
	ProjectID   string              `json:"projectId"`
	Title       string              `json:"title"`
	Summary     string              `json:"summary"`
	Sections    []sowSectionPayload `json:"sections"`
	GeneratedAt time.Time           `json:"generatedAt"`
}

// StartGeneration kicks off a generation job for a project.
func (c *Client) StartGeneration(ctx context.Context, projectID string) (*driven.GenerationStart, error) {
	var resp generationStartResponse
	path := fmt.Sprintf("/projects/%s/sow/generate", projectID)
	if err := c.do(ctx, http.MethodPost, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("start generation: %w", err)
	}
	return &driven.GenerationStart{
		SowID:  resp.SowID,
		Status: domain.GenerationStatus(resp.Status),
	}, nil
}

// GetJobStatus fetches the current job state.
func (c *Client) GetJobStatus(ctx context.Context, projectID, sowID string) (*domain.GenerationJob, error) {
	var resp jobStatusResponse
	path := fmt.Sprintf("/projects/%s/sow/%s/status", projectID, sowID)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &domain.GenerationJob{
		SowID:               sowID,
		ProjectID:           projectID,
		Status:              domain.GenerationStatus(resp.Status),
		Progress:            resp.Progress,
		EstimatedCompletion: resp.EstimatedCompletion,
	}, nil
}

// GetArtifact fetches the finished Scope of Work.
func (c *Client) GetArtifact(ctx context.Context, projectID, sowID string) (*domain.ScopeOfWork, error) {
	var resp sowResponse
	path := fmt.Sprintf("/projects/%s/sow/%s", projectID, sowID)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	artifact := &domain.ScopeOfWork{
		ID:          resp.ID,
		ProjectID:   resp.ProjectID,
		Title:       resp.Title,
		Summary:     resp.Summary,
		GeneratedAt: resp.GeneratedAt,
	}
	for _, s := range resp.Sections {
		artifact.Sections = append(artifact.Sections, domain.SowSection{
			Title:   s.Title,
			Content: s.Content,
		})
	}
	return artifact, nil
}
