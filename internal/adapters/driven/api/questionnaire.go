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
var _ driven.QuestionnaireAPI = (*Client)(nil)

// responsePayload is the wire format of one questionnaire response.
type responsePayload struct {
	QuestionID string    `json:"questionId"`
	Answer     any       `json:"answer"`
	Timestamp  time.Time `json:"timestamp"`
}

// sessionResponse is the wire format of a questionnaire session.
type sessionResponse struct {
	ID                   string            `json:"id"`
	ProjectID            string            `json:"projectId"`
	CurrentQuestionIndex int               `json:"currentQuestionIndex"`
	Responses            []responsePayload `json:"responses"`
	IsComplete           bool              `json:"isComplete"`
	CompletionPercentage float64           `json:"completionPercentage"`
}

// questionPayload is the wire format of a question.
type questionPayload struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	Type     string   `json:"type"`
	Options  []string `json:"options,omitempty"`
	Required bool     `json:"required"`
}

// nextQuestionResponse is the wire format of a next-question exchange.
type nextQuestionResponse struct {
	Question      questionPayload `json:"question"`
	Reasoning     string          `json:"reasoning,omitempty"`
	IsAIGenerated bool            `json:"isAIGenerated"`
}

// GetSession fetches the existing session for a project.
func (c *Client) GetSession(ctx context.Context, projectID string) (*domain.QuestionnaireSession, error) {
	var resp sessionResponse
	path := fmt.Sprintf("/projects/%s/questionnaire", projectID)
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.toDomain(), nil
}

// CreateSession starts a new session for a project.
func (c *Client) CreateSession(ctx context.Context, projectID string) (*domain.QuestionnaireSession, error) {
	var resp sessionResponse
	path := fmt.Sprintf("/projects/%s/questionnaire", projectID)
	if err := c.do(ctx, http.MethodPost, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return resp.toDomain(), nil
}

// RequestNextQuestion asks the server for the next adaptive question.
func (c *Client) RequestNextQuestion(ctx context.Context, projectID, sessionID string) (*driven.NextQuestion, error) {
	var resp nextQuestionResponse
	path := fmt.Sprintf("/projects/%s/questionnaire/%s/next-question", projectID, sessionID)
	if err := c.do(ctx, http.MethodPost, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("next question: %w", err)
	}
	return &driven.NextQuestion{
		Question: domain.Question{
			ID:          resp.Question.ID,
			Text:        resp.Question.Text,
			Type:        domain.QuestionType(resp.Question.Type),
			Options:     resp.Question.Options,
			Required:    resp.Question.Required,
			Reasoning:   resp.Reasoning,
			AIGenerated: resp.IsAIGenerated,
		},
		Reasoning:   resp.Reasoning,
		AIGenerated: resp.IsAIGenerated,
	}, nil
}

// SubmitResponse posts an answer and returns the authoritative session.
func (c *Client) SubmitResponse(ctx context.Context, projectID, sessionID string, r domain.QuestionnaireResponse) (*domain.QuestionnaireSession, error) {
	var resp sessionResponse
	path := fmt.Sprintf("/projects/%s/questionnaire/%s/responses", projectID, sessionID)
	if err := c.do(ctx, http.MethodPost, path, toResponsePayload(r), &resp); err != nil {
		return nil, fmt.Errorf("submit response: %w", err)
	}
	return resp.toDomain(), nil
}

// CompleteSession asks the server to end the session early.
func (c *Client) CompleteSession(ctx context.Context, projectID, sessionID string) (*domain.QuestionnaireSession, error) {
	var resp sessionResponse
	path := fmt.Sprintf("/projects/%s/questionnaire/%s/complete", projectID, sessionID)
	if err := c.do(ctx, http.MethodPost, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("complete session: %w", err)
	}
	return resp.toDomain(), nil
}

// UpdateResponse edits a past answer out-of-band.
func (c *Client) UpdateResponse(ctx context.Context, projectID, sessionID string, r domain.QuestionnaireResponse) (*domain.QuestionnaireSession, error) {
	var resp sessionResponse
	path := fmt.Sprintf("/projects/%s/questionnaire/%s/responses/%s", projectID, sessionID, r.QuestionID)
	if err := c.do(ctx, http.MethodPut, path, toResponsePayload(r), &resp); err != nil {
		return nil, fmt.Errorf("update response: %w", err)
	}
	return resp.toDomain(), nil
}

func toResponsePayload(r domain.QuestionnaireResponse) responsePayload {
	return responsePayload{
		QuestionID: r.QuestionID,
		Answer:     r.Answer,
		Timestamp:  r.Timestamp,
	}
}

func (s *sessionResponse) toDomain() *domain.QuestionnaireSession {
	session := &domain.QuestionnaireSession{
		ID:                   s.ID,
		ProjectID:            s.ProjectID,
		CurrentQuestionIndex: s.CurrentQuestionIndex,
		IsComplete:           s.IsComplete,
		CompletionPercentage: s.CompletionPercentage,
	}
	for _, r := range s.Responses {
		session.Responses = append(session.Responses, domain.QuestionnaireResponse{
			QuestionID: r.QuestionID,
			Answer:     r.Answer,
			Timestamp:  r.Timestamp,
		})
	}
	return session
}
