package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/brixlabs/brix-cli/internal/core/domain"
)

// IntakeStatusInput is the input schema for the intake_status tool.
type IntakeStatusInput struct{}

// IntakeStatusOutput is the output schema for the intake_status tool.
type IntakeStatusOutput struct {
	Flow            string   `json:"flow"`
	Step            string   `json:"step"`
	StepIndex       int      `json:"step_index"`
	CanAdvance      bool     `json:"can_advance"`
	ProjectType     string   `json:"project_type,omitempty"`
	Description     string   `json:"description,omitempty"`
	StagedDocuments []string `json:"staged_documents,omitempty"`
}

// AnswerQuestionInput is the input schema for the answer_question tool.
type AnswerQuestionInput struct {
	ProjectID string `json:"project_id" jsonschema:"the project whose questionnaire is being answered"`
	Answer    string `json:"answer" jsonschema:"the answer to the current question"`
}

// AnswerQuestionOutput is the output schema for the answer_question tool.
type AnswerQuestionOutput struct {
	Accepted             bool    `json:"accepted"`
	CompletionPercentage float64 `json:"completion_percentage"`
	IsComplete           bool    `json:"is_complete"`
	NextQuestion         string  `json:"next_question,omitempty"`
}

// GenerationStatusInput is the input schema for the generation_status tool.
type GenerationStatusInput struct {
	ProjectID string `json:"project_id" jsonschema:"the project the job belongs to"`
	SowID     string `json:"sow_id" jsonschema:"the generation job identifier"`
}

// GenerationStatusOutput is the output schema for the generation_status tool.
type GenerationStatusOutput struct {
	Status        string  `json:"status"`
	Progress      float64 `json:"progress"`
	Stage         string  `json:"stage,omitempty"`
	TimeRemaining string  `json:"time_remaining,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "intake_status",
		Description: "Show the current intake draft and wizard position",
	}, s.handleIntakeStatus)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "answer_question",
		Description: "Answer the current questionnaire question for a project",
	}, s.handleAnswerQuestion)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "generation_status",
		Description: "Check the progress of a Scope of Work generation job",
	}, s.handleGenerationStatus)
}

// handleIntakeStatus handles the intake_status tool invocation.
func (s *Server) handleIntakeStatus(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ IntakeStatusInput,
) (*mcp.CallToolResult, IntakeStatusOutput, error) {
	index, step := s.ports.Wizard.Current()
	draft := s.ports.Wizard.Draft()

	output := IntakeStatusOutput{
		Flow:        string(draft.Flow),
		Step:        string(step),
		StepIndex:   index,
		CanAdvance:  s.ports.Wizard.CanAdvance(),
		ProjectType: draft.ProjectType,
		Description: draft.Requirements.Description,
	}
	for _, doc := range draft.Documents {
		output.StagedDocuments = append(output.StagedDocuments, doc.FileName)
	}

	return nil, output, nil
}

// handleAnswerQuestion handles the answer_question tool invocation.
func (s *Server) handleAnswerQuestion(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnswerQuestionInput,
) (*mcp.CallToolResult, AnswerQuestionOutput, error) {
	if s.ports.Questionnaire == nil {
		return nil, AnswerQuestionOutput{}, errors.New("questionnaire not available")
	}

	engine := s.ports.Questionnaire
	if err := engine.Initialize(ctx, input.ProjectID); err != nil {
		return nil, AnswerQuestionOutput{}, fmt.Errorf("initialize questionnaire: %w", err)
	}

	active, err := engine.CurrentQuestion()
	if err != nil {
		return nil, AnswerQuestionOutput{}, err
	}

	if err := engine.SubmitAnswer(ctx, active.Question.ID, input.Answer); err != nil {
		return nil, AnswerQuestionOutput{}, err
	}

	session, err := engine.Session()
	if err != nil {
		return nil, AnswerQuestionOutput{}, err
	}

	output := AnswerQuestionOutput{
		Accepted:             true,
		CompletionPercentage: session.CompletionPercentage,
		IsComplete:           session.IsComplete,
	}
	if !session.IsComplete {
		if next, err := engine.CurrentQuestion(); err == nil {
			output.NextQuestion = next.Question.Text
		}
	}

	return nil, output, nil
}

// handleGenerationStatus handles the generation_status tool invocation.
func (s *Server) handleGenerationStatus(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GenerationStatusInput,
) (*mcp.CallToolResult, GenerationStatusOutput, error) {
	if s.ports.Generation == nil {
		return nil, GenerationStatusOutput{}, errors.New("generation not available")
	}

	job, err := s.ports.Generation.GetJobStatus(ctx, input.ProjectID, input.SowID)
	if err != nil {
		return nil, GenerationStatusOutput{}, fmt.Errorf("job status: %w", err)
	}

	output := GenerationStatusOutput{
		Status:   string(job.Status),
		Progress: job.Progress,
	}
	if job.Status == domain.GenerationStatusGenerating {
		output.Stage = domain.StageFor(job.Progress)
		output.TimeRemaining = domain.TimeRemainingText(job.EstimatedCompletion, time.Now())
	}

	return nil, output, nil
}
