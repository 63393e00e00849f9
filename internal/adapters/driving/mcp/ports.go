package mcp

import (
	"github.com/brixlabs/brix-cli/internal/core/ports/driven"
	"github.com/brixlabs/brix-cli/internal/core/ports/driving"
)

// Ports aggregates the port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Wizard owns the intake draft and wizard position.
	Wizard driving.WizardController

	// Questionnaire manages the adaptive Q&A session.
	Questionnaire driving.QuestionnaireEngine

	// Generation reports job status and fetches artifacts.
	Generation driven.GenerationAPI

	// Documents lists a project's confirmed documents.
	Documents driving.DocumentManager
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Wizard == nil {
		return ErrMissingWizard
	}
	// Questionnaire, Generation and Documents degrade gracefully.
	return nil
}
