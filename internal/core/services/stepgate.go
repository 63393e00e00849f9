package services

import "github.com/brixlabs/brix-cli/internal/core/domain"

// IsStepValid is the pure validation predicate for one wizard step.
// Deterministic given the draft contents: no side effects, no I/O.
//
// Each step's predicate is independent of the others; navigation order is
// enforced by the wizard controller, not here. Documents and review are
// always valid - documents are optional and review is gated only by the
// submit action's own result. Out-of-range indexes are invalid.
func IsStepValid(flow domain.IntakeFlow, stepIndex int, draft *domain.ProjectDraft) bool {
	if draft == nil {
		return false
	}

	switch flow.StepAt(stepIndex) {
	case domain.StepAddress:
		return draft.HasAddress()
	case domain.StepAssessment:
		return draft.Assessment != nil
	case domain.StepProjectType:
		return draft.ProjectType != ""
	case domain.StepRequirements:
		return draft.Requirements.Description != ""
	case domain.StepDocuments, domain.StepReview:
		return true
	default:
		return false
	}
}
