package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/brixlabs/brix-cli/internal/core/domain"
)

func validDraft() *domain.ProjectDraft {
	return &domain.ProjectDraft{
		Flow: domain.FlowStandard,
		PropertyAddress: domain.PropertyAddress{
			Line1:    "123 Test Street",
			City:     "London",
			Postcode: "SW1A 1AA",
		},
		ProjectType: "loft_conversion",
		Requirements: domain.ProjectRequirements{
			Description: "Test",
		},
	}
}

func TestIsStepValid_StandardFlow(t *testing.T) {
	draft := validDraft()

	// Steps 0-2 valid, documents valid with zero files, review valid.
	for step := 0; step < domain.FlowStandard.StepCount(); step++ {
		assert.True(t, IsStepValid(domain.FlowStandard, step, draft), "step %d", step)
	}
}

func TestIsStepValid_MissingFields(t *testing.T) {
	draft := validDraft()
	draft.PropertyAddress.Postcode = ""
	assert.False(t, IsStepValid(domain.FlowStandard, 0, draft))

	draft = validDraft()
	draft.ProjectType = ""
	assert.False(t, IsStepValid(domain.FlowStandard, 1, draft))

	draft = validDraft()
	draft.Requirements.Description = ""
	assert.False(t, IsStepValid(domain.FlowStandard, 2, draft))
}

func TestIsStepValid_StepsAreIndependent(t *testing.T) {
	// A later step can be valid even when an earlier one is not;
	// navigation order is the wizard's concern, not the gate's.
	draft := &domain.ProjectDraft{
		Flow:        domain.FlowStandard,
		ProjectType: "extension",
	}
	assert.False(t, IsStepValid(domain.FlowStandard, 0, draft))
	assert.True(t, IsStepValid(domain.FlowStandard, 1, draft))
}

func TestIsStepValid_AssessedFlow(t *testing.T) {
	draft := validDraft()
	draft.Flow = domain.FlowAssessed

	assert.True(t, IsStepValid(domain.FlowAssessed, 0, draft))
	assert.False(t, IsStepValid(domain.FlowAssessed, 1, draft), "assessment missing")

	draft.Assessment = &domain.PropertyAssessment{Condition: "good"}
	assert.True(t, IsStepValid(domain.FlowAssessed, 1, draft))
	assert.True(t, IsStepValid(domain.FlowAssessed, 2, draft))
}

func TestIsStepValid_Deterministic(t *testing.T) {
	draft := validDraft()
	first := IsStepValid(domain.FlowStandard, 2, draft)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, IsStepValid(domain.FlowStandard, 2, draft))
	}
}

func TestIsStepValid_OutOfRange(t *testing.T) {
	draft := validDraft()
	assert.False(t, IsStepValid(domain.FlowStandard, -1, draft))
	assert.False(t, IsStepValid(domain.FlowStandard, 99, draft))
	assert.False(t, IsStepValid(domain.FlowStandard, 0, nil))
}
