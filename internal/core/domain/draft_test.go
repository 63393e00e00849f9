package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntakeFlow_Steps(t *testing.T) {
	standard := FlowStandard.Steps()
	assert.Len(t, standard, 5)
	assert.Equal(t, StepAddress, standard[0])
	assert.Equal(t, StepReview, standard[4])

	assessed := FlowAssessed.Steps()
	assert.Len(t, assessed, 6)
	assert.Equal(t, StepAssessment, assessed[1])
	assert.Equal(t, StepReview, assessed[5])
}

func TestIntakeFlow_StepsUnknownFlowFallsBack(t *testing.T) {
	steps := IntakeFlow("bogus").Steps()
	assert.Equal(t, FlowStandard.Steps(), steps)
}

func TestIntakeFlow_StepAt(t *testing.T) {
	assert.Equal(t, StepProjectType, FlowStandard.StepAt(1))
	assert.Equal(t, WizardStep(""), FlowStandard.StepAt(-1))
	assert.Equal(t, WizardStep(""), FlowStandard.StepAt(5))
}

func TestProjectDraft_HasAddress(t *testing.T) {
	draft := ProjectDraft{}
	assert.False(t, draft.HasAddress())

	draft.PropertyAddress = PropertyAddress{
		Line1:    "123 Test Street",
		City:     "London",
		Postcode: "SW1A 1AA",
	}
	assert.True(t, draft.HasAddress())

	draft.PropertyAddress.Postcode = ""
	assert.False(t, draft.HasAddress())
}

func TestProjectDraft_RemoveDocument(t *testing.T) {
	draft := ProjectDraft{
		Documents: []LocalDocument{
			{LocalID: "a", FileName: "plan.pdf"},
			{LocalID: "b", FileName: "photo.jpg"},
		},
	}

	draft.RemoveDocument("a")
	assert.Len(t, draft.Documents, 1)
	assert.Equal(t, "b", draft.Documents[0].LocalID)

	// Unknown id is a no-op
	draft.RemoveDocument("missing")
	assert.Len(t, draft.Documents, 1)
}

func TestProjectDraft_DocumentByLocalID(t *testing.T) {
	draft := ProjectDraft{
		Documents: []LocalDocument{{LocalID: "a", FileName: "plan.pdf"}},
	}

	doc, ok := draft.DocumentByLocalID("a")
	assert.True(t, ok)
	assert.Equal(t, "plan.pdf", doc.FileName)

	_, ok = draft.DocumentByLocalID("missing")
	assert.False(t, ok)
}

func TestDocumentType_IsValid(t *testing.T) {
	assert.True(t, DocumentTypeFloorPlan.IsValid())
	assert.True(t, DocumentTypeOther.IsValid())
	assert.False(t, DocumentType("spreadsheet").IsValid())
}
