package domain

import "time"

// IntakeFlow selects which wizard step sequence is active.
type IntakeFlow string

// Available intake flows.
const (
	// FlowStandard is address, project type, requirements, documents, review.
	FlowStandard IntakeFlow = "standard"

	// FlowAssessed adds a property assessment step after the address.
	FlowAssessed IntakeFlow = "assessed"
)

// WizardStep identifies one semantic step of the intake wizard.
// The position of a step within a flow comes from IntakeFlow.Steps.
type WizardStep string

// Wizard steps.
const (
	StepAddress      WizardStep = "address"
	StepAssessment   WizardStep = "assessment"
	StepProjectType  WizardStep = "project_type"
	StepRequirements WizardStep = "requirements"
	StepDocuments    WizardStep = "documents"
	StepReview       WizardStep = "review"
)

// Steps returns the ordered step sequence for the flow.
// Unknown flows fall back to the standard sequence.
func (f IntakeFlow) Steps() []WizardStep {
	if f == FlowAssessed {
		return []WizardStep{
			StepAddress, StepAssessment, StepProjectType,
			StepRequirements, StepDocuments, StepReview,
		}
	}
	return []WizardStep{
		StepAddress, StepProjectType, StepRequirements,
		StepDocuments, StepReview,
	}
}

// StepCount returns the number of steps in the flow.
func (f IntakeFlow) StepCount() int {
	return len(f.Steps())
}

// StepAt returns the semantic step at an index, or "" when out of range.
func (f IntakeFlow) StepAt(index int) WizardStep {
	steps := f.Steps()
	if index < 0 || index >= len(steps) {
		return ""
	}
	return steps[index]
}

// PropertyAddress is the location of the property the project concerns.
type PropertyAddress struct {
	// Line1 is the first address line (required).
	Line1 string

	// Line2 is the optional second address line.
	Line2 string

	// City is the town or city (required).
	City string

	// Postcode is the postal code (required).
	Postcode string

	// Country is the country code. Defaults to the marketplace's region.
	Country string
}

// BudgetRange bounds the expected project spend.
type BudgetRange struct {
	Min float64
	Max float64
}

// ProjectRequirements captures the user's vision for the project.
type ProjectRequirements struct {
	// Description is the free-text project vision (required).
	Description string

	// Dimensions describes the affected space, e.g. "4m x 6m".
	Dimensions string

	// Materials lists preferred materials.
	Materials []string

	// Timeline is the desired completion window.
	Timeline string

	// Budget bounds the expected spend, if the user gave one.
	Budget *BudgetRange

	// SpecialRequirements lists constraints such as access or conservation rules.
	SpecialRequirements []string
}

// PropertyAssessment records the optional pre-intake property survey answers.
// Only present in the assessed flow.
type PropertyAssessment struct {
	// PropertyAge is the approximate construction era.
	PropertyAge string

	// Condition is the user's judgement of the property state.
	Condition string

	// AccessNotes describes access constraints for builders.
	AccessNotes string
}

// LocalDocument is a file staged for upload before the project exists.
// Only metadata is persisted; the binary content stays on disk and is
// re-read at submit time. A path that no longer resolves is dropped.
type LocalDocument struct {
	// LocalID is a client-generated identifier for the staged file.
	LocalID string

	// FilePath is the absolute path to the file on disk.
	FilePath string

	// FileName is the base name presented to the server.
	FileName string

	// DocumentType classifies the document (floor_plan, photo, ...).
	DocumentType DocumentType

	// MimeType is the detected content type.
	MimeType string

	// Size is the file size in bytes at staging time.
	Size int64
}

// ProjectDraft is the in-progress intake form. It is single-owner (the
// active session), overwritten on every field edit and cleared on
// successful project creation.
type ProjectDraft struct {
	// Flow selects the wizard variant this draft was started with.
	Flow IntakeFlow

	// PropertyAddress is collected by the address step.
	PropertyAddress PropertyAddress

	// Assessment is collected by the assessment step (assessed flow only).
	Assessment *PropertyAssessment

	// ProjectType is the marketplace project category, e.g. "loft_conversion".
	ProjectType string

	// Requirements is collected by the requirements step.
	Requirements ProjectRequirements

	// Documents are the locally staged files, uploaded after creation.
	Documents []LocalDocument

	// UpdatedAt is when the draft was last written.
	UpdatedAt time.Time
}

// HasAddress reports whether the required address fields are filled.
func (d *ProjectDraft) HasAddress() bool {
	a := d.PropertyAddress
	return a.Line1 != "" && a.City != "" && a.Postcode != ""
}

// DocumentByLocalID finds a staged document by its local identifier.
func (d *ProjectDraft) DocumentByLocalID(localID string) (LocalDocument, bool) {
	for _, doc := range d.Documents {
		if doc.LocalID == localID {
			return doc, true
		}
	}
	return LocalDocument{}, false
}

// RemoveDocument drops a staged document from the draft.
// Removing an unknown id is a no-op.
func (d *ProjectDraft) RemoveDocument(localID string) {
	kept := d.Documents[:0]
	for _, doc := range d.Documents {
		if doc.LocalID != localID {
			kept = append(kept, doc)
		}
	}
	d.Documents = kept
}
