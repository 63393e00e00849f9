package domain

import "time"

// DocumentType classifies an intake or project document.
type DocumentType string

// Recognised document types.
const (
	DocumentTypeFloorPlan DocumentType = "floor_plan"
	DocumentTypePhoto     DocumentType = "photo"
	DocumentTypeSurvey    DocumentType = "survey"
	DocumentTypePlanning  DocumentType = "planning_permission"
	DocumentTypeOther     DocumentType = "other"
)

// IsValid returns true if the document type is recognised.
func (t DocumentType) IsValid() bool {
	switch t {
	case DocumentTypeFloorPlan, DocumentTypePhoto, DocumentTypeSurvey,
		DocumentTypePlanning, DocumentTypeOther:
		return true
	default:
		return false
	}
}

// DocumentVisibility controls who can see a project document.
type DocumentVisibility string

// Document visibility values.
const (
	// VisibilityPrivate limits the document to the project owner.
	VisibilityPrivate DocumentVisibility = "private"

	// VisibilityShared exposes the document to invited builders.
	VisibilityShared DocumentVisibility = "shared"
)

// Project is the server-owned entity created by wizard submission.
type Project struct {
	// ID is the server-assigned project identifier.
	ID string

	// Status is the marketplace lifecycle state, e.g. "draft", "open_for_bids".
	Status string

	// PropertyAddress echoes the intake address.
	PropertyAddress PropertyAddress

	// ProjectType is the marketplace project category.
	ProjectType string

	// Requirements echoes the intake requirements.
	Requirements ProjectRequirements

	// CreatedAt is when the server created the project.
	CreatedAt time.Time
}

// ProjectDocument is a server-owned document, created only after a
// successful two-phase upload. This is the only representation visible
// to other marketplace actors.
type ProjectDocument struct {
	// ID is the server-assigned document identifier.
	ID string

	// ProjectID links to the owning project.
	ProjectID string

	// FileName is the original file name.
	FileName string

	// DocumentType classifies the document.
	DocumentType DocumentType

	// MimeType is the stored content type.
	MimeType string

	// Size is the stored size in bytes.
	Size int64

	// Visibility controls builder access.
	Visibility DocumentVisibility

	// UploadedAt is when the upload was confirmed.
	UploadedAt time.Time
}
