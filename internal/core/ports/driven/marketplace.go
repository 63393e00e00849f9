package driven

import (
	"context"

	"github.com/brixlabs/brix-cli/internal/core/domain"
)

// ProjectCreation is the request built from a completed draft.
type ProjectCreation struct {
	// PropertyAddress is the validated intake address.
	PropertyAddress domain.PropertyAddress

	// ProjectType is the marketplace project category.
	ProjectType string

	// Requirements is the intake vision.
	Requirements domain.ProjectRequirements

	// Assessment is present only for the assessed flow.
	Assessment *domain.PropertyAssessment
}

// ProjectAPI creates projects on the marketplace backend.
type ProjectAPI interface {
	// CreateProject creates a project from a completed intake.
	CreateProject(ctx context.Context, req ProjectCreation) (*domain.Project, error)
}

// NextQuestion is the server's response to a next-question request.
type NextQuestion struct {
	// Question is the selected question.
	Question domain.Question

	// Reasoning explains the selection, when the server provides it.
	Reasoning string

	// AIGenerated marks model-selected questions.
	AIGenerated bool
}

// QuestionnaireAPI manages the server-resident adaptive questionnaire.
type QuestionnaireAPI interface {
	// GetSession fetches the existing session for a project.
	// Returns domain.ErrNotFound on first visit.
	GetSession(ctx context.Context, projectID string) (*domain.QuestionnaireSession, error)

	// CreateSession starts a new session for a project.
	CreateSession(ctx context.Context, projectID string) (*domain.QuestionnaireSession, error)

	// RequestNextQuestion asks the server for the next adaptive question.
	RequestNextQuestion(ctx context.Context, projectID, sessionID string) (*NextQuestion, error)

	// SubmitResponse posts an answer. The returned session is authoritative
	// for completion percentage and completeness.
	SubmitResponse(ctx context.Context, projectID, sessionID string, resp domain.QuestionnaireResponse) (*domain.QuestionnaireSession, error)

	// CompleteSession asks the server to end the session early.
	CompleteSession(ctx context.Context, projectID, sessionID string) (*domain.QuestionnaireSession, error)

	// UpdateResponse edits a past answer out-of-band (review flow).
	UpdateResponse(ctx context.Context, projectID, sessionID string, resp domain.QuestionnaireResponse) (*domain.QuestionnaireSession, error)
}

// GenerationStart is the server's acknowledgement of a generation request.
type GenerationStart struct {
	SowID  string
	Status domain.GenerationStatus
}

// GenerationAPI drives server-side Scope-of-Work generation.
type GenerationAPI interface {
	// StartGeneration kicks off a generation job for a project.
	StartGeneration(ctx context.Context, projectID string) (*GenerationStart, error)

	// GetJobStatus fetches the current job state. Polled while generating.
	GetJobStatus(ctx context.Context, projectID, sowID string) (*domain.GenerationJob, error)

	// GetArtifact fetches the finished Scope of Work.
	GetArtifact(ctx context.Context, projectID, sowID string) (*domain.ScopeOfWork, error)
}

// UploadSlot is a write-once destination for a document upload.
type UploadSlot struct {
	// UploadURL receives the binary transfer.
	UploadURL string

	// DocumentID identifies the pending document for confirmation.
	DocumentID string
}

// UploadRequest describes the file for which a slot is requested.
type UploadRequest struct {
	ProjectID    string
	FileName     string
	FileSize     int64
	MimeType     string
	DocumentType domain.DocumentType
}

// DocumentAPI manages project documents via the two-phase upload protocol.
type DocumentAPI interface {
	// RequestUploadSlot obtains a write-once URL and pending document id.
	RequestUploadSlot(ctx context.Context, req UploadRequest) (*UploadSlot, error)

	// ConfirmUpload finalises an upload after the binary transfer succeeded.
	// Never called when the transfer phase failed.
	ConfirmUpload(ctx context.Context, documentID string) (*domain.ProjectDocument, error)

	// ListDocuments returns the confirmed documents for a project.
	ListDocuments(ctx context.Context, projectID string) ([]domain.ProjectDocument, error)

	// DeleteDocument removes a document. Idempotent.
	DeleteDocument(ctx context.Context, documentID string) error

	// SetVisibility toggles builder access to a document. Idempotent.
	SetVisibility(ctx context.Context, documentID string, visibility domain.DocumentVisibility) error

	// DownloadURL resolves a read URL for a document.
	DownloadURL(ctx context.Context, documentID string) (string, error)
}

// BlobTransfer moves bytes to and from signed URLs, outside the
// authenticated API surface.
type BlobTransfer interface {
	// Put streams a local file to a write-once upload URL.
	Put(ctx context.Context, uploadURL, filePath, mimeType string) error

	// Get fetches the content behind a download URL.
	Get(ctx context.Context, downloadURL string) ([]byte, error)
}
