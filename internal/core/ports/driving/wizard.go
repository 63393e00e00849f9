package driving

import (
	"context"

	"github.com/brixlabs/brix-cli/internal/core/domain"
)

// WizardController owns intake wizard navigation and terminal submission.
// Forward navigation is gated on per-step validity; Back always succeeds
// above the first step.
type WizardController interface {
	// Current returns the current step index and its semantic step.
	Current() (int, domain.WizardStep)

	// Draft returns a copy of the working draft.
	Draft() domain.ProjectDraft

	// CanAdvance reports whether the current step's predicate holds.
	CanAdvance() bool

	// Next advances one step. Returns domain.ErrStepBlocked when the
	// current step is invalid. Next at review is a no-op error-free stay;
	// submission is explicit.
	Next() error

	// Back retreats one step. Returns domain.ErrAtFirstStep at index 0.
	Back() error

	// SetAddress writes the address through to the draft store.
	SetAddress(ctx context.Context, addr domain.PropertyAddress) error

	// SetAssessment writes the property assessment through (assessed flow).
	SetAssessment(ctx context.Context, assessment domain.PropertyAssessment) error

	// SetProjectType writes the project type through.
	SetProjectType(ctx context.Context, projectType string) error

	// SetRequirements writes the requirements through.
	SetRequirements(ctx context.Context, req domain.ProjectRequirements) error

	// StageDocument stages a local file for deferred upload.
	StageDocument(ctx context.Context, filePath string, docType domain.DocumentType) (*domain.LocalDocument, error)

	// UnstageDocument removes a staged file from the draft.
	UnstageDocument(ctx context.Context, localID string) error

	// Submit performs the terminal action: create the project, upload each
	// staged document (failures isolated per document), clear the draft.
	// Returns domain.ErrNotAtReview unless the wizard is at the review
	// step. A creation failure leaves the draft untouched for retry.
	Submit(ctx context.Context) (*SubmissionResult, error)
}

// SubmissionResult reports the outcome of a successful submission.
type SubmissionResult struct {
	// Project is the created project.
	Project *domain.Project

	// Uploaded lists the documents confirmed by the server.
	Uploaded []domain.ProjectDocument

	// FailedUploads names the staged files whose upload failed.
	// These are dropped, never blocking; the project itself stands.
	FailedUploads []string
}
