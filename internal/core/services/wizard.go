package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/brixlabs/brix-cli/internal/core/domain"
	"github.com/brixlabs/brix-cli/internal/core/ports/driven"
	"github.com/brixlabs/brix-cli/internal/core/ports/driving"
	"github.com/brixlabs/brix-cli/internal/logger"
)

// Ensure WizardService implements the interface.
var _ driving.WizardController = (*WizardService)(nil)

// WizardService owns intake wizard navigation, draft persistence and the
// terminal submission.
type WizardService struct {
	draftStore driven.DraftStore
	projects   driven.ProjectAPI
	documents  driving.DocumentManager

	mu    sync.Mutex
	step  int
	draft domain.ProjectDraft
}

// NewWizardService creates a wizard over an existing or fresh draft.
// A persisted draft is resumed; otherwise a new one is started with the
// given flow and saved on the first field edit.
func NewWizardService(
	ctx context.Context,
	flow domain.IntakeFlow,
	draftStore driven.DraftStore,
	projects driven.ProjectAPI,
	documents driving.DocumentManager,
) (*WizardService, error) {
	w := &WizardService{
		draftStore: draftStore,
		projects:   projects,
		documents:  documents,
		draft:      domain.ProjectDraft{Flow: flow},
	}

	existing, err := draftStore.Load(ctx)
	switch {
	case err == nil:
		w.draft = *existing
		logger.Debug("Resumed draft updated at %s", existing.UpdatedAt.Format(time.RFC3339))
	case isNotFound(err):
		// First visit - start clean.
	default:
		return nil, fmt.Errorf("load draft: %w", err)
	}

	return w, nil
}

// Current returns the current step index and its semantic step.
func (w *WizardService) Current() (int, domain.WizardStep) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step, w.draft.Flow.StepAt(w.step)
}

// Draft returns a copy of the working draft.
func (w *WizardService) Draft() domain.ProjectDraft {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draft
}

// CanAdvance reports whether the current step's predicate holds.
func (w *WizardService) CanAdvance() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return IsStepValid(w.draft.Flow, w.step, &w.draft)
}

// Next advances one step when the gate permits it.
// At the review step Next is a no-op; submission is an explicit action.
func (w *WizardService) Next() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !IsStepValid(w.draft.Flow, w.step, &w.draft) {
		return domain.ErrStepBlocked
	}
	if w.step < w.draft.Flow.StepCount()-1 {
		w.step++
	}
	return nil
}

// Back retreats one step. Never re-validates.
func (w *WizardService) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step == 0 {
		return domain.ErrAtFirstStep
	}
	w.step--
	return nil
}

// SetAddress writes the address through to the draft store.
func (w *WizardService) SetAddress(ctx context.Context, addr domain.PropertyAddress) error {
	return w.mutate(ctx, func(d *domain.ProjectDraft) {
		d.PropertyAddress = addr
	})
}

// SetAssessment writes the property assessment through (assessed flow).
func (w *WizardService) SetAssessment(ctx context.Context, assessment domain.PropertyAssessment) error {
	return w.mutate(ctx, func(d *domain.ProjectDraft) {
		d.Assessment = &assessment
	})
}

// SetProjectType writes the project type through.
func (w *WizardService) SetProjectType(ctx context.Context, projectType string) error {
	if projectType == "" {
		return domain.ErrInvalidInput
	}
	return w.mutate(ctx, func(d *domain.ProjectDraft) {
		d.ProjectType = projectType
	})
}

// SetRequirements writes the requirements through.
func (w *WizardService) SetRequirements(ctx context.Context, req domain.ProjectRequirements) error {
	return w.mutate(ctx, func(d *domain.ProjectDraft) {
		d.Requirements = req
	})
}

// StageDocument stages a local file for deferred upload. Only metadata is
// persisted; the content stays on disk until submission.
func (w *WizardService) StageDocument(ctx context.Context, filePath string, docType domain.DocumentType) (*domain.LocalDocument, error) {
	if !docType.IsValid() {
		return nil, fmt.Errorf("%w: document type %q", domain.ErrInvalidInput, docType)
	}

	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", filePath, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", domain.ErrInvalidInput, filePath)
	}

	doc := domain.LocalDocument{
		LocalID:      uuid.NewString(),
		FilePath:     filePath,
		FileName:     filepath.Base(filePath),
		DocumentType: docType,
		MimeType:     mimeTypeForFile(filePath),
		Size:         info.Size(),
	}

	if err := w.mutate(ctx, func(d *domain.ProjectDraft) {
		d.Documents = append(d.Documents, doc)
	}); err != nil {
		return nil, err
	}
	return &doc, nil
}

// UnstageDocument removes a staged file from the draft.
func (w *WizardService) UnstageDocument(ctx context.Context, localID string) error {
	return w.mutate(ctx, func(d *domain.ProjectDraft) {
		d.RemoveDocument(localID)
	})
}

// Submit creates the project then uploads every staged document.
// Only available at the review step. Upload failures are isolated per
// document: the failing file is dropped and the rest proceed. Creation
// failure leaves the draft untouched so the user can retry without
// re-entering data.
func (w *WizardService) Submit(ctx context.Context) (*driving.SubmissionResult, error) {
	w.mu.Lock()
	if w.draft.Flow.StepAt(w.step) != domain.StepReview {
		w.mu.Unlock()
		return nil, domain.ErrNotAtReview
	}
	draft := w.draft
	w.mu.Unlock()

	req := driven.ProjectCreation{
		PropertyAddress: draft.PropertyAddress,
		ProjectType:     draft.ProjectType,
		Requirements:    draft.Requirements,
		Assessment:      draft.Assessment,
	}

	project, err := w.projects.CreateProject(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	result := &driving.SubmissionResult{Project: project}
	for _, doc := range draft.Documents {
		uploaded, upErr := w.documents.Upload(ctx, project.ID, doc)
		if upErr != nil {
			logger.Warn("Upload of %s failed: %v", doc.FileName, upErr)
			result.FailedUploads = append(result.FailedUploads, doc.FileName)
			continue
		}
		result.Uploaded = append(result.Uploaded, *uploaded)
	}

	if err := w.draftStore.Clear(ctx); err != nil {
		// The project exists; a stale draft is an annoyance, not a failure.
		logger.Warn("Clearing submitted draft failed: %v", err)
	}

	w.mu.Lock()
	w.draft = domain.ProjectDraft{Flow: draft.Flow}
	w.step = 0
	w.mu.Unlock()

	logger.Info("Project %s created with %d documents", project.ID, len(result.Uploaded))
	return result, nil
}

// mutate applies an edit and writes the draft through to the store.
func (w *WizardService) mutate(ctx context.Context, edit func(*domain.ProjectDraft)) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	updated := w.draft
	edit(&updated)
	updated.UpdatedAt = time.Now()

	if err := w.draftStore.Save(ctx, &updated); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	w.draft = updated
	return nil
}

// isNotFound reports whether an error is the domain not-found sentinel.
func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound)
}

// mimeTypeForFile guesses a content type from the file extension.
func mimeTypeForFile(path string) string {
	switch filepath.Ext(path) {
	case ".pdf":
		return "application/pdf"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".dwg":
		return "image/vnd.dwg"
	case ".txt":
		return "text/plain"
	default:
		return "application/octet-stream"
	}
}
