package driving

import (
	"context"

	"github.com/brixlabs/brix-cli/internal/core/domain"
)

// GenerationTracker follows a server-side Scope-of-Work generation job to
// completion by bounded polling. Job creation is the caller's concern; the
// tracker starts from an existing (projectID, sowID) pair.
type GenerationTracker interface {
	// Start begins polling and returns a handle owning the poll loop.
	// The loop stops the instant the handle is cancelled or the passed
	// context ends; no poll fires afterwards.
	Start(ctx context.Context, projectID, sowID string) TrackHandle
}

// TrackHandle is a cancellable view of one tracking run.
type TrackHandle interface {
	// Updates delivers progress snapshots while the job is generating.
	// Closed when tracking ends.
	Updates() <-chan TrackUpdate

	// Done is closed when tracking ends, for select-based consumers.
	Done() <-chan struct{}

	// Result returns the fetched artifact after success, or the terminal
	// error: domain.ErrGenerationFailed, domain.ErrArtifactUnavailable,
	// domain.ErrPollExhausted or domain.ErrTrackerCancelled.
	// Valid only after Done is closed.
	Result() (*domain.ScopeOfWork, error)

	// Cancel stops polling immediately. Idempotent.
	Cancel()
}

// TrackUpdate is a presentational snapshot of tracking progress.
type TrackUpdate struct {
	// Status is the last server-reported job state.
	Status domain.GenerationStatus

	// Progress is the server's completion estimate in [0,100].
	Progress float64

	// Stage is the derived display label for the progress value.
	Stage string

	// TimeRemaining is the clamped human-readable estimate.
	TimeRemaining string

	// Reconnecting is set while absorbed poll failures accumulate.
	Reconnecting bool

	// Attempt counts consecutive failed polls while reconnecting.
	Attempt int
}
