package services

import (
	"context"
	"sync"
	"time"

	"github.com/brixlabs/brix-cli/internal/core/domain"
	"github.com/brixlabs/brix-cli/internal/core/ports/driven"
	"github.com/brixlabs/brix-cli/internal/core/ports/driving"
	"github.com/brixlabs/brix-cli/internal/logger"
)

// DefaultPollInterval is the fixed delay between status polls.
const DefaultPollInterval = 5 * time.Second

// maxPollFailures is the number of consecutive poll failures absorbed
// before tracking gives up. The next failure is terminal; there is no
// unbounded silent retry.
const maxPollFailures = 3

// Ensure GenerationService implements the interface.
var _ driving.GenerationTracker = (*GenerationService)(nil)

// GenerationService tracks server-side Scope-of-Work generation jobs.
type GenerationService struct {
	api      driven.GenerationAPI
	interval time.Duration
}

// NewGenerationService creates a tracker polling at the default interval.
func NewGenerationService(api driven.GenerationAPI) *GenerationService {
	return &GenerationService{api: api, interval: DefaultPollInterval}
}

// NewGenerationServiceWithInterval creates a tracker with a custom poll
// interval. Used by tests; production callers take the default.
func NewGenerationServiceWithInterval(api driven.GenerationAPI, interval time.Duration) *GenerationService {
	return &GenerationService{api: api, interval: interval}
}

// Start begins polling and returns the handle owning the loop.
func (g *GenerationService) Start(ctx context.Context, projectID, sowID string) driving.TrackHandle {
	runCtx, cancel := context.WithCancel(ctx)
	h := &trackHandle{
		updates: make(chan driving.TrackUpdate, 8),
		done:    make(chan struct{}),
		cancel:  cancel,
	}
	go g.run(runCtx, h, projectID, sowID)
	return h
}

// trackHandle is the cancellable view of one tracking run.
type trackHandle struct {
	updates chan driving.TrackUpdate
	done    chan struct{}
	cancel  context.CancelFunc

	mu       sync.Mutex
	artifact *domain.ScopeOfWork
	err      error
}

// Updates delivers progress snapshots. Closed when tracking ends.
func (h *trackHandle) Updates() <-chan driving.TrackUpdate {
	return h.updates
}

// Done is closed when tracking ends.
func (h *trackHandle) Done() <-chan struct{} {
	return h.done
}

// Result returns the artifact or terminal error. Valid after Done closes.
func (h *trackHandle) Result() (*domain.ScopeOfWork, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.artifact, h.err
}

// Cancel stops polling immediately. Idempotent.
func (h *trackHandle) Cancel() {
	h.cancel()
}

// finish records the outcome and releases consumers.
func (h *trackHandle) finish(artifact *domain.ScopeOfWork, err error) {
	h.mu.Lock()
	h.artifact = artifact
	h.err = err
	h.mu.Unlock()
	close(h.updates)
	close(h.done)
}

// emit delivers an update without blocking a slow consumer; tracking
// correctness never depends on every snapshot being observed.
func (h *trackHandle) emit(u driving.TrackUpdate) {
	select {
	case h.updates <- u:
	default:
	}
}

// run is the poll loop. It polls immediately, then on every tick, and
// stops the instant the context is cancelled - no poll fires afterwards.
func (g *GenerationService) run(ctx context.Context, h *trackHandle, projectID, sowID string) {
	defer h.cancel()

	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	failures := 0
	for {
		job, err := g.api.GetJobStatus(ctx, projectID, sowID)
		if err != nil {
			if ctx.Err() != nil {
				h.finish(nil, domain.ErrTrackerCancelled)
				return
			}
			failures++
			if failures > maxPollFailures {
				logger.Warn("Generation poll failed %d times; giving up", failures)
				h.finish(nil, domain.ErrPollExhausted)
				return
			}
			logger.Debug("Generation poll failed (attempt %d/%d): %v", failures, maxPollFailures, err)
			h.emit(driving.TrackUpdate{
				Status:       domain.GenerationStatusGenerating,
				Reconnecting: true,
				Attempt:      failures,
			})
		} else {
			failures = 0
			switch job.Status {
			case domain.GenerationStatusCompleted:
				g.finishWithArtifact(ctx, h, projectID, sowID)
				return
			case domain.GenerationStatusFailed:
				h.finish(nil, domain.ErrGenerationFailed)
				return
			default:
				h.emit(driving.TrackUpdate{
					Status:        job.Status,
					Progress:      job.Progress,
					Stage:         domain.StageFor(job.Progress),
					TimeRemaining: domain.TimeRemainingText(job.EstimatedCompletion, time.Now()),
				})
			}
		}

		select {
		case <-ctx.Done():
			h.finish(nil, domain.ErrTrackerCancelled)
			return
		case <-ticker.C:
		}
	}
}

// finishWithArtifact fetches the finished document before declaring
// completion. A failure here is reported as the artifact being
// unavailable, never conflated with generation failure.
func (g *GenerationService) finishWithArtifact(ctx context.Context, h *trackHandle, projectID, sowID string) {
	artifact, err := g.api.GetArtifact(ctx, projectID, sowID)
	if err != nil {
		if ctx.Err() != nil {
			h.finish(nil, domain.ErrTrackerCancelled)
			return
		}
		logger.Warn("Generated artifact fetch failed: %v", err)
		h.finish(nil, domain.ErrArtifactUnavailable)
		return
	}
	logger.Info("Scope of Work %s ready", artifact.ID)
	h.finish(artifact, nil)
}
