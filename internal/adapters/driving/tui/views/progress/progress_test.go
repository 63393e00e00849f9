package progress

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brixlabs/brix-cli/internal/adapters/driving/tui/messages"
	"github.com/brixlabs/brix-cli/internal/core/domain"
	"github.com/brixlabs/brix-cli/internal/core/ports/driving"
)

// fakeHandle is a tracking handle fed by the test.
type fakeHandle struct {
	updates chan driving.TrackUpdate
	done    chan struct{}

	mu        sync.Mutex
	artifact  *domain.ScopeOfWork
	err       error
	cancelled bool
}

func newFakeHandle() *fakeHandle {
	return &fakeHandle{
		updates: make(chan driving.TrackUpdate, 8),
		done:    make(chan struct{}),
	}
}

func (h *fakeHandle) Updates() <-chan driving.TrackUpdate { return h.updates }
func (h *fakeHandle) Done() <-chan struct{}               { return h.done }

func (h *fakeHandle) Result() (*domain.ScopeOfWork, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.artifact, h.err
}

func (h *fakeHandle) Cancel() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cancelled = true
}

func (h *fakeHandle) isCancelled() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cancelled
}

func (h *fakeHandle) finish(artifact *domain.ScopeOfWork, err error) {
	h.mu.Lock()
	h.artifact = artifact
	h.err = err
	h.mu.Unlock()
	close(h.updates)
	close(h.done)
}

// fakeTracker hands out a prepared handle.
type fakeTracker struct {
	handle *fakeHandle
}

func (t *fakeTracker) Start(_ context.Context, _, _ string) driving.TrackHandle {
	return t.handle
}

func newTestView(handle *fakeHandle) *View {
	return NewView(nil, &fakeTracker{handle: handle}, "proj-1", "sow-1")
}

func TestInit_StartsTracking(t *testing.T) {
	handle := newFakeHandle()
	v := newTestView(handle)

	cmd := v.Init()
	require.NotNil(t, cmd)
	assert.Same(t, handle, v.handle)
}

func TestWaitForUpdate_DeliversSnapshot(t *testing.T) {
	handle := newFakeHandle()
	v := newTestView(handle)
	v.Init()

	handle.updates <- driving.TrackUpdate{
		Status:   domain.GenerationStatusGenerating,
		Progress: 45,
		Stage:    "Drafting scope sections",
	}

	msg := v.waitForUpdate()()
	progressed, ok := msg.(messages.GenerationProgressed)
	require.True(t, ok)
	assert.Equal(t, 45.0, progressed.Update.Progress)

	v, _ = v.Update(progressed)
	out := v.View()
	assert.Contains(t, out, "Drafting scope sections")
}

func TestWaitForUpdate_ClosedChannelResolvesResult(t *testing.T) {
	handle := newFakeHandle()
	v := newTestView(handle)
	v.Init()

	handle.finish(&domain.ScopeOfWork{Title: "Loft Conversion SoW"}, nil)

	msg := v.waitForUpdate()()
	finished, ok := msg.(messages.GenerationFinished)
	require.True(t, ok)
	require.NoError(t, finished.Err)

	v, _ = v.Update(finished)
	assert.True(t, v.Finished())
	assert.Contains(t, v.View(), "Loft Conversion SoW")
}

func TestUpdate_TerminalError(t *testing.T) {
	handle := newFakeHandle()
	v := newTestView(handle)
	v.Init()

	handle.finish(nil, domain.ErrGenerationFailed)

	msg := v.waitForUpdate()()
	v, _ = v.Update(msg)

	assert.True(t, v.Finished())
	assert.ErrorIs(t, v.Err(), domain.ErrGenerationFailed)
	assert.Contains(t, v.View(), domain.ErrGenerationFailed.Error())
}

func TestView_ReconnectingShowsAttempt(t *testing.T) {
	handle := newFakeHandle()
	v := newTestView(handle)
	v.Init()

	v, _ = v.Update(messages.GenerationProgressed{Update: driving.TrackUpdate{
		Status:       domain.GenerationStatusGenerating,
		Reconnecting: true,
		Attempt:      2,
	}})

	out := v.View()
	assert.Contains(t, out, "retrying")
	assert.Contains(t, out, "2")
}

func TestCancel_ForwardsToHandle(t *testing.T) {
	handle := newFakeHandle()
	v := newTestView(handle)
	v.Init()

	v.Cancel()
	assert.True(t, handle.isCancelled())
}

func TestView_BeforeFirstUpdate(t *testing.T) {
	handle := newFakeHandle()
	v := newTestView(handle)
	v.Init()

	assert.Contains(t, v.View(), "starting")
}
