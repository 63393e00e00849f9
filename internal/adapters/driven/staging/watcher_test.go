package staging

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brixlabs/brix-cli/internal/adapters/driven/storage/memory"
	"github.com/brixlabs/brix-cli/internal/core/domain"
	"github.com/brixlabs/brix-cli/internal/core/services"
)

func newTestWizard(t *testing.T) *services.WizardService {
	t.Helper()
	wizard, err := services.NewWizardService(
		context.Background(), domain.FlowStandard, memory.NewDraftStore(), nil, nil)
	require.NoError(t, err)
	return wizard
}

// waitFor polls until the condition holds or the deadline passes.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func TestWatcher_StagesDroppedFile(t *testing.T) {
	dir := t.TempDir()
	wizard := newTestWizard(t)

	watcher, err := NewWatcher(dir, wizard)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	watcher.Start(ctx)
	defer watcher.Close()

	path := filepath.Join(dir, "floorplan.pdf")
	require.NoError(t, os.WriteFile(path, []byte("pdf bytes"), 0o600))

	waitFor(t, func() bool { return len(wizard.Draft().Documents) == 1 })

	doc := wizard.Draft().Documents[0]
	assert.Equal(t, domain.DocumentTypeFloorPlan, doc.DocumentType)
	assert.Equal(t, "floorplan.pdf", doc.FileName)
}

func TestWatcher_IgnoresUnsupportedFiles(t *testing.T) {
	dir := t.TempDir()
	wizard := newTestWizard(t)

	watcher, err := NewWatcher(dir, wizard)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	watcher.Start(ctx)
	defer watcher.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.xlsx"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "photo.jpg"), []byte("jpeg"), 0o600))

	waitFor(t, func() bool { return len(wizard.Draft().Documents) == 1 })
	assert.Equal(t, domain.DocumentTypePhoto, wizard.Draft().Documents[0].DocumentType)
}

func TestWatcher_UnstagesRemovedFile(t *testing.T) {
	dir := t.TempDir()
	wizard := newTestWizard(t)

	watcher, err := NewWatcher(dir, wizard)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	watcher.Start(ctx)
	defer watcher.Close()

	path := filepath.Join(dir, "survey.pdf")
	require.NoError(t, os.WriteFile(path, []byte("pdf bytes"), 0o600))
	waitFor(t, func() bool { return len(wizard.Draft().Documents) == 1 })

	require.NoError(t, os.Remove(path))
	waitFor(t, func() bool { return len(wizard.Draft().Documents) == 0 })
}

func TestWatcher_CloseWithoutStart(t *testing.T) {
	watcher, err := NewWatcher(t.TempDir(), newTestWizard(t))
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- watcher.Close() }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Close blocked with no watch loop running")
	}
}

func TestDocumentTypeForFile(t *testing.T) {
	tests := []struct {
		path string
		want domain.DocumentType
	}{
		{"floorplan.pdf", domain.DocumentTypeFloorPlan},
		{"ground-floor-plan.png", domain.DocumentTypeFloorPlan},
		{"plans.dwg", domain.DocumentTypeFloorPlan},
		{"structural-survey.pdf", domain.DocumentTypeSurvey},
		{"planning-decision.pdf", domain.DocumentTypePlanning},
		{"kitchen.jpg", domain.DocumentTypePhoto},
		{"kitchen.png", domain.DocumentTypePhoto},
		{"notes.pdf", domain.DocumentTypeOther},
		{"spreadsheet.xlsx", domain.DocumentType("")},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, DocumentTypeForFile(tt.path))
		})
	}
}
