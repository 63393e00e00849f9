package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brixlabs/brix-cli/internal/adapters/driven/storage/memory"
	"github.com/brixlabs/brix-cli/internal/adapters/driving/tui/messages"
	"github.com/brixlabs/brix-cli/internal/core/domain"
	"github.com/brixlabs/brix-cli/internal/core/ports/driving"
	"github.com/brixlabs/brix-cli/internal/core/services"
)

type noopTracker struct{}

func (noopTracker) Start(_ context.Context, _, _ string) driving.TrackHandle { return nil }

func newTestPorts(t *testing.T) *Ports {
	t.Helper()
	wizard, err := services.NewWizardService(
		context.Background(), domain.FlowStandard, memory.NewDraftStore(), nil, nil)
	require.NoError(t, err)
	return &Ports{Wizard: wizard}
}

func TestNewApp_RequiresWizard(t *testing.T) {
	_, err := NewApp(&Ports{})
	assert.ErrorIs(t, err, ErrMissingWizard)
}

func TestNewApp_OpensIntake(t *testing.T) {
	app, err := NewApp(newTestPorts(t))
	require.NoError(t, err)

	assert.Equal(t, messages.ViewIntake, app.CurrentView())
	assert.False(t, app.Ready())
}

func TestNewGenerationApp_RequiresTracker(t *testing.T) {
	_, err := NewGenerationApp(newTestPorts(t), "proj-1", "sow-1")
	assert.ErrorIs(t, err, ErrMissingTracker)
}

func TestNewGenerationApp_OpensProgress(t *testing.T) {
	ports := newTestPorts(t)
	ports.Tracker = noopTracker{}

	app, err := NewGenerationApp(ports, "proj-1", "sow-1")
	require.NoError(t, err)
	assert.Equal(t, messages.ViewGeneration, app.CurrentView())
}

func TestUpdate_WindowSizeMakesReady(t *testing.T) {
	app, err := NewApp(newTestPorts(t))
	require.NoError(t, err)

	model, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	app = model.(*App)

	assert.True(t, app.Ready())
	assert.Contains(t, app.View(), "Brix Project Intake")
}

func TestUpdate_CtrlCQuits(t *testing.T) {
	app, err := NewApp(newTestPorts(t))
	require.NoError(t, err)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestUpdate_ViewChanged(t *testing.T) {
	app, err := NewApp(newTestPorts(t))
	require.NoError(t, err)
	app.SetDimensions(100, 40)

	model, _ := app.Update(messages.ViewChanged{View: messages.ViewHelp})
	app = model.(*App)

	assert.Equal(t, messages.ViewHelp, app.CurrentView())
	assert.Contains(t, app.View(), "Help")

	// Esc leaves help back to the wizard.
	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(*App)
	assert.Equal(t, messages.ViewIntake, app.CurrentView())
}

func TestView_NotReady(t *testing.T) {
	app, err := NewApp(newTestPorts(t))
	require.NoError(t, err)
	assert.Contains(t, app.View(), "Initialising")
}

func TestUpdate_ErrorOccurred(t *testing.T) {
	app, err := NewApp(newTestPorts(t))
	require.NoError(t, err)

	model, _ := app.Update(messages.ErrorOccurred{Err: domain.ErrNotFound})
	app = model.(*App)
	assert.ErrorIs(t, app.Err(), domain.ErrNotFound)
}
