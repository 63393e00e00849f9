package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/brixlabs/brix-cli/internal/adapters/driving/tui/messages"
	"github.com/brixlabs/brix-cli/internal/adapters/driving/tui/styles"
	"github.com/brixlabs/brix-cli/internal/adapters/driving/tui/views/intake"
	"github.com/brixlabs/brix-cli/internal/adapters/driving/tui/views/progress"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// intakeView is the step-by-step intake wizard.
	intakeView *intake.View

	// progressView tracks a generation job, when one was requested.
	progressView *progress.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a TUI application opening on the intake wizard.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		intakeView:  intake.NewView(s, ports.Wizard),
		currentView: messages.ViewIntake,
	}, nil
}

// NewGenerationApp creates a TUI application that tracks one generation
// job instead of opening the wizard.
func NewGenerationApp(ports *Ports, projectID, sowID string) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}
	if ports.Tracker == nil {
		return nil, ErrMissingTracker
	}

	s := styles.DefaultStyles()
	return &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		intakeView:   intake.NewView(s, ports.Wizard),
		progressView: progress.NewView(s, ports.Tracker, projectID, sowID),
		currentView:  messages.ViewGeneration,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.intakeView.WithContext(ctx)
	if a.progressView != nil {
		a.progressView.WithContext(ctx)
	}
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tea.SetWindowTitle("brix - Project Intake"),
	}
	switch a.currentView {
	case messages.ViewGeneration:
		cmds = append(cmds, a.progressView.Init())
	default:
		cmds = append(cmds, a.intakeView.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.intakeView.SetDimensions(msg.Width, msg.Height)
		if a.progressView != nil {
			a.progressView.SetDimensions(msg.Width, msg.Height)
		}
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c.
		if msg.String() == "ctrl+c" {
			if a.progressView != nil {
				a.progressView.Cancel()
			}
			return a, tea.Quit
		}

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err

	case messages.Quit:
		if a.progressView != nil {
			a.progressView.Cancel()
		}
		return a, tea.Quit
	}

	switch a.currentView {
	case messages.ViewGeneration:
		a.progressView, cmd = a.progressView.Update(msg)
	case messages.ViewHelp:
		if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
			a.currentView = messages.ViewIntake
		}
	default:
		a.intakeView, cmd = a.intakeView.Update(msg)
	}

	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewGeneration:
		return a.progressView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.intakeView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Wizard:
  (type)      Fill the focused field
  tab         Next field
  shift+tab   Previous field
  enter       Save step and advance
  esc         Previous step
  ctrl+c      Quit

Review:
  enter       Submit the project

[esc] back`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.intakeView.SetDimensions(width, height)
}
