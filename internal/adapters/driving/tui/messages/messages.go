// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/brixlabs/brix-cli/internal/core/domain"
	"github.com/brixlabs/brix-cli/internal/core/ports/driving"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewIntake is the step-by-step intake wizard.
	ViewIntake ViewType = iota
	// ViewGeneration is the generation progress view.
	ViewGeneration
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewIntake:
		return "intake"
	case ViewGeneration:
		return "generation"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// StepSaved signals the active step's fields were written to the draft.
type StepSaved struct {
	Step domain.WizardStep
	Err  error
}

// StepChanged signals the wizard moved to a different step.
type StepChanged struct {
	Index int
	Step  domain.WizardStep
}

// SubmissionCompleted carries the outcome of the terminal submit.
type SubmissionCompleted struct {
	Result *driving.SubmissionResult
	Err    error
}

// GenerationProgressed carries one tracking snapshot.
type GenerationProgressed struct {
	Update driving.TrackUpdate
}

// GenerationFinished signals tracking ended, with the artifact or the
// terminal error.
type GenerationFinished struct {
	Artifact *domain.ScopeOfWork
	Err      error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
