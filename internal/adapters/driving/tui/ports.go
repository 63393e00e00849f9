// Package tui provides the interactive intake wizard and generation
// progress interface for brix. It implements a driving adapter following
// hexagonal architecture principles.
package tui

import (
	"github.com/brixlabs/brix-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Wizard owns intake navigation and submission.
	Wizard driving.WizardController

	// Tracker follows Scope-of-Work generation jobs. Optional; only
	// needed when the generation progress view is used.
	Tracker driving.GenerationTracker
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Wizard == nil {
		return ErrMissingWizard
	}
	return nil
}
