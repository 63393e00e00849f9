package tui

import "errors"

// Errors returned by Ports.Validate.
var (
	// ErrMissingWizard indicates the wizard controller port was not provided.
	ErrMissingWizard = errors.New("wizard controller is required")

	// ErrMissingTracker indicates generation tracking was requested
	// without a tracker port.
	ErrMissingTracker = errors.New("generation tracker is required")
)
