// Package mcp provides an MCP (Model Context Protocol) server adapter for Brix.
// It lets AI assistants inspect the intake draft, answer questionnaire
// questions and check Scope-of-Work generation on the user's behalf.
package mcp

import "errors"

// ErrMissingWizard is returned when the wizard controller is not provided.
var ErrMissingWizard = errors.New("mcp: wizard controller is required")
