// Package domain defines the core business entities for Brix.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ProjectDraft: The in-progress intake form held client-side
//   - Project / ProjectDocument: Server-owned entities after creation
//   - QuestionnaireSession / QuestionnaireResponse: The adaptive Q&A record
//   - GenerationJob / ScopeOfWork: The asynchronous artifact pipeline
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
