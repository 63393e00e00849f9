// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - DraftStore: Durable persistence of the in-progress intake draft
//   - ProjectAPI: Project creation against the marketplace backend
//   - QuestionnaireAPI: Adaptive session get/create/next/submit operations
//   - GenerationAPI: Scope-of-Work job start/status/artifact operations
//   - DocumentAPI: Two-phase upload slots and document management
//   - BlobTransfer: Direct binary transfer to/from signed URLs
//   - TokenProvider: Bearer tokens for authenticated calls
//
// # Optional Interfaces
//
//   - ConfigStore: Application configuration; defaults apply when nil
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
