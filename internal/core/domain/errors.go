package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Wizard errors.

	// ErrStepBlocked indicates the current step's validation predicate
	// does not hold, so forward navigation is not permitted.
	ErrStepBlocked = errors.New("current step is incomplete")

	// ErrAtFirstStep indicates Back was invoked on the first step.
	ErrAtFirstStep = errors.New("already at the first step")

	// ErrNotAtReview indicates Submit was invoked before the review step.
	ErrNotAtReview = errors.New("submission is only available at review")

	// Questionnaire errors.

	// ErrSessionNotInitialized indicates an engine operation was invoked
	// before Initialize resolved a session.
	ErrSessionNotInitialized = errors.New("questionnaire session not initialised")

	// ErrAnswerRequired indicates a required question received an empty
	// answer. Rejected locally; no network call is made.
	ErrAnswerRequired = errors.New("an answer is required for this question")

	// ErrSubmitInFlight indicates a submission for this session is already
	// in progress. Submissions are strictly sequenced.
	ErrSubmitInFlight = errors.New("a submission is already in flight")

	// ErrNoActiveQuestion indicates there is no current question to answer.
	ErrNoActiveQuestion = errors.New("no active question")

	// ErrCompletionTooLow indicates force-complete was requested below the
	// completion threshold.
	ErrCompletionTooLow = errors.New("questionnaire completion below threshold")

	// Generation errors.

	// ErrGenerationFailed indicates the server reported the generation job
	// itself failed.
	ErrGenerationFailed = errors.New("scope of work generation failed")

	// ErrArtifactUnavailable indicates generation completed but the finished
	// artifact could not be fetched. Distinct from generation failure.
	ErrArtifactUnavailable = errors.New("scope of work generated but could not be loaded")

	// ErrPollExhausted indicates the bounded poll retry budget was spent.
	// Requires a manual restart; polling never retries unbounded.
	ErrPollExhausted = errors.New("lost connection while tracking generation")

	// ErrTrackerCancelled indicates tracking was cancelled by its owner.
	ErrTrackerCancelled = errors.New("generation tracking cancelled")

	// Authentication errors.

	// ErrAuthRequired indicates a call needs a bearer token but none is
	// configured.
	ErrAuthRequired = errors.New("authentication required")

	// ErrUnauthorized indicates the server rejected the bearer token.
	// Escalated to the session-invalidation path; not handled here.
	ErrUnauthorized = errors.New("authentication rejected")
)
