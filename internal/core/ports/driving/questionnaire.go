package driving

import (
	"context"

	"github.com/brixlabs/brix-cli/internal/core/domain"
)

// QuestionnaireEngine manages a server-resident adaptive Q&A session.
//
// State machine:
//
//	NotStarted --(Initialize)--> InProgress --(final answer or ForceComplete)--> Complete
//	InProgress --(SubmitAnswer, more required)--> InProgress
type QuestionnaireEngine interface {
	// Initialize resolves the session for a project: get, create on
	// not-found, then fetch the first question unless already complete.
	// Safe to call again after a failure (retry restarts it).
	Initialize(ctx context.Context, projectID string) error

	// Session returns a copy of the cached session.
	// Returns domain.ErrSessionNotInitialized before Initialize succeeds.
	Session() (domain.QuestionnaireSession, error)

	// CurrentQuestion returns the active question together with any
	// pre-filled prior answer (idempotent resume).
	CurrentQuestion() (*ActiveQuestion, error)

	// SubmitAnswer validates locally (required + empty is rejected without
	// a network call), posts the response, and either completes or fetches
	// the next question. Strictly sequenced per session.
	SubmitAnswer(ctx context.Context, questionID string, answer any) error

	// ForceComplete ends the session early. Only available at or above
	// domain.ForceCompleteThreshold completion.
	ForceComplete(ctx context.Context) error

	// EditResponse rewrites a past answer out-of-band during review.
	// The local response list is reconciled by key-replace with a fresh
	// timestamp.
	EditResponse(ctx context.Context, questionID string, newAnswer any) error

	// Reset abandons the cached session. In-flight responses from before
	// the reset are discarded when they land.
	Reset()

	// OnComplete registers the completion callback. Invoked exactly once
	// with the full response list when the session completes.
	OnComplete(fn func(responses []domain.QuestionnaireResponse))
}

// ActiveQuestion pairs the current question with resume state.
type ActiveQuestion struct {
	// Question is the server-selected question.
	Question domain.Question

	// Reasoning explains the selection, when provided.
	Reasoning string

	// AIGenerated marks model-selected questions.
	AIGenerated bool

	// PriorAnswer pre-fills the input when this question was answered
	// before. Nil when unanswered.
	PriorAnswer any
}
