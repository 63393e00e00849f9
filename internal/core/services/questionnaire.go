package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/brixlabs/brix-cli/internal/core/domain"
	"github.com/brixlabs/brix-cli/internal/core/ports/driven"
	"github.com/brixlabs/brix-cli/internal/core/ports/driving"
	"github.com/brixlabs/brix-cli/internal/logger"
)

// Ensure QuestionnaireService implements the interface.
var _ driving.QuestionnaireEngine = (*QuestionnaireService)(nil)

// QuestionnaireService manages one server-resident adaptive Q&A session.
// Submissions are strictly sequenced: a second SubmitAnswer is rejected
// while one is in flight. Every network exchange carries the engine's
// epoch; a Reset bumps it and responses from a superseded epoch are
// discarded rather than applied.
type QuestionnaireService struct {
	api driven.QuestionnaireAPI

	mu         sync.Mutex
	projectID  string
	session    *domain.QuestionnaireSession
	current    *driving.ActiveQuestion
	inFlight   bool
	epoch      uint64
	onComplete func(responses []domain.QuestionnaireResponse)
	completed  bool
}

// NewQuestionnaireService creates an engine over the questionnaire API.
func NewQuestionnaireService(api driven.QuestionnaireAPI) *QuestionnaireService {
	return &QuestionnaireService{api: api}
}

// Initialize resolves the session for a project: get, create on not-found,
// then fetch the first question unless the session is already complete.
// Any network failure leaves the engine uninitialised; calling Initialize
// again is the retry action.
func (q *QuestionnaireService) Initialize(ctx context.Context, projectID string) error {
	q.mu.Lock()
	epoch := q.epoch
	q.mu.Unlock()

	session, err := q.api.GetSession(ctx, projectID)
	if isNotFound(err) {
		// First visit - not an error.
		session, err = q.api.CreateSession(ctx, projectID)
	}
	if err != nil {
		return fmt.Errorf("resolve session: %w", err)
	}

	q.mu.Lock()
	if q.epoch != epoch {
		q.mu.Unlock()
		return nil // Superseded by Reset while in flight.
	}
	q.projectID = projectID
	q.session = session
	q.current = nil
	q.completed = session.IsComplete
	q.mu.Unlock()

	logger.Debug("Questionnaire session %s at question %d (%.0f%% complete)",
		session.ID, session.CurrentQuestionIndex, session.CompletionPercentage)

	if session.IsComplete {
		return nil
	}
	return q.fetchNextQuestion(ctx, epoch)
}

// Session returns a copy of the cached session.
func (q *QuestionnaireService) Session() (domain.QuestionnaireSession, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.session == nil {
		return domain.QuestionnaireSession{}, domain.ErrSessionNotInitialized
	}
	return *q.session, nil
}

// CurrentQuestion returns the active question with any pre-filled prior
// answer.
func (q *QuestionnaireService) CurrentQuestion() (*driving.ActiveQuestion, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.session == nil {
		return nil, domain.ErrSessionNotInitialized
	}
	if q.current == nil {
		return nil, domain.ErrNoActiveQuestion
	}
	active := *q.current
	return &active, nil
}

// SubmitAnswer posts a response and advances the session.
//
// A required question with an empty answer is rejected locally; no network
// call is issued. The server's returned session is authoritative for
// completion percentage and completeness.
func (q *QuestionnaireService) SubmitAnswer(ctx context.Context, questionID string, answer any) error {
	q.mu.Lock()
	if q.session == nil {
		q.mu.Unlock()
		return domain.ErrSessionNotInitialized
	}
	if q.inFlight {
		q.mu.Unlock()
		return domain.ErrSubmitInFlight
	}
	if q.current == nil {
		q.mu.Unlock()
		return domain.ErrNoActiveQuestion
	}
	if q.current.Question.Required && domain.IsAnswerEmpty(answer) {
		q.mu.Unlock()
		return domain.ErrAnswerRequired
	}
	q.inFlight = true
	epoch := q.epoch
	projectID, sessionID := q.projectID, q.session.ID
	q.mu.Unlock()

	defer func() {
		q.mu.Lock()
		q.inFlight = false
		q.mu.Unlock()
	}()

	resp := domain.QuestionnaireResponse{
		QuestionID: questionID,
		Answer:     answer,
		Timestamp:  time.Now(),
	}

	updated, err := q.api.SubmitResponse(ctx, projectID, sessionID, resp)
	if err != nil {
		return fmt.Errorf("submit response: %w", err)
	}

	q.mu.Lock()
	if q.epoch != epoch {
		q.mu.Unlock()
		return nil // Session was reset while in flight; discard.
	}
	q.session = updated
	q.current = nil
	complete := updated.IsComplete
	var fire func([]domain.QuestionnaireResponse)
	var responses []domain.QuestionnaireResponse
	if complete && !q.completed {
		q.completed = true
		fire = q.onComplete
		responses = append(responses, updated.Responses...)
	}
	q.mu.Unlock()

	if complete {
		if fire != nil {
			fire(responses)
		}
		return nil
	}
	return q.fetchNextQuestion(ctx, epoch)
}

// ForceComplete ends the session early. Available only at or above the
// completion threshold; the server decides whether early completion is
// acceptable.
func (q *QuestionnaireService) ForceComplete(ctx context.Context) error {
	q.mu.Lock()
	if q.session == nil {
		q.mu.Unlock()
		return domain.ErrSessionNotInitialized
	}
	if !q.session.CanForceComplete() {
		q.mu.Unlock()
		return domain.ErrCompletionTooLow
	}
	epoch := q.epoch
	projectID, sessionID := q.projectID, q.session.ID
	q.mu.Unlock()

	updated, err := q.api.CompleteSession(ctx, projectID, sessionID)
	if err != nil {
		return fmt.Errorf("complete session: %w", err)
	}

	q.mu.Lock()
	if q.epoch != epoch {
		q.mu.Unlock()
		return nil
	}
	q.session = updated
	q.current = nil
	var fire func([]domain.QuestionnaireResponse)
	var responses []domain.QuestionnaireResponse
	if updated.IsComplete && !q.completed {
		q.completed = true
		fire = q.onComplete
		responses = append(responses, updated.Responses...)
	}
	q.mu.Unlock()

	if fire != nil {
		fire(responses)
	}
	return nil
}

// EditResponse rewrites a past answer out-of-band during review.
// The local list is reconciled by key-replace under a fresh timestamp.
func (q *QuestionnaireService) EditResponse(ctx context.Context, questionID string, newAnswer any) error {
	q.mu.Lock()
	if q.session == nil {
		q.mu.Unlock()
		return domain.ErrSessionNotInitialized
	}
	epoch := q.epoch
	projectID, sessionID := q.projectID, q.session.ID
	q.mu.Unlock()

	resp := domain.QuestionnaireResponse{
		QuestionID: questionID,
		Answer:     newAnswer,
		Timestamp:  time.Now(),
	}

	updated, err := q.api.UpdateResponse(ctx, projectID, sessionID, resp)
	if err != nil {
		return fmt.Errorf("update response: %w", err)
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.epoch != epoch {
		return nil
	}
	q.session = updated
	q.session.ReplaceResponse(resp)
	return nil
}

// Reset abandons the cached session. Responses from requests already in
// flight are discarded when they land.
func (q *QuestionnaireService) Reset() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.epoch++
	q.session = nil
	q.current = nil
	q.completed = false
	q.projectID = ""
}

// OnComplete registers the completion callback.
func (q *QuestionnaireService) OnComplete(fn func(responses []domain.QuestionnaireResponse)) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.onComplete = fn
}

// fetchNextQuestion asks the server for the next question and pre-fills
// any stored prior answer. Responses are matched to questions strictly by
// question id; the server's index drives progress display only, so the
// two may diverge (e.g. after an edit) without being an error.
func (q *QuestionnaireService) fetchNextQuestion(ctx context.Context, epoch uint64) error {
	q.mu.Lock()
	if q.session == nil || q.epoch != epoch {
		q.mu.Unlock()
		return nil
	}
	projectID, sessionID := q.projectID, q.session.ID
	q.mu.Unlock()

	next, err := q.api.RequestNextQuestion(ctx, projectID, sessionID)
	if err != nil {
		return fmt.Errorf("next question: %w", err)
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.epoch != epoch {
		return nil // Stale; the session moved on without us.
	}

	active := &driving.ActiveQuestion{
		Question:    next.Question,
		Reasoning:   next.Reasoning,
		AIGenerated: next.AIGenerated,
	}
	if prior, ok := q.session.ResponseFor(next.Question.ID); ok {
		active.PriorAnswer = prior.Answer
	}
	q.current = active
	return nil
}
