package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/brixlabs/brix-cli/internal/adapters/driven/auth"
	"github.com/brixlabs/brix-cli/internal/adapters/driven/config/file"
	"github.com/brixlabs/brix-cli/internal/adapters/driven/storage/memory"
	"github.com/brixlabs/brix-cli/internal/core/domain"
	"github.com/brixlabs/brix-cli/internal/core/ports/driven"
	"github.com/brixlabs/brix-cli/internal/core/ports/driving"
	"github.com/brixlabs/brix-cli/internal/core/services"
)

// mockQuestionnaire is a scripted QuestionnaireEngine.
type mockQuestionnaire struct {
	session    domain.QuestionnaireSession
	active     *driving.ActiveQuestion
	initErr    error
	submitErr  error
	editErr    error
	forceErr   error
	initCalled string
	submitted  map[string]any
	edited     map[string]any
	onComplete func(responses []domain.QuestionnaireResponse)
}

func newMockQuestionnaire() *mockQuestionnaire {
	return &mockQuestionnaire{
		submitted: make(map[string]any),
		edited:    make(map[string]any),
	}
}

func (m *mockQuestionnaire) Initialize(_ context.Context, projectID string) error {
	m.initCalled = projectID
	return m.initErr
}

func (m *mockQuestionnaire) Session() (domain.QuestionnaireSession, error) {
	return m.session, nil
}

func (m *mockQuestionnaire) CurrentQuestion() (*driving.ActiveQuestion, error) {
	if m.active == nil {
		return nil, domain.ErrNoActiveQuestion
	}
	return m.active, nil
}

func (m *mockQuestionnaire) SubmitAnswer(_ context.Context, questionID string, answer any) error {
	if m.submitErr != nil {
		return m.submitErr
	}
	m.submitted[questionID] = answer
	m.session.IsComplete = true
	m.session.CompletionPercentage = 100
	m.active = nil
	return nil
}

func (m *mockQuestionnaire) ForceComplete(_ context.Context) error {
	return m.forceErr
}

func (m *mockQuestionnaire) EditResponse(_ context.Context, questionID string, newAnswer any) error {
	if m.editErr != nil {
		return m.editErr
	}
	m.edited[questionID] = newAnswer
	return nil
}

func (m *mockQuestionnaire) Reset() {}

func (m *mockQuestionnaire) OnComplete(fn func(responses []domain.QuestionnaireResponse)) {
	m.onComplete = fn
}

// mockDocuments is a scripted DocumentManager.
type mockDocuments struct {
	docs       []domain.ProjectDocument
	content    []byte
	listErr    error
	deleted    []string
	visibility map[string]domain.DocumentVisibility
}

func newMockDocuments() *mockDocuments {
	return &mockDocuments{visibility: make(map[string]domain.DocumentVisibility)}
}

func (m *mockDocuments) Upload(_ context.Context, _ string, _ domain.LocalDocument) (*domain.ProjectDocument, error) {
	return nil, nil
}

func (m *mockDocuments) List(_ context.Context, _ string) ([]domain.ProjectDocument, error) {
	return m.docs, m.listErr
}

func (m *mockDocuments) Delete(_ context.Context, documentID string) error {
	m.deleted = append(m.deleted, documentID)
	return nil
}

func (m *mockDocuments) SetVisibility(_ context.Context, documentID string, visibility domain.DocumentVisibility) error {
	m.visibility[documentID] = visibility
	return nil
}

func (m *mockDocuments) Download(_ context.Context, _ string) ([]byte, error) {
	return m.content, nil
}

// mockGenerationAPI serves scripted generation endpoints.
type mockGenerationAPI struct {
	start    *driven.GenerationStart
	startErr error
	job      *domain.GenerationJob
	jobErr   error
	artifact *domain.ScopeOfWork
	artErr   error
}

func (m *mockGenerationAPI) StartGeneration(_ context.Context, _ string) (*driven.GenerationStart, error) {
	return m.start, m.startErr
}

func (m *mockGenerationAPI) GetJobStatus(_ context.Context, _, _ string) (*domain.GenerationJob, error) {
	return m.job, m.jobErr
}

func (m *mockGenerationAPI) GetArtifact(_ context.Context, _, _ string) (*domain.ScopeOfWork, error) {
	return m.artifact, m.artErr
}

// doneHandle is a tracking handle that has already finished.
type doneHandle struct {
	updates  chan driving.TrackUpdate
	done     chan struct{}
	artifact *domain.ScopeOfWork
	err      error
}

func newDoneHandle(artifact *domain.ScopeOfWork, err error) *doneHandle {
	h := &doneHandle{
		updates:  make(chan driving.TrackUpdate, 4),
		done:     make(chan struct{}),
		artifact: artifact,
		err:      err,
	}
	h.updates <- driving.TrackUpdate{
		Status:        domain.GenerationStatusGenerating,
		Progress:      50,
		Stage:         domain.StageFor(50),
		TimeRemaining: "about 5 minutes",
	}
	close(h.updates)
	close(h.done)
	return h
}

func (h *doneHandle) Updates() <-chan driving.TrackUpdate  { return h.updates }
func (h *doneHandle) Done() <-chan struct{}                { return h.done }
func (h *doneHandle) Result() (*domain.ScopeOfWork, error) { return h.artifact, h.err }
func (h *doneHandle) Cancel()                              {}

// mockTracker hands out a prepared handle.
type mockTracker struct {
	handle driving.TrackHandle
}

func (m *mockTracker) Start(_ context.Context, _, _ string) driving.TrackHandle {
	return m.handle
}

// testServices bundles the mocks installed by setupTestServices.
type testServices struct {
	wizard        *services.WizardService
	questionnaire *mockQuestionnaire
	documents     *mockDocuments
	generation    *mockGenerationAPI
	config        *file.ConfigStore
}

// setupTestServices wires fresh mock services into the command tree and
// returns them with a cleanup restoring the previous wiring.
func setupTestServices(t *testing.T) (*testServices, func()) {
	t.Helper()

	wizard, err := services.NewWizardService(
		context.Background(), domain.FlowStandard, memory.NewDraftStore(), nil, nil)
	require.NoError(t, err)

	cfg, err := file.NewConfigStore(t.TempDir())
	require.NoError(t, err)

	svcs := &testServices{
		wizard:        wizard,
		questionnaire: newMockQuestionnaire(),
		documents:     newMockDocuments(),
		generation: &mockGenerationAPI{
			start: &driven.GenerationStart{SowID: "sow-1", Status: domain.GenerationStatusGenerating},
			job: &domain.GenerationJob{
				SowID:               "sow-1",
				ProjectID:           "proj-1",
				Status:              domain.GenerationStatusGenerating,
				Progress:            45,
				EstimatedCompletion: time.Now().Add(10 * time.Minute),
			},
			artifact: &domain.ScopeOfWork{
				ID:        "sow-1",
				ProjectID: "proj-1",
				Title:     "Loft Conversion SoW",
				Summary:   "Full scope for the loft conversion.",
				Sections: []domain.SowSection{
					{Title: "Structural works", Content: "Steel beams and floor joists."},
				},
			},
		},
		config: cfg,
	}

	prev := &Config{
		Wizard:        wizardService,
		Questionnaire: questionnaireEngine,
		Tracker:       generationTracker,
		Documents:     documentManager,
		GenerationAPI: generationAPI,
		ConfigStore:   configStore,
		Tokens:        tokenProvider,
	}

	SetConfig(&Config{
		Wizard:        svcs.wizard,
		Questionnaire: svcs.questionnaire,
		Tracker:       &mockTracker{handle: newDoneHandle(svcs.generation.artifact, nil)},
		Documents:     svcs.documents,
		GenerationAPI: svcs.generation,
		ConfigStore:   cfg,
		Tokens:        auth.NewPATProvider(cfg),
	})

	return svcs, func() { SetConfig(prev) }
}

// execute runs the root command with args and captures its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
