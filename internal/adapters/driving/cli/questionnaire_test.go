package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brixlabs/brix-cli/internal/core/domain"
	"github.com/brixlabs/brix-cli/internal/core/ports/driving"
)

func TestQuestionnaireCmd_Use(t *testing.T) {
	assert.Equal(t, "questionnaire", questionnaireCmd.Use)
	assert.Contains(t, questionnaireCmd.Aliases, "q")
}

func TestQuestionnaireRunCmd_RequiresProject(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()
	defer func() { questionnaireProjectID = "" }()

	_, err := execute(t, "questionnaire", "run")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--project is required")
}

func TestQuestionnaireRunCmd_AlreadyComplete(t *testing.T) {
	svcs, cleanup := setupTestServices(t)
	defer cleanup()
	defer func() { questionnaireProjectID = "" }()

	svcs.questionnaire.session = domain.QuestionnaireSession{
		ID:                   "sess-1",
		IsComplete:           true,
		CompletionPercentage: 100,
	}

	out, err := execute(t, "questionnaire", "run", "--project", "proj-1")

	require.NoError(t, err)
	assert.Equal(t, "proj-1", svcs.questionnaire.initCalled)
	assert.Contains(t, out, "already complete")
}

func TestQuestionnaireRunCmd_AnswersQuestion(t *testing.T) {
	svcs, cleanup := setupTestServices(t)
	defer cleanup()
	defer func() { questionnaireProjectID = "" }()

	svcs.questionnaire.session = domain.QuestionnaireSession{
		ID:                   "sess-1",
		CompletionPercentage: 40,
	}
	svcs.questionnaire.active = &driving.ActiveQuestion{
		Question: domain.Question{
			ID:       "q-1",
			Text:     "How many bedrooms do you want?",
			Required: true,
		},
		Reasoning: "Bedroom count drives the structural design.",
	}

	rootCmd.SetIn(strings.NewReader("three\n"))
	defer rootCmd.SetIn(nil)

	out, err := execute(t, "questionnaire", "run", "--project", "proj-1")

	require.NoError(t, err)
	assert.Contains(t, out, "How many bedrooms do you want? (required)")
	assert.Contains(t, out, "Why: Bedroom count drives the structural design.")
	assert.Contains(t, out, "Recorded - 100% complete.")
	assert.Equal(t, "three", svcs.questionnaire.submitted["q-1"])
}

func TestQuestionnaireRunCmd_QuitStopsRun(t *testing.T) {
	svcs, cleanup := setupTestServices(t)
	defer cleanup()
	defer func() { questionnaireProjectID = "" }()

	svcs.questionnaire.session = domain.QuestionnaireSession{ID: "sess-1"}
	svcs.questionnaire.active = &driving.ActiveQuestion{
		Question: domain.Question{ID: "q-1", Text: "First question?"},
	}

	rootCmd.SetIn(strings.NewReader("/quit\n"))
	defer rootCmd.SetIn(nil)

	out, err := execute(t, "questionnaire", "run", "--project", "proj-1")

	require.NoError(t, err)
	assert.Contains(t, out, "Stopped. Rerun to resume.")
	assert.Empty(t, svcs.questionnaire.submitted)
}

func TestQuestionnaireRunCmd_FinishBelowThreshold(t *testing.T) {
	svcs, cleanup := setupTestServices(t)
	defer cleanup()
	defer func() { questionnaireProjectID = "" }()

	svcs.questionnaire.session = domain.QuestionnaireSession{
		ID:                   "sess-1",
		CompletionPercentage: 60,
	}
	svcs.questionnaire.active = &driving.ActiveQuestion{
		Question: domain.Question{ID: "q-1", Text: "First question?"},
	}
	svcs.questionnaire.forceErr = domain.ErrCompletionTooLow

	rootCmd.SetIn(strings.NewReader("/finish\n/quit\n"))
	defer rootCmd.SetIn(nil)

	out, err := execute(t, "questionnaire", "run", "--project", "proj-1")

	require.NoError(t, err)
	assert.Contains(t, out, "Cannot finish yet: 60% complete, need 80%.")
}

func TestQuestionnaireStatusCmd_PrintsSession(t *testing.T) {
	svcs, cleanup := setupTestServices(t)
	defer cleanup()
	defer func() { questionnaireProjectID = "" }()

	svcs.questionnaire.session = domain.QuestionnaireSession{
		ID:                   "sess-1",
		CompletionPercentage: 40,
		Responses: []domain.QuestionnaireResponse{
			{QuestionID: "q-1", Answer: "three"},
		},
	}

	out, err := execute(t, "questionnaire", "status", "--project", "proj-1")

	require.NoError(t, err)
	assert.Contains(t, out, "sess-1")
	assert.Contains(t, out, "40%")
	assert.Contains(t, out, "Answers:    1")
	assert.Contains(t, out, "in progress")
}

func TestQuestionnaireEditCmd_RewritesAnswer(t *testing.T) {
	svcs, cleanup := setupTestServices(t)
	defer cleanup()
	defer func() { questionnaireProjectID = "" }()

	out, err := execute(t, "questionnaire", "edit", "q-1", "four", "--project", "proj-1")

	require.NoError(t, err)
	assert.Contains(t, out, "Answer updated.")
	assert.Equal(t, "four", svcs.questionnaire.edited["q-1"])
}
