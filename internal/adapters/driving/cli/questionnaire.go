package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brixlabs/brix-cli/internal/core/domain"
	"github.com/brixlabs/brix-cli/internal/core/ports/driving"
)

var questionnaireCmd = &cobra.Command{
	Use:     "questionnaire",
	Aliases: []string{"q"},
	Short:   "Answer the adaptive project questionnaire",
	Long: `Run the server-adaptive questionnaire for a created project.

The server picks each next question based on earlier answers. Session
state lives server-side, so an interrupted run resumes at the same
question with your previous answer pre-filled.`,
}

var questionnaireRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Answer questions interactively until the session completes",
	Long: `Answer questions interactively until the session completes.

During the run:
  <answer>   submit the answer
  /finish    end early (needs 80% completion)
  /quit      stop; rerun to resume where you left off`,
	RunE: runQuestionnaireRun,
}

var questionnaireStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show session progress",
	RunE:  runQuestionnaireStatus,
}

var questionnaireEditCmd = &cobra.Command{
	Use:   "edit [question-id] [answer]",
	Short: "Rewrite a past answer",
	Args:  cobra.ExactArgs(2),
	RunE:  runQuestionnaireEdit,
}

// questionnaireProjectID selects the project for all subcommands.
var questionnaireProjectID string

func init() {
	questionnaireCmd.PersistentFlags().StringVar(
		&questionnaireProjectID, "project", "", "Project ID (required)")

	questionnaireCmd.AddCommand(questionnaireRunCmd)
	questionnaireCmd.AddCommand(questionnaireStatusCmd)
	questionnaireCmd.AddCommand(questionnaireEditCmd)
	rootCmd.AddCommand(questionnaireCmd)
}

//nolint:gocognit // CLI interactive loop
func runQuestionnaireRun(cmd *cobra.Command, _ []string) error {
	if questionnaireEngine == nil {
		return errors.New("questionnaire service not configured")
	}
	if questionnaireProjectID == "" {
		return errors.New("--project is required")
	}

	ctx := cmd.Context()

	questionnaireEngine.OnComplete(func(responses []domain.QuestionnaireResponse) {
		cmd.Printf("\nQuestionnaire complete - %d answers recorded.\n", len(responses))
		cmd.Println("Next: brix sow generate --project " + questionnaireProjectID)
	})

	if err := questionnaireEngine.Initialize(ctx, questionnaireProjectID); err != nil {
		return fmt.Errorf("initialize questionnaire: %w", err)
	}

	session, err := questionnaireEngine.Session()
	if err != nil {
		return err
	}
	if session.IsComplete {
		cmd.Println("Questionnaire already complete.")
		return nil
	}

	cmd.Printf("Session %s - %.0f%% complete.\n\n", session.ID, session.CompletionPercentage)

	reader := bufio.NewReader(cmd.InOrStdin())
	for {
		active, err := questionnaireEngine.CurrentQuestion()
		if err != nil {
			if errors.Is(err, domain.ErrNoActiveQuestion) {
				return nil // completed via callback
			}
			return err
		}

		printQuestion(cmd, active)

		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("read answer: %w", err)
		}
		answer := strings.TrimSpace(line)

		switch answer {
		case "/quit":
			cmd.Println("Stopped. Rerun to resume.")
			return nil
		case "/finish":
			if err := questionnaireEngine.ForceComplete(ctx); err != nil {
				if errors.Is(err, domain.ErrCompletionTooLow) {
					session, _ := questionnaireEngine.Session() //nolint:errcheck // display only
					cmd.Printf("Cannot finish yet: %.0f%% complete, need %.0f%%.\n",
						session.CompletionPercentage, domain.ForceCompleteThreshold)
					continue
				}
				return fmt.Errorf("force complete: %w", err)
			}
			return nil
		}

		if err := questionnaireEngine.SubmitAnswer(ctx, active.Question.ID, answer); err != nil {
			switch {
			case errors.Is(err, domain.ErrAnswerRequired):
				cmd.Println("This question is required.")
				continue
			case errors.Is(err, domain.ErrSubmitInFlight):
				cmd.Println("Previous answer still submitting, try again.")
				continue
			default:
				return fmt.Errorf("submit answer: %w", err)
			}
		}

		session, err := questionnaireEngine.Session()
		if err != nil {
			return err
		}
		cmd.Printf("Recorded - %.0f%% complete.\n\n", session.CompletionPercentage)
		if session.IsComplete {
			return nil
		}
	}
}

func printQuestion(cmd *cobra.Command, active *driving.ActiveQuestion) {
	q := active.Question
	if q.Required {
		cmd.Printf("%s (required)\n", q.Text)
	} else {
		cmd.Println(q.Text)
	}
	if len(q.Options) > 0 {
		cmd.Printf("Options: %s\n", strings.Join(q.Options, ", "))
	}
	if active.Reasoning != "" {
		cmd.Printf("Why: %s\n", active.Reasoning)
	}
	if active.PriorAnswer != nil {
		cmd.Printf("Previous answer: %v\n", active.PriorAnswer)
	}
	cmd.Print("> ")
}

func runQuestionnaireStatus(cmd *cobra.Command, _ []string) error {
	if questionnaireEngine == nil {
		return errors.New("questionnaire service not configured")
	}
	if questionnaireProjectID == "" {
		return errors.New("--project is required")
	}

	if err := questionnaireEngine.Initialize(cmd.Context(), questionnaireProjectID); err != nil {
		return fmt.Errorf("initialize questionnaire: %w", err)
	}

	session, err := questionnaireEngine.Session()
	if err != nil {
		return err
	}

	cmd.Printf("Session:    %s\n", session.ID)
	cmd.Printf("Progress:   %.0f%%\n", session.CompletionPercentage)
	cmd.Printf("Answers:    %d\n", len(session.Responses))
	if session.IsComplete {
		cmd.Println("Status:     complete")
	} else {
		cmd.Println("Status:     in progress")
	}
	return nil
}

func runQuestionnaireEdit(cmd *cobra.Command, args []string) error {
	if questionnaireEngine == nil {
		return errors.New("questionnaire service not configured")
	}
	if questionnaireProjectID == "" {
		return errors.New("--project is required")
	}

	if err := questionnaireEngine.Initialize(cmd.Context(), questionnaireProjectID); err != nil {
		return fmt.Errorf("initialize questionnaire: %w", err)
	}

	if err := questionnaireEngine.EditResponse(cmd.Context(), args[0], args[1]); err != nil {
		return fmt.Errorf("edit response: %w", err)
	}
	cmd.Println("Answer updated.")
	return nil
}
