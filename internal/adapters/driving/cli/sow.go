package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/brixlabs/brix-cli/internal/core/domain"
)

var sowCmd = &cobra.Command{
	Use:   "sow",
	Short: "Generate and fetch the Scope of Work",
	Long: `Generate the Scope of Work for a project and follow the job to
completion.

Generation runs server-side; "generate" starts the job and polls status
until the document is ready, printing stage and time-remaining updates.
Transient poll failures are absorbed and retried; the run only fails
after four consecutive misses.`,
}

var sowGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Start generation and track it to completion",
	RunE:  runSowGenerate,
}

var sowStatusCmd = &cobra.Command{
	Use:   "status [sow-id]",
	Short: "Show a generation job's current state",
	Args:  cobra.ExactArgs(1),
	RunE:  runSowStatus,
}

var sowShowCmd = &cobra.Command{
	Use:   "show [sow-id]",
	Short: "Print a finished Scope of Work",
	Args:  cobra.ExactArgs(1),
	RunE:  runSowShow,
}

// sowProjectID selects the project for all subcommands.
var sowProjectID string

func init() {
	sowCmd.PersistentFlags().StringVar(&sowProjectID, "project", "", "Project ID (required)")

	sowCmd.AddCommand(sowGenerateCmd)
	sowCmd.AddCommand(sowStatusCmd)
	sowCmd.AddCommand(sowShowCmd)
	rootCmd.AddCommand(sowCmd)
}

func runSowGenerate(cmd *cobra.Command, _ []string) error {
	if generationTracker == nil || generationAPI == nil {
		return errors.New("generation service not configured")
	}
	if sowProjectID == "" {
		return errors.New("--project is required")
	}

	ctx := cmd.Context()

	start, err := generationAPI.StartGeneration(ctx, sowProjectID)
	if err != nil {
		return fmt.Errorf("start generation: %w", err)
	}
	cmd.Printf("Generation started (sow %s).\n", start.SowID)

	handle := generationTracker.Start(ctx, sowProjectID, start.SowID)
	defer handle.Cancel()

	for update := range handle.Updates() {
		if update.Reconnecting {
			cmd.Printf("Connection lost, retrying (attempt %d)...\n", update.Attempt)
			continue
		}
		cmd.Printf("%3.0f%%  %s  (%s)\n", update.Progress, update.Stage, update.TimeRemaining)
	}

	<-handle.Done()
	sow, err := handle.Result()
	if err != nil {
		return fmt.Errorf("generation: %w", err)
	}

	cmd.Printf("\nScope of Work ready: %s\n", sow.Title)
	cmd.Printf("View it with: brix sow show %s --project %s\n", sow.ID, sowProjectID)
	return nil
}

func runSowStatus(cmd *cobra.Command, args []string) error {
	if generationAPI == nil {
		return errors.New("generation service not configured")
	}
	if sowProjectID == "" {
		return errors.New("--project is required")
	}

	job, err := generationAPI.GetJobStatus(cmd.Context(), sowProjectID, args[0])
	if err != nil {
		return fmt.Errorf("job status: %w", err)
	}

	cmd.Printf("Status:    %s\n", job.Status)
	cmd.Printf("Progress:  %.0f%%\n", job.Progress)
	if job.Status == domain.GenerationStatusGenerating {
		cmd.Printf("Stage:     %s\n", domain.StageFor(job.Progress))
		cmd.Printf("Remaining: %s\n", domain.TimeRemainingText(job.EstimatedCompletion, time.Now()))
	}
	return nil
}

func runSowShow(cmd *cobra.Command, args []string) error {
	if generationAPI == nil {
		return errors.New("generation service not configured")
	}
	if sowProjectID == "" {
		return errors.New("--project is required")
	}

	sow, err := generationAPI.GetArtifact(cmd.Context(), sowProjectID, args[0])
	if err != nil {
		return fmt.Errorf("fetch scope of work: %w", err)
	}

	cmd.Printf("# %s\n\n", sow.Title)
	if sow.Summary != "" {
		cmd.Printf("%s\n\n", sow.Summary)
	}
	for _, section := range sow.Sections {
		cmd.Printf("## %s\n\n%s\n\n", section.Title, section.Content)
	}
	return nil
}
