package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/brixlabs/brix-cli/internal/adapters/driving/tui"
)

var (
	tuiTrackProject string
	tuiTrackSow     string
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive intake wizard",
	Long: `Launch the interactive terminal interface for Brix.

The wizard walks through the intake steps for your renovation project,
saving every edit to the local draft as you go. With --track, it opens
the live generation progress view for an existing Scope of Work job
instead.

Controls:
  (type)      Fill the focused field
  Tab         Next field
  Enter       Save step and advance
  Esc         Previous step
  Ctrl+c      Quit`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVar(&tuiTrackProject, "project", "", "project id (with --track)")
	tuiCmd.Flags().StringVar(&tuiTrackSow, "track", "", "scope of work job id to track")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Panic recovery to get stack traces out of the alt screen.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := &tui.Ports{
		Wizard:  wizardService,
		Tracker: generationTracker,
	}

	var (
		app *tui.App
		err error
	)
	if tuiTrackSow != "" {
		if tuiTrackProject == "" {
			return fmt.Errorf("--track requires --project")
		}
		app, err = tui.NewGenerationApp(ports, tuiTrackProject, tuiTrackSow)
	} else {
		app, err = tui.NewApp(ports)
	}
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context())

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
