// Package cli provides the cobra command tree for brix.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/brixlabs/brix-cli/internal/core/ports/driven"
	"github.com/brixlabs/brix-cli/internal/core/ports/driving"
	"github.com/brixlabs/brix-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services wired in by cmd/brix before Execute.
var (
	wizardService       driving.WizardController
	questionnaireEngine driving.QuestionnaireEngine
	generationTracker   driving.GenerationTracker
	documentManager     driving.DocumentManager
	generationAPI       driven.GenerationAPI
	configStore         driven.ConfigStore
	tokenProvider       driven.TokenProvider
)

// verbose enables debug logging.
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "brix",
	Short: "Brix - guided project intake for the renovation marketplace",
	Long: `Brix drives a renovation project from first address entry to a
generated Scope of Work, from the terminal.

Typical flow:
  brix auth login                 # store your marketplace token
  brix tui                        # interactive intake wizard
  brix questionnaire run          # answer the adaptive questionnaire
  brix sow generate               # generate and track the Scope of Work

Every intake edit is persisted locally, so an interrupted session
resumes where it left off.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

// Config carries the services the commands depend on.
type Config struct {
	Wizard        driving.WizardController
	Questionnaire driving.QuestionnaireEngine
	Tracker       driving.GenerationTracker
	Documents     driving.DocumentManager
	GenerationAPI driven.GenerationAPI
	ConfigStore   driven.ConfigStore
	Tokens        driven.TokenProvider
}

// SetConfig wires services into the command tree.
func SetConfig(cfg *Config) {
	if cfg == nil {
		return
	}
	wizardService = cfg.Wizard
	questionnaireEngine = cfg.Questionnaire
	generationTracker = cfg.Tracker
	documentManager = cfg.Documents
	generationAPI = cfg.GenerationAPI
	configStore = cfg.ConfigStore
	tokenProvider = cfg.Tokens
}

// SetVersion sets the reported version string.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
