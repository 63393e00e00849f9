// Command brix is the terminal client for the Brix renovation marketplace:
// guided project intake, adaptive questionnaire and Scope-of-Work
// generation tracking.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/brixlabs/brix-cli/internal/adapters/driven/api"
	"github.com/brixlabs/brix-cli/internal/adapters/driven/auth"
	"github.com/brixlabs/brix-cli/internal/adapters/driven/blob"
	"github.com/brixlabs/brix-cli/internal/adapters/driven/config/file"
	"github.com/brixlabs/brix-cli/internal/adapters/driven/staging"
	"github.com/brixlabs/brix-cli/internal/adapters/driven/storage/sqlite"
	"github.com/brixlabs/brix-cli/internal/adapters/driving/cli"
	"github.com/brixlabs/brix-cli/internal/core/domain"
	"github.com/brixlabs/brix-cli/internal/core/services"
	"github.com/brixlabs/brix-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}

	tokens := auth.NewTokenProvider(configStore)

	client, err := api.NewClient(api.Config{
		BaseURL: configStore.GetString("api.base_url"),
		Tokens:  tokens,
	})
	if err != nil {
		return fmt.Errorf("create api client: %w", err)
	}

	store, err := sqlite.NewStore("")
	if err != nil {
		return fmt.Errorf("open draft store: %w", err)
	}
	defer store.Close() //nolint:errcheck // Best-effort close on exit

	documents := services.NewDocumentService(client, blob.NewTransfer())

	flow := domain.FlowStandard
	if configStore.GetString("intake.flow") == string(domain.FlowAssessed) {
		flow = domain.FlowAssessed
	}

	wizard, err := services.NewWizardService(ctx, flow, store.DraftStore(), client, documents)
	if err != nil {
		return fmt.Errorf("create wizard: %w", err)
	}

	questionnaire := services.NewQuestionnaireService(client)

	tracker := services.NewGenerationService(client)
	if secs := configStore.GetInt("generation.poll_interval_seconds"); secs > 0 {
		tracker = services.NewGenerationServiceWithInterval(client, time.Duration(secs)*time.Second)
	}

	// Auto-stage files dropped into the watch directory, when configured.
	if watchDir := configStore.GetString("staging.watch_dir"); watchDir != "" {
		watcher, err := staging.NewWatcher(watchDir, wizard)
		if err != nil {
			logger.Warn("staging watcher disabled: %v", err)
		} else {
			watcher.Start(ctx)
			defer watcher.Close() //nolint:errcheck // Best-effort close on exit
		}
	}

	cli.SetVersion(version)
	cli.SetConfig(&cli.Config{
		Wizard:        wizard,
		Questionnaire: questionnaire,
		Tracker:       tracker,
		Documents:     documents,
		GenerationAPI: client,
		ConfigStore:   configStore,
		Tokens:        tokens,
	})

	return cli.Execute()
}
