package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "View and change configuration",
	Long: `View and change brix configuration (~/.brix/config.toml).

Keys:
  api.base_url                      Marketplace API base URL
  staging.watch_dir                 Drop directory for auto-staging
  generation.poll_interval_seconds  SoW status poll interval

Examples:
  brix settings show
  brix settings set staging.watch_dir ~/brix-intake`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

// shownKeys are the settings listed by "settings show", in display order.
var shownKeys = []string{
	"api.base_url",
	"staging.watch_dir",
	"generation.poll_interval_seconds",
	"auth.method",
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	for _, key := range shownKeys {
		val, ok := configStore.Get(key)
		if !ok {
			cmd.Printf("%-34s (unset)\n", key)
			continue
		}
		cmd.Printf("%-34s %v\n", key, val)
	}

	if token := configStore.GetString("auth.token"); token != "" {
		cmd.Printf("%-34s %s\n", "auth.token", maskToken(token))
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, raw := args[0], args[1]

	// Preserve TOML types for non-string values.
	var value any = raw
	if n, err := strconv.Atoi(raw); err == nil {
		value = n
	} else if b, err := strconv.ParseBool(raw); err == nil {
		value = b
	}

	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}

	cmd.Printf("%s = %v\n", key, value)
	return nil
}

// maskToken hides all but the edges of a stored token.
func maskToken(token string) string {
	if len(token) <= 8 {
		return "****"
	}
	return token[:4] + "..." + token[len(token)-4:]
}
