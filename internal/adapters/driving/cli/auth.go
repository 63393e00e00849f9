package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage marketplace credentials",
	Long: `Store and inspect the credentials used to call the marketplace API.

Brix authenticates with a Personal Access Token created in your
marketplace account settings. The token is stored in ~/.brix/config.toml
with owner-only permissions.

Examples:
  brix auth login              # prompted, input hidden
  brix auth login --token xxx  # non-interactive (shell history caveat)
  brix auth status
  brix auth logout`,
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store a Personal Access Token",
	RunE:  runAuthLogin,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether credentials are configured",
	RunE:  runAuthStatus,
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove stored credentials",
	RunE:  runAuthLogout,
}

// authLoginToken allows non-interactive login.
var authLoginToken string

func init() {
	authLoginCmd.Flags().StringVar(&authLoginToken, "token", "", "Token value (omit to be prompted)")

	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authLogoutCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthLogin(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	token := strings.TrimSpace(authLoginToken)
	if token == "" {
		var err error
		token, err = promptToken(cmd)
		if err != nil {
			return err
		}
	}
	if token == "" {
		return errors.New("no token provided")
	}

	if err := configStore.Set("auth.method", "pat"); err != nil {
		return fmt.Errorf("save auth method: %w", err)
	}
	if err := configStore.Set("auth.token", token); err != nil {
		return fmt.Errorf("save token: %w", err)
	}

	cmd.Println("Token saved.")
	return nil
}

// promptToken reads the token without echoing when stdin is a terminal.
func promptToken(cmd *cobra.Command) (string, error) {
	cmd.Print("Personal Access Token: ")

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		cmd.Println()
		if err != nil {
			return "", fmt.Errorf("read token: %w", err)
		}
		return strings.TrimSpace(string(raw)), nil
	}

	// Piped input (tests, scripts).
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func runAuthStatus(cmd *cobra.Command, _ []string) error {
	if tokenProvider == nil {
		return errors.New("token provider not configured")
	}

	if tokenProvider.IsAuthenticated() {
		cmd.Println("Authenticated.")
		return nil
	}
	cmd.Println("Not authenticated. Run: brix auth login")
	return nil
}

func runAuthLogout(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	if err := configStore.Set("auth.token", ""); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	if err := configStore.Set("auth.method", ""); err != nil {
		return fmt.Errorf("clear auth method: %w", err)
	}

	cmd.Println("Logged out.")
	return nil
}
