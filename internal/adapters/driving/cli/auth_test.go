package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthCmd_HasSubcommands(t *testing.T) {
	commands := authCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "login")
	assert.Contains(t, commandNames, "status")
	assert.Contains(t, commandNames, "logout")
}

func TestAuthLoginCmd_TokenFlag(t *testing.T) {
	svcs, cleanup := setupTestServices(t)
	defer cleanup()
	defer func() { authLoginToken = "" }()

	out, err := execute(t, "auth", "login", "--token", "pat-secret-token")

	require.NoError(t, err)
	assert.Contains(t, out, "Token saved.")
	assert.Equal(t, "pat", svcs.config.GetString("auth.method"))
	assert.Equal(t, "pat-secret-token", svcs.config.GetString("auth.token"))
}

func TestAuthLoginCmd_PromptsFromStdin(t *testing.T) {
	svcs, cleanup := setupTestServices(t)
	defer cleanup()

	rootCmd.SetIn(strings.NewReader("pat-piped-token\n"))
	defer rootCmd.SetIn(nil)

	out, err := execute(t, "auth", "login")

	require.NoError(t, err)
	assert.Contains(t, out, "Token saved.")
	assert.Equal(t, "pat-piped-token", svcs.config.GetString("auth.token"))
}

func TestAuthStatusCmd_NotAuthenticated(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	out, err := execute(t, "auth", "status")

	require.NoError(t, err)
	assert.Contains(t, out, "Not authenticated")
}

func TestAuthStatusCmd_Authenticated(t *testing.T) {
	svcs, cleanup := setupTestServices(t)
	defer cleanup()

	require.NoError(t, svcs.config.Set("auth.token", "pat-secret-token"))

	out, err := execute(t, "auth", "status")

	require.NoError(t, err)
	assert.Contains(t, out, "Authenticated.")
}

func TestAuthLogoutCmd_ClearsCredentials(t *testing.T) {
	svcs, cleanup := setupTestServices(t)
	defer cleanup()

	require.NoError(t, svcs.config.Set("auth.method", "pat"))
	require.NoError(t, svcs.config.Set("auth.token", "pat-secret-token"))

	out, err := execute(t, "auth", "logout")

	require.NoError(t, err)
	assert.Contains(t, out, "Logged out.")
	assert.Empty(t, svcs.config.GetString("auth.token"))
}
