package cli

import (
	"io"
	"testing"

	"github.com/SscSPs/journal_entry_store/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "journalctl", cmd.Use)
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"keygen", "pubkey", "address", "login", "create", "update", "delete", "get", "balance", "airdrop"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	server := cmd.PersistentFlags().Lookup("server")
	require.NotNil(t, server)
	assert.Equal(t, DefaultServer, server.DefValue)

	programID := cmd.PersistentFlags().Lookup("program-id")
	require.NotNil(t, programID)
	assert.Equal(t, domain.DefaultProgramID, programID.DefValue)
}

func TestEnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("JOURNAL_PROGRAM_ID", "not-a-key")
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"address", "--title", "x", "--owner", domain.DefaultProgramID})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--program-id")
}
