// Package cli implements journalctl, the command line client for the journal
// entry API.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/SscSPs/journal_entry_store/internal/core/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootOptions holds global flags for all commands. Each flag can also be set
// with a JOURNAL_ prefixed environment variable, e.g. JOURNAL_SERVER.
type RootOptions struct {
	Server    string
	Keypair   string
	ProgramID string
}

// DefaultServer is the API root used when --server is not given.
const DefaultServer = "http://localhost:8080/api/v1"

func defaultKeypairPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "journal-keypair.json"
	}
	return filepath.Join(home, ".config", "journal", "id.json")
}

// NewRootCommand creates the root command for journalctl.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	v := viper.New()
	v.SetEnvPrefix("JOURNAL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "journalctl",
		Short: "Journal entry store client",
		Long: `Create, update, read and delete journal entries owned by an ed25519 keypair.

Every entry lives at an address derived from its title and the owner key.
Creating an entry moves its storage deposit out of the owner's wallet and
deleting it pays the deposit back.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.Server = v.GetString("server")
			opts.Keypair = v.GetString("keypair")
			opts.ProgramID = v.GetString("program-id")
			if _, err := domain.ParsePublicKey(opts.ProgramID); err != nil {
				return fmt.Errorf("invalid --program-id: %w", err)
			}
			return nil
		},
	}

	// Global flags
	flags := cmd.PersistentFlags()
	flags.String("server", DefaultServer, "API root URL (env JOURNAL_SERVER)")
	flags.String("keypair", defaultKeypairPath(), "owner keypair file (env JOURNAL_KEYPAIR)")
	flags.String("program-id", domain.DefaultProgramID, "program id used to derive entry addresses (env JOURNAL_PROGRAM_ID)")
	for _, name := range []string{"server", "keypair", "program-id"} {
		_ = v.BindPFlag(name, flags.Lookup(name))
	}

	// Add subcommands
	cmd.AddCommand(NewKeygenCommand(opts))
	cmd.AddCommand(NewPubkeyCommand(opts))
	cmd.AddCommand(NewAddressCommand(opts))
	cmd.AddCommand(NewLoginCommand(opts))
	cmd.AddCommand(NewCreateCommand(opts))
	cmd.AddCommand(NewUpdateCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))
	cmd.AddCommand(NewGetCommand(opts))
	cmd.AddCommand(NewBalanceCommand(opts))
	cmd.AddCommand(NewAirdropCommand(opts))

	return cmd
}

// client loads the keypair and builds an API client.
func (o *RootOptions) client() (*Client, error) {
	kp, err := LoadKeypair(o.Keypair)
	if err != nil {
		return nil, err
	}
	return NewClient(o.Server, kp, nil)
}

// printJSON writes v indented to w.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
