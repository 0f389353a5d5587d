package cli

import (
	"fmt"

	"github.com/SscSPs/journal_entry_store/internal/core/domain"
	"github.com/SscSPs/journal_entry_store/internal/dto"
	"github.com/spf13/cobra"
)

// NewKeygenCommand creates the keygen command.
func NewKeygenCommand(rootOpts *RootOptions) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a new owner keypair",
		Long:  "Writes a new keypair to the --keypair path and prints its public key.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := GenerateKeypair()
			if err != nil {
				return err
			}
			if err := kp.Save(rootOpts.Keypair, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote keypair to %s\n", rootOpts.Keypair)
			fmt.Fprintln(cmd.OutOrStdout(), kp.Public.String())
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing keypair file")
	return cmd
}

// NewPubkeyCommand creates the pubkey command.
func NewPubkeyCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pubkey",
		Short: "Print the public key of the keypair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := LoadKeypair(rootOpts.Keypair)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), kp.Public.String())
			return nil
		},
	}
}

// NewAddressCommand creates the address command. Derivation is local and
// needs no server.
func NewAddressCommand(rootOpts *RootOptions) *cobra.Command {
	var title, owner string
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Derive the address of an entry",
		Long:  "Prints the address and bump for --title, owned by --owner or by the keypair when --owner is omitted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := domain.ValidateTitle(title); err != nil {
				return err
			}
			var ownerKey domain.PublicKey
			if owner != "" {
				var err error
				if ownerKey, err = domain.ParsePublicKey(owner); err != nil {
					return err
				}
			} else {
				kp, err := LoadKeypair(rootOpts.Keypair)
				if err != nil {
					return err
				}
				ownerKey = kp.Public
			}

			programID, err := domain.ParsePublicKey(rootOpts.ProgramID)
			if err != nil {
				return err
			}
			address, bump, err := domain.JournalEntryAddress(title, ownerKey, programID)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), dto.DerivedAddressResponse{Address: address.String(), Bump: bump})
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "entry title")
	cmd.Flags().StringVar(&owner, "owner", "", "base58 owner key (defaults to the keypair)")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

// NewLoginCommand creates the login command.
func NewLoginCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Obtain a bearer token for the keypair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := rootOpts.client()
			if err != nil {
				return err
			}
			resp, err := c.Login(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
}
