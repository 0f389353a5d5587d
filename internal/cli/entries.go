package cli

import (
	"github.com/spf13/cobra"
)

// NewCreateCommand creates the create command.
func NewCreateCommand(rootOpts *RootOptions) *cobra.Command {
	var title, message string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a journal entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := rootOpts.client()
			if err != nil {
				return err
			}
			resp, err := c.CreateEntry(cmd.Context(), title, message)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "entry title (1-50 bytes)")
	cmd.Flags().StringVarP(&message, "message", "m", "", "entry message (1-280 bytes)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("message")
	return cmd
}

// NewUpdateCommand creates the update command.
func NewUpdateCommand(rootOpts *RootOptions) *cobra.Command {
	var title, message string
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Replace the message of a journal entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := rootOpts.client()
			if err != nil {
				return err
			}
			resp, err := c.UpdateEntry(cmd.Context(), title, message)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "entry title")
	cmd.Flags().StringVarP(&message, "message", "m", "", "new message (1-280 bytes)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("message")
	return cmd
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	var title string
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a journal entry and reclaim its deposit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := rootOpts.client()
			if err != nil {
				return err
			}
			resp, err := c.DeleteEntry(cmd.Context(), title)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "entry title")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

// NewGetCommand creates the get command. With --address it reads any
// entry account; otherwise it reads the keypair's entry with --title.
func NewGetCommand(rootOpts *RootOptions) *cobra.Command {
	var title, address string
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show a journal entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if address != "" {
				c, err := NewClient(rootOpts.Server, nil, nil)
				if err != nil {
					return err
				}
				resp, err := c.GetAccount(cmd.Context(), address)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), resp)
			}

			c, err := rootOpts.client()
			if err != nil {
				return err
			}
			resp, err := c.GetEntry(cmd.Context(), title)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "entry title")
	cmd.Flags().StringVar(&address, "address", "", "base58 entry address")
	cmd.MarkFlagsOneRequired("title", "address")
	cmd.MarkFlagsMutuallyExclusive("title", "address")
	return cmd
}
