package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/chmielowski/baggage/internal/cli"
	"github.com/chmielowski/baggage/internal/cli/item"
	"github.com/chmielowski/baggage/internal/launcher"
)

// NewRootCmd builds the baggage command tree. Without a subcommand it opens the TUI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "baggage",
		Short: "Baggage - a packing list for your next trip",
		Long: `Baggage keeps track of what you still need to pack.

Run without arguments to open the interactive list, or use the subcommands
to script it.`,
		Args:          cli.ExactArgs(0),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch(cmd.Context())
		},
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return cli.UsageError(err)
	})

	rootCmd.AddCommand(item.Commands()...)
	return rootCmd
}

// Execute runs the root command with ctx
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}
