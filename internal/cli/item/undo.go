package item

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chmielowski/baggage/internal/cli"
)

// UndoCmd returns the undo subcommand
func UndoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "undo",
		Short: "Restore the most recently deleted item",
		Args:  cli.ExactArgs(0),
		RunE:  runUndo,
	}
	addOutputFlags(cmd)
	return cmd
}

func runUndo(cmd *cobra.Command, args []string) error {
	formatter := newFormatter(cmd)

	return withCLI(cmd, formatter, func(ctx context.Context, c *cli.CLI) error {
		restored, err := c.App.ItemService.UndoLastDelete(ctx)
		if err != nil {
			return err
		}
		return formatter.Success(restored, fmt.Sprintf("Restored %q", restored.Name))
	})
}
