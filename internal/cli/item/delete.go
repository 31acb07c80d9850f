package item

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chmielowski/baggage/internal/cli"
)

// DeleteCmd returns the delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an item",
		Long: `Delete an item by ID. The most recent delete can be reverted with "baggage undo";
deleting another item makes the previous one permanent.`,
		Args: cli.ExactArgs(1),
		RunE: runDelete,
	}
	addOutputFlags(cmd)
	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	formatter := newFormatter(cmd)

	id, err := cli.ParseItemID(args[0])
	if err != nil {
		return formatter.Fail(err)
	}

	return withCLI(cmd, formatter, func(ctx context.Context, c *cli.CLI) error {
		deleted, err := c.App.ItemService.DeleteItem(ctx, id)
		if err != nil {
			return err
		}
		return formatter.Success(deleted, fmt.Sprintf("Deleted %q (undo with: baggage undo)", deleted.Name))
	})
}
