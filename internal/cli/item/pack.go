package item

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chmielowski/baggage/internal/cli"
)

// PackCmd returns the pack subcommand
func PackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pack <id>",
		Short: "Mark an item as packed",
		Args:  cli.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetPacked(cmd, args[0], true)
		},
	}
	addOutputFlags(cmd)
	return cmd
}

// UnpackCmd returns the unpack subcommand
func UnpackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unpack <id>",
		Short: "Mark an item as not packed",
		Args:  cli.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetPacked(cmd, args[0], false)
		},
	}
	addOutputFlags(cmd)
	return cmd
}

func runSetPacked(cmd *cobra.Command, arg string, packed bool) error {
	formatter := newFormatter(cmd)

	id, err := cli.ParseItemID(arg)
	if err != nil {
		return formatter.Fail(err)
	}

	return withCLI(cmd, formatter, func(ctx context.Context, c *cli.CLI) error {
		if err := c.App.ItemService.SetPacked(ctx, id, packed); err != nil {
			return err
		}
		updated, err := c.App.ItemService.GetItem(ctx, id)
		if err != nil {
			return err
		}

		verb := "Packed"
		if !packed {
			verb = "Unpacked"
		}
		return formatter.Success(updated, fmt.Sprintf("%s %q", verb, updated.Name))
	})
}
