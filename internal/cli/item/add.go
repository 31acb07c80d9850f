package item

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"charm.land/huh/v2"
	"github.com/spf13/cobra"

	"github.com/chmielowski/baggage/internal/cli"
	itemservice "github.com/chmielowski/baggage/internal/services/item"
)

// promptName asks for the item name interactively. Replaced in tests.
var promptName = func() (string, error) {
	var name string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What are you packing?").
				Placeholder("Socks").
				CharLimit(itemservice.MaxNameLength).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return itemservice.ErrEmptyName
					}
					return nil
				}).
				Value(&name),
		),
	)
	if err := form.Run(); err != nil {
		return "", err
	}
	return name, nil
}

// AddCmd returns the add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an item to the packing list",
		Long: `Add an item to the packing list. Without --name an interactive prompt asks for it.

Examples:
  baggage add --name="Socks"
  ITEM_ID=$(baggage add --name="Socks" --quiet)`,
		Args: cli.ExactArgs(0),
		RunE: runAdd,
	}

	cmd.Flags().String("name", "", "Item name")
	addOutputFlags(cmd)
	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	formatter := newFormatter(cmd)
	name, _ := cmd.Flags().GetString("name")

	if !cmd.Flags().Changed("name") {
		// Scripted output modes never prompt
		if formatter.JSON || formatter.Quiet {
			return formatter.Fail(cli.UsageError(errors.New("--name is required with --json or --quiet")))
		}
		prompted, err := promptName()
		if err != nil {
			return formatter.Fail(cli.UsageError(fmt.Errorf("reading item name: %w", err)))
		}
		name = prompted
	}

	return withCLI(cmd, formatter, func(ctx context.Context, c *cli.CLI) error {
		created, err := c.App.ItemService.CreateItem(ctx, name)
		if err != nil {
			return err
		}
		return formatter.Success(created, fmt.Sprintf("Added %q (id %d)", created.Name, created.ID))
	})
}
