package item

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chmielowski/baggage/internal/cli"
	"github.com/chmielowski/baggage/internal/cli/styles"
)

// ListCmd returns the list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List items and packing progress",
		Long: `List every item on the packing list with its packed state.

Examples:
  baggage list
  baggage list --json
  baggage list --quiet   # one ID per line`,
		Args: cli.ExactArgs(0),
		RunE: runList,
	}

	addOutputFlags(cmd)
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	formatter := newFormatter(cmd)
	out := cmd.OutOrStdout()

	return withCLI(cmd, formatter, func(ctx context.Context, c *cli.CLI) error {
		items, err := c.App.ItemService.ListItems(ctx)
		if err != nil {
			return err
		}
		stats, err := c.App.ItemService.Stats(ctx)
		if err != nil {
			return err
		}

		if formatter.Quiet {
			for _, it := range items {
				fmt.Fprintf(out, "%d\n", it.ID)
			}
			return nil
		}

		if formatter.JSON {
			return json.NewEncoder(out).Encode(map[string]interface{}{
				"success": true,
				"items":   items,
				"stats":   stats,
			})
		}

		if len(items) == 0 {
			fmt.Fprintln(out, styles.SubtitleStyle.Render("Nothing to pack yet"))
			return nil
		}

		fmt.Fprintln(out, styles.TitleStyle.Render(
			fmt.Sprintf("Packed %d of %d (%d%%)", stats.Packed, stats.Total, stats.Progress)))
		for _, it := range items {
			fmt.Fprintf(out, "  %s %s %s\n",
				styles.RenderCheckbox(it.IsPacked),
				styles.SubtitleStyle.Render(fmt.Sprintf("%3d", it.ID)),
				styles.ValueStyle.Render(it.Name))
		}
		return nil
	})
}
