package item

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/chmielowski/baggage/internal/cli"
)

// Commands returns every item subcommand, registered directly on the root.
func Commands() []*cobra.Command {
	return []*cobra.Command{
		ListCmd(),
		AddCmd(),
		PackCmd(),
		UnpackCmd(),
		DeleteCmd(),
		UndoCmd(),
	}
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}

func newFormatter(cmd *cobra.Command) *cli.OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &cli.OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}
}

// withCLI opens the CLI context, runs fn and closes it again.
// Errors from fn are reported through the formatter.
func withCLI(cmd *cobra.Command, formatter *cli.OutputFormatter, fn func(ctx context.Context, c *cli.CLI) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	if err := fn(ctx, cliInstance); err != nil {
		return formatter.Fail(err)
	}
	return nil
}
