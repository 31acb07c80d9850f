package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/chmielowski/baggage/internal/types"
)

// UsageError marks err as a usage problem (exit code 2)
func UsageError(err error) error {
	return &ExitCodeError{Code: ExitUsage, Err: err}
}

// ExactArgs is cobra.ExactArgs reporting failures as usage errors
func ExactArgs(n int) cobra.PositionalArgs {
	check := cobra.ExactArgs(n)
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return UsageError(err)
		}
		return nil
	}
}

// ParseItemID parses a positional item ID argument
func ParseItemID(arg string) (types.ItemID, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, UsageError(fmt.Errorf("invalid item id %q: must be a number", arg))
	}
	return types.ItemIDFromInt(n), nil
}
