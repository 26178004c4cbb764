// Package cli defines the cobra command tree for rentalops.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var flagOutput string

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "rentalops",
		Short:         "Owner statements for managed rental properties",
		Long:          "Run the rental-ops API server and manage monthly owner statements from the command line.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagOutput, "output", "text", "output format (text|json)")

	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newStatementsCmd(),
		newSeedAdminCmd(),
	)

	return root
}

// isJSON returns true if the --output flag is set to json.
func isJSON() bool {
	return flagOutput == "json"
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}
