package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/icstools/icsmerge/internal/processors"
)

var keepProps []string

var keepCmd = &cobra.Command{
	Use:   "keep [file...]",
	Short: "Merge and keep only the listed event properties",
	Long: `Merges all inputs, then drops every event property that is not in
the listed set. The complement of the remove command.`,
	RunE: runKeep,
}

func init() {
	keepCmd.Flags().StringSliceVarP(&keepProps, "prop", "p", nil, "Property name to keep (repeatable)")
	rootCmd.AddCommand(keepCmd)
}

func runKeep(cmd *cobra.Command, args []string) error {
	if len(keepProps) == 0 {
		return errors.New("at least one --prop is required")
	}
	return runMerge(cmd, args, processors.NewKeepProperties(keepProps))
}
