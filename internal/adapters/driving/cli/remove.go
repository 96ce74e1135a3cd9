package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/icstools/icsmerge/internal/processors"
)

var removeProps []string

var removeCmd = &cobra.Command{
	Use:   "remove [file...]",
	Short: "Merge and strip properties from every event",
	Long: `Merges all inputs, then removes every listed property from each
event. Other properties keep their order and parameters.`,
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().StringSliceVarP(&removeProps, "prop", "p", nil, "Property name to remove (repeatable)")
	rootCmd.AddCommand(removeCmd)
}

func runRemove(cmd *cobra.Command, args []string) error {
	if len(removeProps) == 0 {
		return errors.New("at least one --prop is required")
	}
	return runMerge(cmd, args, processors.NewRemoveProperties(removeProps))
}
