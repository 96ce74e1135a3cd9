package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/icstools/icsmerge/internal/processors"
)

var limitCmd = &cobra.Command{
	Use:   "limit <count> [file...]",
	Short: "Merge and keep only the first N events",
	Long: `Merges all inputs and keeps only the first N events of the merged
result, in document order. Non-event components such as timezone
definitions are always retained.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runLimit,
}

func init() {
	rootCmd.AddCommand(limitCmd)
}

func runLimit(cmd *cobra.Command, args []string) error {
	count, err := strconv.Atoi(args[0])
	if err != nil || count < 0 {
		return fmt.Errorf("invalid event count %q", args[0])
	}
	return runMerge(cmd, args[1:], processors.NewLimit(count))
}
