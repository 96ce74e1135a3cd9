package cli

import (
	"github.com/spf13/cobra"

	"github.com/icstools/icsmerge/internal/processors"
)

var catCmd = &cobra.Command{
	Use:   "cat [file...]",
	Short: "Concatenate and merge .ics files",
	Long: `Merges all inputs into a single calendar without touching events.
With no file arguments and no piped stdin, prints an empty calendar.`,
	RunE: runCat,
}

func init() {
	rootCmd.AddCommand(catCmd)
}

func runCat(cmd *cobra.Command, args []string) error {
	return runMerge(cmd, args, processors.NewIdentity())
}
