package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/icstools/icsmerge/internal/processors"
)

var (
	replaceProp  string
	replaceValue string
)

var replaceCmd = &cobra.Command{
	Use:   "replace [file...]",
	Short: "Merge and set a property to a fixed value on every event",
	Long: `Merges all inputs, then replaces the named property on each event
with a single parameterless instance of the given value. Zero, one or many
existing instances all collapse to exactly one.`,
	RunE: runReplace,
}

func init() {
	replaceCmd.Flags().StringVarP(&replaceProp, "prop", "p", "", "Property name to replace")
	replaceCmd.Flags().StringVar(&replaceValue, "value", "", "New property value")
	rootCmd.AddCommand(replaceCmd)
}

func runReplace(cmd *cobra.Command, args []string) error {
	if replaceProp == "" {
		return errors.New("--prop is required")
	}
	if replaceValue == "" {
		return errors.New("--value is required")
	}
	return runMerge(cmd, args, processors.NewReplaceProperty(replaceProp, replaceValue))
}
