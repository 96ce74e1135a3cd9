package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var propCmd = &cobra.Command{
	Use:   "prop [file...]",
	Short: "List the property names used by events across all inputs",
	Long: `Merges all inputs and prints the distinct property names found on
the merged events, one per line, in first-seen order. No calendar
document is produced.`,
	RunE: runProp,
}

func init() {
	rootCmd.AddCommand(propCmd)
}

func runProp(cmd *cobra.Command, args []string) error {
	if mergerService == nil {
		return errors.New("merge service not configured")
	}
	req, err := buildRequest(args, nil)
	if err != nil {
		return err
	}
	names, err := mergerService.PropertyNames(cmd.Context(), req)
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
