package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/icstools/icsmerge/internal/processors"
)

var (
	tzFrom string
	tzTo   string
)

var tzrenameCmd = &cobra.Command{
	Use:   "tzrename [file...]",
	Short: "Merge and relabel a TZID on every event",
	Long: `Merges all inputs, then rewrites every TZID parameter equal to
--from into --to on every event property.

This relabels mislabeled source data only: date/time values are not
converted, so an event at 09:00 stays at 09:00 in the new zone.`,
	RunE: runTzrename,
}

func init() {
	tzrenameCmd.Flags().StringVar(&tzFrom, "from", "", "TZID value to replace")
	tzrenameCmd.Flags().StringVar(&tzTo, "to", "", "Replacement TZID value")
	rootCmd.AddCommand(tzrenameCmd)
}

func runTzrename(cmd *cobra.Command, args []string) error {
	if tzFrom == "" {
		return errors.New("--from is required")
	}
	if tzTo == "" {
		return errors.New("--to is required")
	}
	return runMerge(cmd, args, processors.NewTimezoneRename(tzFrom, tzTo))
}
