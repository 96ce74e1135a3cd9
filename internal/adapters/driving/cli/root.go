// Package cli implements the icsmerge command-line interface.
//
// Each command merges the given .ics files (plus piped stdin, read first
// when present) and applies one per-event operation before printing the
// merged calendar. The merged document always goes to stdout or --output;
// diagnostics go to stderr.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	cfgfile "github.com/icstools/icsmerge/internal/adapters/driven/config/file"
	"github.com/icstools/icsmerge/internal/core/ports/driven"
	"github.com/icstools/icsmerge/internal/core/ports/driving"
	"github.com/icstools/icsmerge/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services injected by the composition root (cmd/icsmerge).
var (
	mergerService driving.Merger
	configStore   driven.ConfigStore
)

// Stdin plumbing. Terminal detection is resolved once here at the CLI edge
// and flows into the merge request as plain data, so the core never probes
// the environment. Tests swap both.
var (
	stdinReader     io.Reader = os.Stdin
	stdinIsTerminal           = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
)

// Persistent flag values.
var (
	nameFlag        string
	descriptionFlag string
	timezoneFlag    string
	outputFlag      string
	fillUIDFlag     bool
	noStdinFlag     bool
	verboseFlag     bool
)

var rootCmd = &cobra.Command{
	Use:   "icsmerge",
	Short: "Merge and process iCalendar (.ics) files",
	Long: `icsmerge concatenates any number of .ics calendars into one.

Events are deduplicated by UID (the last input wins, keeping the original
position), VTIMEZONE definitions are deduplicated by TZID, and calendar
name/description/timezone resolve to the first non-empty value in input
order unless overridden with flags. Piped stdin is read before any file
argument.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		verbose := verboseFlag
		if !verbose && configStore != nil {
			verbose = configStore.GetBool(cfgfile.KeyVerbose)
		}
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&nameFlag, "name", "", "Calendar name; defaults to the first calendar name in the inputs")
	rootCmd.PersistentFlags().StringVar(&descriptionFlag, "description", "", "Calendar description; defaults to the first one in the inputs")
	rootCmd.PersistentFlags().StringVar(&timezoneFlag, "timezone", "", "Calendar timezone; defaults to the first one in the inputs")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "Write the merged calendar to a file instead of stdout")
	rootCmd.PersistentFlags().BoolVar(&fillUIDFlag, "fill-uid", false, "Assign generated UIDs to events that lack one instead of dropping them")
	rootCmd.PersistentFlags().BoolVar(&noStdinFlag, "no-stdin", false, "Ignore piped stdin")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose diagnostics on stderr")
}

// SetServices injects the core services. Called once by the composition
// root before Execute; the config store may be nil.
func SetServices(merger driving.Merger, config driven.ConfigStore) {
	mergerService = merger
	configStore = config
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command under ctx. Cancellation stops
// long-running commands such as watch.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
