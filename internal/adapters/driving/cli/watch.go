package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/icstools/icsmerge/internal/logger"
)

// debounce coalesces editor save bursts into a single re-merge.
const watchDebounce = 250 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch <file> [file...]",
	Short: "Re-merge whenever an input file changes",
	Long: `Merges the input files to --output, then keeps running and repeats
the merge every time one of them changes. Stdin is not read. Stop with
Ctrl-C.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if mergerService == nil {
		return errors.New("merge service not configured")
	}
	if outputFlag == "" {
		return errors.New("--output is required in watch mode")
	}

	// Watch mode re-merges repeatedly; stdin can only be read once.
	noStdinFlag = true

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the parent directories rather than the files themselves so
	// atomic saves (write temp file, rename over original) keep firing.
	watched := make(map[string]struct{}, len(args))
	for _, path := range args {
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("resolve %s: %w", path, err)
		}
		watched[abs] = struct{}{}
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
	}

	remerge := func() {
		if err := runMerge(cmd, args, nil); err != nil {
			logger.Warn("merge failed: %v", err)
		}
	}

	remerge()
	logger.Info("watching %d file(s), writing %s", len(args), outputFlag)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()
	ctx := cmd.Context()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}
			if _, tracked := watched[abs]; !tracked {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
			} else {
				timer.Reset(watchDebounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			remerge()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}
