package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	cfgfile "github.com/icstools/icsmerge/internal/adapters/driven/config/file"
	"github.com/icstools/icsmerge/internal/core/ports/driven"
	"github.com/icstools/icsmerge/internal/core/ports/driving"
	"github.com/icstools/icsmerge/internal/logger"
)

// gatherSources reads piped stdin first (unless disabled or interactive),
// then every file argument in order. Source order is significant: it
// decides metadata precedence and which event wins a UID collision.
func gatherSources(files []string) ([]driving.Source, error) {
	var sources []driving.Source

	if !noStdinFlag && !stdinIsTerminal() {
		content, err := io.ReadAll(stdinReader)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		sources = append(sources, driving.Source{Name: "stdin", Content: content})
	}

	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		sources = append(sources, driving.Source{Name: path, Content: content})
	}

	return sources, nil
}

// buildRequest assembles a merge request. Flags beat config-file defaults;
// config defaults beat document metadata (they become explicit overrides
// when the flag is unset).
func buildRequest(files []string, proc driven.EventProcessor) (driving.MergeRequest, error) {
	sources, err := gatherSources(files)
	if err != nil {
		return driving.MergeRequest{}, err
	}

	req := driving.MergeRequest{
		Sources: sources,
		Overrides: driving.Overrides{
			Name:        nameFlag,
			Description: descriptionFlag,
			Timezone:    timezoneFlag,
		},
		FillUID:   fillUIDFlag,
		Processor: proc,
	}

	if configStore != nil {
		if req.Overrides.Name == "" {
			req.Overrides.Name = configStore.GetString(cfgfile.KeyCalendarName)
		}
		if req.Overrides.Description == "" {
			req.Overrides.Description = configStore.GetString(cfgfile.KeyCalendarDescription)
		}
		if req.Overrides.Timezone == "" {
			req.Overrides.Timezone = configStore.GetString(cfgfile.KeyCalendarTimezone)
		}
	}

	return req, nil
}

// runMerge is the shared body of every processing command: build the
// request, run the merge, write the result.
func runMerge(cmd *cobra.Command, files []string, proc driven.EventProcessor) error {
	if mergerService == nil {
		return errors.New("merge service not configured")
	}

	req, err := buildRequest(files, proc)
	if err != nil {
		return err
	}

	out, err := mergerService.Merge(cmd.Context(), req)
	if err != nil {
		return err
	}

	return writeOutput(cmd, out)
}

// writeOutput sends the merged calendar to --output or stdout.
func writeOutput(cmd *cobra.Command, content string) error {
	if outputFlag == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), content)
		return err
	}

	if err := os.WriteFile(outputFlag, []byte(content), 0644); err != nil {
		return fmt.Errorf("write %s: %w", outputFlag, err)
	}
	logger.Info("wrote %s (%d bytes)", outputFlag, len(content))
	return nil
}
