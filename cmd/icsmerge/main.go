package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/icstools/icsmerge/internal/adapters/driven/config/file"
	"github.com/icstools/icsmerge/internal/adapters/driven/ics"
	"github.com/icstools/icsmerge/internal/adapters/driving/cli"
	"github.com/icstools/icsmerge/internal/core/ports/driven"
	"github.com/icstools/icsmerge/internal/core/services"
	"github.com/icstools/icsmerge/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A broken config file is not fatal: flags and document metadata
	// still work without it.
	var configStore driven.ConfigStore
	if store, err := file.NewConfigStore(""); err != nil {
		logger.Warn("config unavailable: %v", err)
	} else {
		configStore = store
	}

	merger := services.NewMergeService(ics.NewCodec(), nil)
	cli.SetServices(merger, configStore)

	if err := cli.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
