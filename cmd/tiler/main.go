// Command tiler plans how a scaled drawing prints across a grid of pages.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/tiler/internal/adapters/driven/config/file"
	"github.com/custodia-labs/tiler/internal/adapters/driven/document"
	"github.com/custodia-labs/tiler/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/tiler/internal/adapters/driving/cli"
	"github.com/custodia-labs/tiler/internal/core/ports/driving"
	"github.com/custodia-labs/tiler/internal/core/services"
	"github.com/custodia-labs/tiler/internal/logger"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading config: %v\n", err)
		return 1
	}

	store, err := sqlite.NewStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: opening project store: %v\n", err)
		return 1
	}
	defer store.Close()

	settings := services.NewSettingsService(configStore)
	dpi := 0
	if s, err := settings.Get(); err == nil {
		dpi = s.Display.DPI
	} else {
		logger.Warn("Using default settings: %v", err)
	}

	resolver := services.NewScaleResolver()
	cli.SetServices(cli.Services{
		Scale:    resolver,
		Tiling:   services.NewPlanner(nil, settings),
		Settings: settings,
		Project:  services.NewProjectService(store.ProjectStore()),
		Document: services.NewDocumentService(document.NewInspector(dpi)),
		NewMeasureSession: func() driving.MeasureService {
			return services.NewMeasureSession(resolver)
		},
		ConfigWatcher: configStore,
	})
	cli.SetVersion(version)

	// Cobra reports command errors itself.
	if err := cli.Execute(); err != nil {
		return 1
	}
	return 0
}
