// Package cli provides the command-line interface for tiler.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/tiler/internal/core/ports/driving"
	"github.com/custodia-labs/tiler/internal/logger"
)

// version is set at build time.
var version = "dev"

// ConfigWatcher reloads configuration when its backing file changes.
type ConfigWatcher interface {
	Watch(ctx context.Context, onChange func(error)) error
}

// Services holds the driving ports the commands depend on.
type Services struct {
	Scale    driving.ScaleService
	Tiling   driving.TilingService
	Settings driving.SettingsService
	Project  driving.ProjectService
	Document driving.DocumentService

	// NewMeasureSession creates a fresh two-point selection per command.
	NewMeasureSession func() driving.MeasureService

	// ConfigWatcher is optional. Long-running commands use it to pick up
	// settings edits.
	ConfigWatcher ConfigWatcher
}

var (
	scaleService      driving.ScaleService
	tilingService     driving.TilingService
	settingsService   driving.SettingsService
	projectService    driving.ProjectService
	documentService   driving.DocumentService
	newMeasureSession func() driving.MeasureService
	configWatcher     ConfigWatcher
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "tiler",
	Short: "Print scaled drawings across multiple pages",
	Long: `Tiler prints architectural drawings at true scale across a grid of
ordinary printer pages.

Calibrate the drawing scale from two points and a known distance, then
split the drawing into overlapping-free pages whose non-printable
gutters line up edge to edge when the sheets are assembled.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// SetServices injects the services used by the commands.
func SetServices(s Services) {
	scaleService = s.Scale
	tilingService = s.Tiling
	settingsService = s.Settings
	projectService = s.Project
	documentService = s.Document
	newMeasureSession = s.NewMeasureSession
	configWatcher = s.ConfigWatcher
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
