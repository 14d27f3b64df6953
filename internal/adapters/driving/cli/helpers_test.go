package cli

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/tiler/internal/adapters/driven/document"
	"github.com/custodia-labs/tiler/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/tiler/internal/core/ports/driving"
	"github.com/custodia-labs/tiler/internal/core/services"
)

// setupTestServices wires real services over in-memory stores and
// returns a function restoring the previous services.
func setupTestServices() func() {
	prev := Services{
		Scale:             scaleService,
		Tiling:            tilingService,
		Settings:          settingsService,
		Project:           projectService,
		Document:          documentService,
		NewMeasureSession: newMeasureSession,
		ConfigWatcher:     configWatcher,
	}

	resolver := services.NewScaleResolver()
	settings := services.NewSettingsService(memory.NewConfigStore())
	SetServices(Services{
		Scale:    resolver,
		Tiling:   services.NewPlanner(nil, settings),
		Settings: settings,
		Project:  services.NewProjectService(memory.NewProjectStore()),
		Document: services.NewDocumentService(document.NewInspector(0)),
		NewMeasureSession: func() driving.MeasureService {
			return services.NewMeasureSession(resolver)
		},
	})

	return func() { SetServices(prev) }
}

// executeCommand runs the root command with args and returns everything
// it printed. Flags are reset afterwards so tests do not leak values.
func executeCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if f.Changed {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// writePNG writes a blank PNG of the given size and returns its path.
func writePNG(t *testing.T, width, height int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, image.NewGray(image.Rect(0, 0, width, height))))
	return path
}

func commandNames(cmd *cobra.Command) []string {
	names := make([]string, 0, len(cmd.Commands()))
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	return names
}
