package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/tiler/internal/adapters/driving/tui"
	"github.com/custodia-labs/tiler/internal/core/ports/driving"
)

// isTerminal reports whether stdout is an interactive terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

var (
	previewOpts    gridOptions
	previewProject string
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview the page grid interactively",
	Long: `Open an interactive map of the pages a drawing prints on.

The layout flags match 'tiler grid'. Use --project to preview a saved
project instead.

Controls:
  ←↑↓→/hjkl - Select a page
  g / G     - First / last page
  o         - Cycle orientation
  u         - Toggle mm / inches
  ?         - Toggle help
  q         - Quit`,
	RunE: runPreview,
}

func init() {
	previewOpts.bind(previewCmd.Flags())
	previewCmd.Flags().StringVar(&previewProject, "project", "", "preview a saved project by ID")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, _ []string) error {
	if tilingService == nil {
		return errors.New("tiling service not configured")
	}
	if !isTerminal() {
		return errors.New("preview needs an interactive terminal, use 'tiler grid' instead")
	}

	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ctx := commandContext(cmd)
	req, err := previewRequest(ctx, cmd)
	if err != nil {
		return err
	}

	app, err := tui.NewApp(tui.NewPorts(tilingService, settingsService), req)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(ctx)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// previewRequest builds the layout from a saved project or the flags.
func previewRequest(ctx context.Context, cmd *cobra.Command) (driving.PlanRequest, error) {
	if previewProject == "" {
		return previewOpts.request(ctx, cmd.Flags())
	}

	if projectService == nil {
		return driving.PlanRequest{}, errors.New("project service not configured")
	}
	p, err := projectService.Get(ctx, previewProject)
	if err != nil {
		return driving.PlanRequest{}, fmt.Errorf("failed to get project: %w", err)
	}

	gutter := p.GutterMM
	return driving.PlanRequest{
		DocWidth:    p.DocWidth,
		DocHeight:   p.DocHeight,
		Scale:       p.Scale,
		PaperName:   p.PaperName,
		Orientation: p.Orientation,
		GutterMM:    &gutter,
	}, nil
}
