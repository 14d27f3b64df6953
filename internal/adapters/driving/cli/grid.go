package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/tiler/internal/core/domain"
	"github.com/custodia-labs/tiler/internal/core/ports/driving"
)

// gridOptions are the layout flags shared by grid and preview.
type gridOptions struct {
	width       float64
	height      float64
	document    string
	scale       float64
	paper       string
	orientation string
	gutter      float64
}

func (o *gridOptions) bind(flags *pflag.FlagSet) {
	flags.Float64Var(&o.width, "width", 0, "document width in pixels")
	flags.Float64Var(&o.height, "height", 0, "document height in pixels")
	flags.StringVar(&o.document, "document", "", "image or PDF to read the size from")
	flags.Float64VarP(&o.scale, "scale", "s", 0, "scale in mm per pixel (default: stored scale)")
	flags.StringVarP(&o.paper, "paper", "p", "", "paper size (default: stored paper)")
	flags.StringVarP(&o.orientation, "orientation", "o", "", "auto, portrait or landscape (default: stored)")
	flags.Float64VarP(&o.gutter, "gutter", "g", 0, "gutter in mm (default: stored gutter)")
}

// request builds a plan request, reading the document size when a
// document is given.
func (o *gridOptions) request(ctx context.Context, flags *pflag.FlagSet) (driving.PlanRequest, error) {
	req := driving.PlanRequest{
		DocWidth:    o.width,
		DocHeight:   o.height,
		Scale:       domain.ScaleFactor(o.scale),
		PaperName:   o.paper,
		Orientation: domain.Orientation(o.orientation),
	}
	if flags.Changed("gutter") {
		gutter := o.gutter
		req.GutterMM = &gutter
	}

	switch {
	case o.document != "":
		if documentService == nil {
			return req, errors.New("document service not configured")
		}
		info, err := documentService.Inspect(ctx, o.document)
		if err != nil {
			return req, fmt.Errorf("failed to read document: %w", err)
		}
		req.DocWidth = float64(info.Width)
		req.DocHeight = float64(info.Height)
	case o.width == 0 || o.height == 0:
		return req, errors.New("either --document or both --width and --height are required")
	}

	return req, nil
}

var (
	gridOpts gridOptions
	gridJSON bool
)

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Split a drawing into printable pages",
	Long: `Compute the grid of pages needed to print a drawing at true scale.

Each page keeps its full paper size. Neighbouring pages overlap by exactly
the gutter so the printable areas meet edge to edge.

Examples:
  tiler grid --width 4961 --height 3508 --scale 0.5
  tiler grid --document plan.pdf --paper A3 --orientation landscape --gutter 5`,
	RunE: runGrid,
}

func init() {
	gridOpts.bind(gridCmd.Flags())
	gridCmd.Flags().BoolVar(&gridJSON, "json", false, "output the grid as JSON")
	rootCmd.AddCommand(gridCmd)
}

func runGrid(cmd *cobra.Command, _ []string) error {
	if tilingService == nil {
		return errors.New("tiling service not configured")
	}

	ctx := commandContext(cmd)

	req, err := gridOpts.request(ctx, cmd.Flags())
	if err != nil {
		return err
	}

	grid, err := tilingService.Plan(ctx, req)
	if err != nil {
		return fmt.Errorf("grid failed: %w", err)
	}

	if gridJSON {
		return outputGridJSON(cmd, grid)
	}
	return outputGridTable(cmd, grid)
}

func outputGridJSON(cmd *cobra.Command, grid *domain.TileGrid) error {
	data, err := json.MarshalIndent(grid, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal grid: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputGridTable(cmd *cobra.Command, grid *domain.TileGrid) error {
	cmd.Printf("Document: %.0f x %.0f px\n", grid.DocWidth, grid.DocHeight)
	cmd.Printf("Page: %.1f x %.1f px, gutter %.1f px\n", grid.Page.Width, grid.Page.Height, grid.Page.Gutter)
	cmd.Printf("Grid: %d rows x %d cols (%d pages)\n", grid.Rows, grid.Cols, grid.Len())
	cmd.Printf("Print orientation: %s\n", grid.PrintOrientation())
	cmd.Println()

	cmd.Printf("  %-4s %-8s %-28s %s\n", "#", "Label", "Page (x, y)", "Drawable (x, y, w, h)")
	for _, t := range grid.Tiles {
		d := t.Drawable()
		cmd.Printf("  %-4d %-8s %-28s %.1f, %.1f, %.1f, %.1f\n",
			grid.Number(t.Row, t.Col),
			t.Label(),
			fmt.Sprintf("%.1f, %.1f", t.X, t.Y),
			d.X, d.Y, d.Width, d.Height,
		)
	}
	return nil
}
