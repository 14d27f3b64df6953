package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/tiler/internal/core/domain"
	"github.com/custodia-labs/tiler/internal/core/ports/driving"
)

// CalibrateInput is the input schema for the calibrate_scale tool.
type CalibrateInput struct {
	X1            float64 `json:"x1" jsonschema:"x of the first reference point in document pixels"`
	Y1            float64 `json:"y1" jsonschema:"y of the first reference point in document pixels"`
	X2            float64 `json:"x2" jsonschema:"x of the second reference point in document pixels"`
	Y2            float64 `json:"y2" jsonschema:"y of the second reference point in document pixels"`
	KnownDistance float64 `json:"known_distance" jsonschema:"real distance between the two points"`
	Unit          string  `json:"unit,omitempty" jsonschema:"unit of known_distance: mm (default) or in"`
	Save          bool    `json:"save,omitempty" jsonschema:"store the scale as the default for later grids"`
}

// CalibrateOutput is the output schema for the calibrate_scale tool.
type CalibrateOutput struct {
	PixelDistance float64 `json:"pixel_distance"`
	MMPerPixel    float64 `json:"mm_per_pixel"`
	Ratio         string  `json:"ratio"`
	Saved         bool    `json:"saved"`
}

// MeasureInput is the input schema for the measure_distance tool.
type MeasureInput struct {
	X1    float64 `json:"x1" jsonschema:"x of the first point in document pixels"`
	Y1    float64 `json:"y1" jsonschema:"y of the first point in document pixels"`
	X2    float64 `json:"x2" jsonschema:"x of the second point in document pixels"`
	Y2    float64 `json:"y2" jsonschema:"y of the second point in document pixels"`
	Scale float64 `json:"scale,omitempty" jsonschema:"scale in mm per pixel; defaults to the stored scale"`
}

// MeasureOutput is the output schema for the measure_distance tool.
type MeasureOutput struct {
	domain.Measurement
	Scale float64 `json:"scale"`
}

// GridInput is the input schema for the compute_grid tool.
type GridInput struct {
	DocWidth    float64  `json:"doc_width,omitempty" jsonschema:"document width in pixels"`
	DocHeight   float64  `json:"doc_height,omitempty" jsonschema:"document height in pixels"`
	Document    string   `json:"document,omitempty" jsonschema:"path to an image or PDF to read the size from instead"`
	Scale       float64  `json:"scale,omitempty" jsonschema:"scale in mm per pixel; defaults to the stored scale"`
	Paper       string   `json:"paper,omitempty" jsonschema:"paper size: A5, A4, A3, Letter, Legal or Tabloid"`
	Orientation string   `json:"orientation,omitempty" jsonschema:"auto, portrait or landscape"`
	GutterMM    *float64 `json:"gutter_mm,omitempty" jsonschema:"non-printable margin on each side in mm"`
}

// GridOutput is the output schema for the compute_grid tool.
type GridOutput struct {
	Rows             int             `json:"rows"`
	Cols             int             `json:"cols"`
	Pages            int             `json:"pages"`
	DocWidth         float64         `json:"doc_width"`
	DocHeight        float64         `json:"doc_height"`
	Page             domain.PageSpec `json:"page"`
	PrintOrientation string          `json:"print_orientation"`
	Tiles            []TileOutput    `json:"tiles"`
}

// TileOutput represents a single page of a grid.
type TileOutput struct {
	Label    string      `json:"label"`
	Number   int         `json:"number"`
	Row      int         `json:"row"`
	Col      int         `json:"col"`
	Page     domain.Rect `json:"page"`
	Drawable domain.Rect `json:"drawable"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "calibrate_scale",
		Description: "Derive a drawing scale from two points and the known distance between them",
	}, s.handleCalibrate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "measure_distance",
		Description: "Measure the real distance between two points on a calibrated drawing",
	}, s.handleMeasure)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "compute_grid",
		Description: "Split a drawing into printable pages at its true scale",
	}, s.handleComputeGrid)
}

// handleCalibrate handles the calibrate_scale tool invocation.
func (s *Server) handleCalibrate(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input CalibrateInput,
) (*mcp.CallToolResult, CalibrateOutput, error) {
	unit := domain.UnitMillimetres
	if input.Unit != "" {
		u, err := domain.ParseUnit(input.Unit)
		if err != nil {
			return nil, CalibrateOutput{}, err
		}
		unit = u
	}

	px := s.ports.Scale.DistancePx(
		domain.Point{X: input.X1, Y: input.Y1},
		domain.Point{X: input.X2, Y: input.Y2},
	)
	scale, err := s.ports.Scale.ScaleFromReference(px, unit.ToMillimetres(input.KnownDistance))
	if err != nil {
		return nil, CalibrateOutput{}, err
	}

	output := CalibrateOutput{
		PixelDistance: px,
		MMPerPixel:    float64(scale),
		Ratio:         scale.Ratio(),
	}

	if input.Save {
		if s.ports.Settings == nil {
			return nil, CalibrateOutput{}, fmt.Errorf("cannot save scale: settings are not available")
		}
		if err := s.ports.Settings.SetScale(scale); err != nil {
			return nil, CalibrateOutput{}, fmt.Errorf("saving scale: %w", err)
		}
		output.Saved = true
	}

	return nil, output, nil
}

// handleMeasure handles the measure_distance tool invocation.
func (s *Server) handleMeasure(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input MeasureInput,
) (*mcp.CallToolResult, MeasureOutput, error) {
	scale, err := s.resolveScale(input.Scale)
	if err != nil {
		return nil, MeasureOutput{}, err
	}

	m, err := s.ports.Scale.Measure(
		domain.Point{X: input.X1, Y: input.Y1},
		domain.Point{X: input.X2, Y: input.Y2},
		scale,
	)
	if err != nil {
		return nil, MeasureOutput{}, err
	}

	return nil, MeasureOutput{Measurement: m, Scale: float64(scale)}, nil
}

// handleComputeGrid handles the compute_grid tool invocation.
func (s *Server) handleComputeGrid(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GridInput,
) (*mcp.CallToolResult, GridOutput, error) {
	width, height := input.DocWidth, input.DocHeight
	if input.Document != "" {
		if s.ports.Document == nil {
			return nil, GridOutput{}, fmt.Errorf("%w: reading documents is not available", domain.ErrUnsupportedDocument)
		}
		info, err := s.ports.Document.Inspect(ctx, input.Document)
		if err != nil {
			return nil, GridOutput{}, err
		}
		width, height = float64(info.Width), float64(info.Height)
	}

	grid, err := s.ports.Tiling.Plan(ctx, driving.PlanRequest{
		DocWidth:    width,
		DocHeight:   height,
		Scale:       domain.ScaleFactor(input.Scale),
		PaperName:   input.Paper,
		Orientation: domain.Orientation(input.Orientation),
		GutterMM:    input.GutterMM,
	})
	if err != nil {
		return nil, GridOutput{}, err
	}

	return nil, gridOutput(grid), nil
}

// resolveScale returns the explicit scale or, when zero, the stored one.
func (s *Server) resolveScale(explicit float64) (domain.ScaleFactor, error) {
	if explicit != 0 {
		return domain.ScaleFactor(explicit), nil
	}
	if s.ports.Settings == nil {
		return 0, domain.ErrScaleNotSet
	}
	settings, err := s.ports.Settings.Get()
	if err != nil {
		return 0, fmt.Errorf("loading settings: %w", err)
	}
	return settings.Scale, nil
}

func gridOutput(grid *domain.TileGrid) GridOutput {
	output := GridOutput{
		Rows:             grid.Rows,
		Cols:             grid.Cols,
		Pages:            grid.Len(),
		DocWidth:         grid.DocWidth,
		DocHeight:        grid.DocHeight,
		Page:             grid.Page,
		PrintOrientation: grid.PrintOrientation().String(),
		Tiles:            make([]TileOutput, len(grid.Tiles)),
	}
	for i, t := range grid.Tiles {
		output.Tiles[i] = TileOutput{
			Label:    t.Label(),
			Number:   grid.Number(t.Row, t.Col),
			Row:      t.Row,
			Col:      t.Col,
			Page:     t.Page(),
			Drawable: t.Drawable(),
		}
	}
	return output
}
