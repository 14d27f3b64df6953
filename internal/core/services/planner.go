package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/tiler/internal/core/domain"
	"github.com/custodia-labs/tiler/internal/core/ports/driving"
	"github.com/custodia-labs/tiler/internal/logger"
)

// Ensure Planner implements the interface.
var _ driving.TilingService = (*Planner)(nil)

// Planner turns a physical page layout into a pixel grid. It resolves the
// paper and orientation, converts millimetres to pixels through the scale,
// folds the printer calibration into the gutter and enforces the configured
// limits before delegating to the TileGridGenerator.
type Planner struct {
	generator *TileGridGenerator
	settings  driving.SettingsService
}

// NewPlanner creates a new planner. Settings supply defaults for any
// request field left empty.
func NewPlanner(generator *TileGridGenerator, settings driving.SettingsService) *Planner {
	if generator == nil {
		generator = NewTileGridGenerator()
	}
	return &Planner{
		generator: generator,
		settings:  settings,
	}
}

// Generate tiles a document with a page already expressed in pixels.
func (p *Planner) Generate(docWidth, docHeight float64, page domain.PageSpec) (*domain.TileGrid, error) {
	return p.generator.Generate(docWidth, docHeight, page)
}

// Plan builds the grid for a physical layout.
func (p *Planner) Plan(ctx context.Context, req driving.PlanRequest) (*domain.TileGrid, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer logger.Timed("Grid Planning")()

	settings, err := p.currentSettings()
	if err != nil {
		return nil, err
	}

	scale := req.Scale
	if scale == 0 {
		scale = settings.Scale
	}
	if err := scale.Validate(); err != nil {
		return nil, err
	}

	paperName := req.PaperName
	if paperName == "" {
		paperName = settings.Tiling.PaperName
	}
	paper, err := domain.LookupPaper(paperName)
	if err != nil {
		return nil, err
	}

	orientation := req.Orientation
	if orientation == "" {
		orientation = settings.Tiling.Orientation
	}
	if !orientation.IsValid() {
		return nil, fmt.Errorf("%w: orientation %q", domain.ErrInvalidInput, orientation)
	}
	paper = paper.Oriented(orientation)
	resolved := paper.Orientation()

	gutterMM := settings.Tiling.GutterMM
	if req.GutterMM != nil {
		gutterMM = *req.GutterMM
	}
	calibration := settings.Calibration.For(resolved)
	effectiveGutterMM := gutterMM + calibration.Inset()

	logger.Debug("Paper: %s, orientation %s (resolved %s)", paper, orientation, resolved)
	logger.Debug("Scale: %s (%s)", scale, scale.Ratio())
	logger.Debug("Gutter: %g mm + %g mm calibration = %g mm", gutterMM, calibration.Inset(), effectiveGutterMM)

	page := domain.PageSpec{
		Width:       scale.PixelsFor(paper.WidthMM),
		Height:      scale.PixelsFor(paper.HeightMM),
		Gutter:      scale.PixelsFor(effectiveGutterMM),
		Orientation: resolved,
	}

	if minPx := settings.Tiling.MinPagePixels; minPx > 0 && (page.Width < minPx || page.Height < minPx) {
		return nil, fmt.Errorf("%w: %s at %s is %.1fx%.1f px, minimum is %g px",
			domain.ErrPageTooSmall, paper.Name, scale, page.Width, page.Height, minPx)
	}

	if err := page.Validate(req.DocWidth, req.DocHeight); err != nil {
		return nil, err
	}

	rows, cols, err := GridSize(req.DocWidth, req.DocHeight, page)
	if err != nil {
		return nil, err
	}
	if limit := settings.Tiling.MaxTiles; limit > 0 && float64(rows)*float64(cols) > float64(limit) {
		logger.Warn("Grid of %d x %d tiles exceeds limit %d", rows, cols, limit)
		return nil, fmt.Errorf("%w: %d rows x %d cols = %.0f pages, limit is %d",
			domain.ErrTooManyTiles, rows, cols, float64(rows)*float64(cols), limit)
	}

	grid, err := p.generator.Generate(req.DocWidth, req.DocHeight, page)
	if err != nil {
		return nil, err
	}
	logger.Info("Planned %d pages (%d x %d), print %s", grid.Len(), grid.Rows, grid.Cols, grid.PrintOrientation())
	return grid, nil
}

func (p *Planner) currentSettings() (*domain.Settings, error) {
	if p.settings == nil {
		defaults := domain.DefaultSettings()
		return &defaults, nil
	}
	settings, err := p.settings.Get()
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return settings, nil
}
