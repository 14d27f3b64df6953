package driving

import (
	"context"

	"github.com/custodia-labs/tiler/internal/core/domain"
)

// PlanRequest describes a grid in physical terms. Zero-valued fields
// fall back to the stored settings.
type PlanRequest struct {
	// DocWidth and DocHeight are the document size in pixels. Required.
	DocWidth  float64
	DocHeight float64

	// Scale is the document scale in mm per pixel.
	Scale domain.ScaleFactor

	// PaperName is a paper catalogue name.
	PaperName string

	// Orientation is the requested page orientation.
	Orientation domain.Orientation

	// GutterMM overrides the configured gutter. Nil uses the setting,
	// since zero is a valid gutter.
	GutterMM *float64
}

// TilingService builds tile grids.
type TilingService interface {
	// Generate tiles a document with pages already expressed in pixels.
	// Returns domain.ErrInvalidTilingConfig for an invalid page or document.
	Generate(docWidth, docHeight float64, page domain.PageSpec) (*domain.TileGrid, error)

	// Plan converts a physical page layout to pixels using the scale,
	// applies printer calibration and host limits, and generates the grid.
	Plan(ctx context.Context, req PlanRequest) (*domain.TileGrid, error)
}
