package mcp

import (
	"github.com/custodia-labs/tiler/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Scale converts between pixels and physical units.
	Scale driving.ScaleService

	// Tiling plans print grids.
	Tiling driving.TilingService

	// Settings supplies the stored scale and page layout. Optional.
	Settings driving.SettingsService

	// Project lists saved projects. Optional.
	Project driving.ProjectService

	// Document reads drawing sizes from disk. Optional.
	Document driving.DocumentService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Scale == nil {
		return ErrMissingScaleService
	}
	if p.Tiling == nil {
		return ErrMissingTilingService
	}
	return nil
}
