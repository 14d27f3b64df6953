// Package tui provides an interactive page preview for tiler.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/tiler/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the TUI.
type Ports struct {
	// Tiling plans the previewed grid.
	Tiling driving.TilingService

	// Settings supplies the stored scale and display units. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(tiling driving.TilingService, settings driving.SettingsService) *Ports {
	return &Ports{
		Tiling:   tiling,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Tiling == nil {
		return ErrMissingTilingService
	}
	return nil
}
