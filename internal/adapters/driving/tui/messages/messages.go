// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/tiler/internal/core/domain"
)

// GridPlanned carries a freshly planned grid back to the model.
type GridPlanned struct {
	Grid *domain.TileGrid
	// Scale is the scale the grid was planned at, used for physical sizes.
	Scale domain.ScaleFactor
	Err   error
}

// TileSelected is sent when the highlighted page changes.
type TileSelected struct {
	Row int
	Col int
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewPreview is the page grid preview.
	ViewPreview ViewType = iota
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewPreview:
		return "preview"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred is sent when an error occurs.
type ErrorOccurred struct {
	Err error
}

// Quit is sent to exit the application.
type Quit struct{}
