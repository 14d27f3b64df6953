// Package domain defines the core types for tiler.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Point, Rect: geometry in document pixel space
//   - ScaleFactor, Unit, Measurement: physical scale and units
//   - PaperSize, Orientation, PrintCalibration: page descriptions
//   - PageSpec, Tile, TileGrid: the tiling output
//   - Selection: the two-point selection state machine
//   - Settings, Project, DocumentInfo: host-facing configuration and state
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
