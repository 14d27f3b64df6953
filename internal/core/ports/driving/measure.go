package driving

import "github.com/custodia-labs/tiler/internal/core/domain"

// MeasureService drives one interactive two-point selection.
// It is owned by a single session and is not safe for concurrent use.
type MeasureService interface {
	// Select records a picked point and returns the new selection.
	Select(p domain.Point) domain.Selection

	// Move replaces an already-picked point by index (0 or 1).
	Move(index int, p domain.Point) (domain.Selection, error)

	// Clear discards all picked points.
	Clear() domain.Selection

	// Selection returns the current selection.
	Selection() domain.Selection

	// State reports how many points are picked.
	State() domain.SelectionState

	// Points returns the picked points in pick order.
	Points() []domain.Point

	// Measure returns the distance between the two picked points.
	// Returns domain.ErrInvalidInput unless two points are picked and
	// domain.ErrScaleNotSet if scale is unset.
	Measure(scale domain.ScaleFactor) (domain.Measurement, error)

	// Calibrate derives a scale from the two picked points and the known
	// distance between them in millimetres.
	Calibrate(knownMM float64) (domain.ScaleFactor, error)
}
