package driving

import "github.com/custodia-labs/tiler/internal/core/domain"

// ScaleService converts between pixel and physical distances.
// Implementations are stateless and safe for concurrent use.
type ScaleService interface {
	// DistancePx returns the Euclidean pixel distance between two points.
	DistancePx(p1, p2 domain.Point) float64

	// ScaleFromReference derives a scale factor from a pixel distance and
	// the known physical distance it represents, in millimetres.
	// Returns domain.ErrInvalidReference if either distance is not positive.
	ScaleFromReference(pixelDistance, knownMM float64) (domain.ScaleFactor, error)

	// ToPhysical converts a pixel distance into the given unit.
	// Returns domain.ErrScaleNotSet if scale is unset.
	ToPhysical(pixelDistance float64, scale domain.ScaleFactor, unit domain.Unit) (float64, error)

	// Measure returns the distance between two points in pixels,
	// millimetres and inches.
	Measure(p1, p2 domain.Point, scale domain.ScaleFactor) (domain.Measurement, error)
}
