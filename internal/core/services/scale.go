package services

import (
	"fmt"
	"math"

	"github.com/custodia-labs/tiler/internal/core/domain"
	"github.com/custodia-labs/tiler/internal/core/ports/driving"
	"github.com/custodia-labs/tiler/internal/logger"
)

// Ensure ScaleResolver implements the interface.
var _ driving.ScaleService = (*ScaleResolver)(nil)

// ScaleResolver converts pixel distances on a document into physical
// distances. It holds no state and is safe for concurrent use.
type ScaleResolver struct{}

// NewScaleResolver creates a new scale resolver.
func NewScaleResolver() *ScaleResolver {
	return &ScaleResolver{}
}

// DistancePx returns the Euclidean distance between two points.
// Coincident points return 0.
func (r *ScaleResolver) DistancePx(p1, p2 domain.Point) float64 {
	return p1.Distance(p2)
}

// ScaleFromReference returns knownMM / pixelDistance.
func (r *ScaleResolver) ScaleFromReference(pixelDistance, knownMM float64) (domain.ScaleFactor, error) {
	if !(pixelDistance > 0) || math.IsInf(pixelDistance, 0) {
		return 0, fmt.Errorf("%w: pixel distance must be > 0, got %v", domain.ErrInvalidReference, pixelDistance)
	}
	if !(knownMM > 0) || math.IsInf(knownMM, 0) {
		return 0, fmt.Errorf("%w: known distance must be > 0 mm, got %v", domain.ErrInvalidReference, knownMM)
	}

	scale := domain.ScaleFactor(knownMM / pixelDistance)
	logger.Debug("Scale from reference: %.4g px = %.4g mm -> %s (%s)",
		pixelDistance, knownMM, scale, scale.Ratio())
	return scale, nil
}

// ToPhysical converts a pixel distance into unit. No rounding is applied.
func (r *ScaleResolver) ToPhysical(
	pixelDistance float64,
	scale domain.ScaleFactor,
	unit domain.Unit,
) (float64, error) {
	if err := scale.Validate(); err != nil {
		return 0, err
	}
	if !unit.IsValid() {
		return 0, fmt.Errorf("%w: unit %q", domain.ErrInvalidInput, unit)
	}
	return unit.FromMillimetres(scale.Millimetres(pixelDistance)), nil
}

// Measure returns the distance between p1 and p2 in every supported unit.
func (r *ScaleResolver) Measure(p1, p2 domain.Point, scale domain.ScaleFactor) (domain.Measurement, error) {
	if err := scale.Validate(); err != nil {
		return domain.Measurement{}, err
	}

	px := r.DistancePx(p1, p2)
	mm := scale.Millimetres(px)
	m := domain.Measurement{
		Pixels:      px,
		Millimetres: mm,
		Inches:      domain.UnitInches.FromMillimetres(mm),
	}
	logger.Debug("Measure %v -> %v: %.4g px = %.4g mm = %.4g in", p1, p2, m.Pixels, m.Millimetres, m.Inches)
	return m, nil
}
