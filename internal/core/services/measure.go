package services

import (
	"fmt"

	"github.com/custodia-labs/tiler/internal/core/domain"
	"github.com/custodia-labs/tiler/internal/core/ports/driving"
	"github.com/custodia-labs/tiler/internal/logger"
)

// Ensure MeasureSession implements the interface.
var _ driving.MeasureService = (*MeasureSession)(nil)

// MeasureSession holds the two-point selection of one interactive
// calibration or measurement flow. It is not safe for concurrent use.
type MeasureSession struct {
	resolver  *ScaleResolver
	selection domain.Selection
}

// NewMeasureSession creates an empty session.
func NewMeasureSession(resolver *ScaleResolver) *MeasureSession {
	if resolver == nil {
		resolver = NewScaleResolver()
	}
	return &MeasureSession{
		resolver:  resolver,
		selection: domain.EmptySelection{},
	}
}

// Select records a picked point. A third pick starts a new selection.
func (m *MeasureSession) Select(p domain.Point) domain.Selection {
	m.selection = domain.Select(m.selection, p)
	logger.Debug("Select %v -> %s", p, m.selection.State())
	return m.selection
}

// Move replaces the picked point at index.
func (m *MeasureSession) Move(index int, p domain.Point) (domain.Selection, error) {
	next, err := domain.Move(m.selection, index, p)
	if err != nil {
		return m.selection, err
	}
	m.selection = next
	return m.selection, nil
}

// Clear discards all picked points.
func (m *MeasureSession) Clear() domain.Selection {
	m.selection = domain.Clear()
	return m.selection
}

// Selection returns the current selection.
func (m *MeasureSession) Selection() domain.Selection {
	return m.selection
}

// State reports the selection phase.
func (m *MeasureSession) State() domain.SelectionState {
	return m.selection.State()
}

// Points returns the picked points in pick order.
func (m *MeasureSession) Points() []domain.Point {
	return m.selection.Points()
}

// Measure returns the distance between the two picked points.
func (m *MeasureSession) Measure(scale domain.ScaleFactor) (domain.Measurement, error) {
	pair, err := m.pair()
	if err != nil {
		return domain.Measurement{}, err
	}
	return m.resolver.Measure(pair.P1, pair.P2, scale)
}

// Calibrate derives a scale from the picked points and the known distance
// between them.
func (m *MeasureSession) Calibrate(knownMM float64) (domain.ScaleFactor, error) {
	pair, err := m.pair()
	if err != nil {
		return 0, err
	}
	return m.resolver.ScaleFromReference(m.resolver.DistancePx(pair.P1, pair.P2), knownMM)
}

func (m *MeasureSession) pair() (domain.TwoPoints, error) {
	pair, ok := m.selection.(domain.TwoPoints)
	if !ok {
		return domain.TwoPoints{}, fmt.Errorf("%w: two points required, selection is %s",
			domain.ErrInvalidInput, m.selection.State())
	}
	return pair, nil
}
