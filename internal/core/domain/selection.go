package domain

import "fmt"

// SelectionState names the phase of a two-point selection.
type SelectionState string

// Selection phases.
const (
	SelectionEmpty     SelectionState = "empty"
	SelectionOnePoint  SelectionState = "one_point"
	SelectionTwoPoints SelectionState = "two_points"
)

// String returns the string representation.
func (s SelectionState) String() string {
	return string(s)
}

// Selection is the state of an interactive two-point pick used for
// calibration and measurement. It is one of EmptySelection, OnePoint
// or TwoPoints; no other implementations exist.
type Selection interface {
	State() SelectionState
	Points() []Point
	selection()
}

// EmptySelection has no points.
type EmptySelection struct{}

// OnePoint holds the first picked point.
type OnePoint struct {
	P1 Point
}

// TwoPoints holds both picked points.
type TwoPoints struct {
	P1, P2 Point
}

func (EmptySelection) selection() {}
func (OnePoint) selection()       {}
func (TwoPoints) selection()      {}

// State implements Selection.
func (EmptySelection) State() SelectionState { return SelectionEmpty }

// State implements Selection.
func (OnePoint) State() SelectionState { return SelectionOnePoint }

// State implements Selection.
func (TwoPoints) State() SelectionState { return SelectionTwoPoints }

// Points implements Selection.
func (EmptySelection) Points() []Point { return nil }

// Points implements Selection.
func (s OnePoint) Points() []Point { return []Point{s.P1} }

// Points implements Selection.
func (s TwoPoints) Points() []Point { return []Point{s.P1, s.P2} }

// Select records a picked point. A pick after two points starts a new
// selection with p as its first point.
func Select(s Selection, p Point) Selection {
	switch s := s.(type) {
	case OnePoint:
		return TwoPoints{P1: s.P1, P2: p}
	case TwoPoints:
		return OnePoint{P1: p}
	default:
		return OnePoint{P1: p}
	}
}

// Move replaces an already-picked point, addressed by index 0 or 1,
// without changing the selection phase. Addressing a point that has not
// been picked returns ErrInvalidInput and the selection unchanged.
func Move(s Selection, index int, p Point) (Selection, error) {
	switch s := s.(type) {
	case OnePoint:
		if index == 0 {
			return OnePoint{P1: p}, nil
		}
	case TwoPoints:
		switch index {
		case 0:
			return TwoPoints{P1: p, P2: s.P2}, nil
		case 1:
			return TwoPoints{P1: s.P1, P2: p}, nil
		}
	}
	return s, fmt.Errorf("%w: no point %d to move in %s selection", ErrInvalidInput, index, stateOf(s))
}

// Clear discards every picked point.
func Clear() Selection {
	return EmptySelection{}
}

func stateOf(s Selection) SelectionState {
	if s == nil {
		return SelectionEmpty
	}
	return s.State()
}
