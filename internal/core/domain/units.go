package domain

import (
	"fmt"
	"strings"
)

// MillimetresPerInch is the fixed conversion between the canonical unit
// and inches.
const MillimetresPerInch = 25.4

// Unit is a physical length unit. Millimetres are canonical; every other
// unit is derived from them.
type Unit string

// Supported units.
const (
	// UnitMillimetres is the canonical physical unit.
	UnitMillimetres Unit = "mm"

	// UnitInches is a derived display unit.
	UnitInches Unit = "in"
)

// IsValid returns true if the unit is recognised.
func (u Unit) IsValid() bool {
	switch u {
	case UnitMillimetres, UnitInches:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (u Unit) String() string {
	return string(u)
}

// FromMillimetres converts a length in millimetres to this unit.
func (u Unit) FromMillimetres(mm float64) float64 {
	if u == UnitInches {
		return mm / MillimetresPerInch
	}
	return mm
}

// ToMillimetres converts a length in this unit to millimetres.
func (u Unit) ToMillimetres(v float64) float64 {
	if u == UnitInches {
		return v * MillimetresPerInch
	}
	return v
}

// ParseUnit parses a unit name. It accepts the long forms used by the
// settings file as well as the short symbols.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mm", "millimetre", "millimetres", "millimeter", "millimeters":
		return UnitMillimetres, nil
	case "in", "inch", "inches":
		return UnitInches, nil
	default:
		return "", fmt.Errorf("%w: unknown unit %q", ErrInvalidInput, s)
	}
}

// AllUnits returns all supported units.
func AllUnits() []Unit {
	return []Unit{UnitMillimetres, UnitInches}
}
