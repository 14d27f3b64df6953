package domain

import (
	"fmt"
	"math"
)

// ScaleFactor is the physical length, in millimetres, represented by one
// document pixel. The zero value means no scale has been established.
type ScaleFactor float64

// IsSet reports whether a scale has been established.
func (s ScaleFactor) IsSet() bool {
	return s > 0 && !math.IsInf(float64(s), 0)
}

// Validate returns ErrScaleNotSet for the zero value and ErrInvalidInput
// for negative, NaN or infinite values.
func (s ScaleFactor) Validate() error {
	f := float64(s)
	switch {
	case f == 0:
		return ErrScaleNotSet
	case math.IsNaN(f) || math.IsInf(f, 0) || f < 0:
		return fmt.Errorf("%w: scale factor %v", ErrInvalidInput, f)
	default:
		return nil
	}
}

// PixelsFor converts a physical length in millimetres to document pixels.
func (s ScaleFactor) PixelsFor(mm float64) float64 {
	return mm / float64(s)
}

// Millimetres converts a pixel length to millimetres.
func (s ScaleFactor) Millimetres(px float64) float64 {
	return px * float64(s)
}

// Ratio formats the scale as a ratio string such as "1:100.0" or "2.00:1".
func (s ScaleFactor) Ratio() string {
	if !s.IsSet() {
		return "not set"
	}
	f := float64(s)
	if f >= 1.0 {
		return fmt.Sprintf("%.2f:1", f)
	}
	return fmt.Sprintf("1:%.1f", 1.0/f)
}

// String returns the scale in mm/px.
func (s ScaleFactor) String() string {
	if !s.IsSet() {
		return "not set"
	}
	return fmt.Sprintf("%.6g mm/px", float64(s))
}

// Measurement is a pixel distance with its physical equivalents.
type Measurement struct {
	Pixels      float64 `json:"pixels"`
	Millimetres float64 `json:"millimetres"`
	Inches      float64 `json:"inches"`
}

// In returns the measurement in the requested unit.
func (m Measurement) In(u Unit) float64 {
	if u == UnitInches {
		return m.Inches
	}
	return m.Millimetres
}

// Reference is a calibration input: two picked points and the known
// physical distance between them.
type Reference struct {
	P1      Point   `json:"p1"`
	P2      Point   `json:"p2"`
	KnownMM float64 `json:"known_mm"`
}

// PixelDistance returns the pixel distance between the reference points.
func (r Reference) PixelDistance() float64 {
	return r.P1.Distance(r.P2)
}
