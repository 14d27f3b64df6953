package domain

import (
	"fmt"
	"math"
)

const unknownDescription = "Unknown"

// Default settings values.
const (
	DefaultPaperName     = "A4"
	DefaultGutterMM      = 10.0
	DefaultDPI           = 300
	DefaultMaxTiles      = 100
	DefaultMinPagePixels = 50.0
)

// TilingSettings holds the page layout used to build grids.
type TilingSettings struct {
	// PaperName is a catalogue name such as "A4" or "Letter".
	PaperName string

	// Orientation is the requested page orientation.
	Orientation Orientation

	// GutterMM is the non-printable inset on each side, in millimetres.
	GutterMM float64

	// MaxTiles bounds the number of pages a single grid may produce.
	// Zero disables the bound.
	MaxTiles int

	// MinPagePixels is the smallest page edge, in document pixels,
	// accepted before a grid is built.
	MinPagePixels float64
}

// CalibrationSettings holds the printer insets for both orientations.
type CalibrationSettings struct {
	Portrait  PrintCalibration
	Landscape PrintCalibration
}

// For returns the calibration for a resolved orientation.
// Auto falls back to portrait.
func (c CalibrationSettings) For(o Orientation) PrintCalibration {
	if o == OrientationLandscape {
		return c.Landscape
	}
	return c.Portrait
}

// DisplaySettings holds presentation preferences.
type DisplaySettings struct {
	// Units is the unit measurements are shown in.
	Units Unit

	// DPI converts vector document sizes (PDF points) to pixels.
	DPI int
}

// Settings holds all application settings.
type Settings struct {
	// Tiling holds page layout settings.
	Tiling TilingSettings

	// Calibration holds per-orientation printer insets.
	Calibration CalibrationSettings

	// Display holds presentation preferences.
	Display DisplaySettings

	// Scale is the last applied scale factor. Zero means not set.
	Scale ScaleFactor
}

// DefaultSettings returns settings with sensible defaults.
// The scale is left unset: it must come from a calibration.
func DefaultSettings() Settings {
	return Settings{
		Tiling: TilingSettings{
			PaperName:     DefaultPaperName,
			Orientation:   OrientationAuto,
			GutterMM:      DefaultGutterMM,
			MaxTiles:      DefaultMaxTiles,
			MinPagePixels: DefaultMinPagePixels,
		},
		Display: DisplaySettings{
			Units: UnitMillimetres,
			DPI:   DefaultDPI,
		},
	}
}

// Paper returns the configured paper laid out in the configured orientation.
func (s Settings) Paper() (PaperSize, error) {
	p, err := LookupPaper(s.Tiling.PaperName)
	if err != nil {
		return PaperSize{}, err
	}
	return p.Oriented(s.Tiling.Orientation), nil
}

// Validate checks the settings for internal consistency.
func (s Settings) Validate() error {
	if _, err := LookupPaper(s.Tiling.PaperName); err != nil {
		return err
	}
	if !s.Tiling.Orientation.IsValid() {
		return fmt.Errorf("%w: orientation %q", ErrInvalidInput, s.Tiling.Orientation)
	}
	if math.IsNaN(s.Tiling.GutterMM) || s.Tiling.GutterMM < 0 {
		return fmt.Errorf("%w: gutter must be >= 0 mm", ErrInvalidInput)
	}
	if s.Tiling.MaxTiles < 0 {
		return fmt.Errorf("%w: max tiles must be >= 0", ErrInvalidInput)
	}
	if err := s.Calibration.Portrait.Validate(); err != nil {
		return fmt.Errorf("portrait calibration: %w", err)
	}
	if err := s.Calibration.Landscape.Validate(); err != nil {
		return fmt.Errorf("landscape calibration: %w", err)
	}
	if !s.Display.Units.IsValid() {
		return fmt.Errorf("%w: unit %q", ErrInvalidInput, s.Display.Units)
	}
	if s.Display.DPI <= 0 {
		return fmt.Errorf("%w: dpi must be > 0", ErrInvalidInput)
	}
	if s.Scale != 0 {
		if err := s.Scale.Validate(); err != nil {
			return err
		}
	}
	return nil
}
