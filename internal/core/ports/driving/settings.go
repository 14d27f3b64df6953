package driving

import "github.com/custodia-labs/tiler/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.Settings, error)

	// Save persists application settings.
	Save(settings *domain.Settings) error

	// SetScale stores a calibrated scale factor.
	SetScale(scale domain.ScaleFactor) error

	// ClearScale forgets the stored scale factor.
	ClearScale() error

	// SetPaper updates the paper size by catalogue name.
	SetPaper(name string) error

	// SetOrientation updates the page orientation.
	SetOrientation(o domain.Orientation) error

	// SetGutter updates the gutter width in millimetres.
	SetGutter(mm float64) error

	// SetUnits updates the display unit.
	SetUnits(u domain.Unit) error

	// SetCalibration stores the printer insets for one orientation.
	SetCalibration(o domain.Orientation, c domain.PrintCalibration) error

	// GetDefaults returns default settings.
	GetDefaults() domain.Settings
}
