package services

import (
	"fmt"

	"github.com/custodia-labs/tiler/internal/core/domain"
	"github.com/custodia-labs/tiler/internal/core/ports/driven"
	"github.com/custodia-labs/tiler/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyPaper         = "tiling.paper"
	keyOrientation   = "tiling.orientation"
	keyGutterMM      = "tiling.gutter_mm"
	keyMaxTiles      = "tiling.max_tiles"
	keyMinPagePixels = "tiling.min_page_pixels"
	keyScaleFactor   = "scale.factor"
	keyUnits         = "display.units"
	keyDPI           = "display.dpi"

	keyCalPortraitH  = "calibration.portrait.horizontal_mm"
	keyCalPortraitV  = "calibration.portrait.vertical_mm"
	keyCalLandscapeH = "calibration.landscape.horizontal_mm"
	keyCalLandscapeV = "calibration.landscape.vertical_mm"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Missing or invalid stored values fall back to defaults.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		Tiling: domain.TilingSettings{
			PaperName:     s.getPaper(defaults.Tiling.PaperName),
			Orientation:   s.getOrientation(defaults.Tiling.Orientation),
			GutterMM:      s.getNonNegative(keyGutterMM, defaults.Tiling.GutterMM),
			MaxTiles:      s.getInt(keyMaxTiles, defaults.Tiling.MaxTiles),
			MinPagePixels: s.getNonNegative(keyMinPagePixels, defaults.Tiling.MinPagePixels),
		},
		Calibration: domain.CalibrationSettings{
			Portrait: domain.PrintCalibration{
				HorizontalMM: s.getNonNegative(keyCalPortraitH, 0),
				VerticalMM:   s.getNonNegative(keyCalPortraitV, 0),
			},
			Landscape: domain.PrintCalibration{
				HorizontalMM: s.getNonNegative(keyCalLandscapeH, 0),
				VerticalMM:   s.getNonNegative(keyCalLandscapeV, 0),
			},
		},
		Display: domain.DisplaySettings{
			Units: s.getUnit(defaults.Display.Units),
			DPI:   s.getInt(keyDPI, defaults.Display.DPI),
		},
		Scale: s.getScale(),
	}

	return settings, nil
}

// Save validates and persists application settings.
func (s *SettingsService) Save(settings *domain.Settings) error {
	if settings == nil {
		return fmt.Errorf("%w: nil settings", domain.ErrInvalidInput)
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	values := map[string]any{
		keyPaper:         settings.Tiling.PaperName,
		keyOrientation:   settings.Tiling.Orientation.String(),
		keyGutterMM:      settings.Tiling.GutterMM,
		keyMaxTiles:      settings.Tiling.MaxTiles,
		keyMinPagePixels: settings.Tiling.MinPagePixels,
		keyCalPortraitH:  settings.Calibration.Portrait.HorizontalMM,
		keyCalPortraitV:  settings.Calibration.Portrait.VerticalMM,
		keyCalLandscapeH: settings.Calibration.Landscape.HorizontalMM,
		keyCalLandscapeV: settings.Calibration.Landscape.VerticalMM,
		keyUnits:         settings.Display.Units.String(),
		keyDPI:           settings.Display.DPI,
		keyScaleFactor:   float64(settings.Scale),
	}
	if err := s.configStore.SetMany(values); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	return nil
}

// SetScale stores a scale factor. An invalid scale leaves the stored
// value untouched.
func (s *SettingsService) SetScale(scale domain.ScaleFactor) error {
	if err := scale.Validate(); err != nil {
		return err
	}
	return s.update(func(settings *domain.Settings) {
		settings.Scale = scale
	})
}

// ClearScale forgets the stored scale factor.
func (s *SettingsService) ClearScale() error {
	return s.update(func(settings *domain.Settings) {
		settings.Scale = 0
	})
}

// SetPaper updates the paper size by catalogue name.
func (s *SettingsService) SetPaper(name string) error {
	paper, err := domain.LookupPaper(name)
	if err != nil {
		return err
	}
	return s.update(func(settings *domain.Settings) {
		settings.Tiling.PaperName = paper.Name
	})
}

// SetOrientation updates the page orientation.
func (s *SettingsService) SetOrientation(o domain.Orientation) error {
	if !o.IsValid() {
		return fmt.Errorf("%w: orientation %q", domain.ErrInvalidInput, o)
	}
	return s.update(func(settings *domain.Settings) {
		settings.Tiling.Orientation = o
	})
}

// SetGutter updates the gutter width.
func (s *SettingsService) SetGutter(mm float64) error {
	if !isFinite(mm) || mm < 0 {
		return fmt.Errorf("%w: gutter must be >= 0 mm, got %v", domain.ErrInvalidInput, mm)
	}
	return s.update(func(settings *domain.Settings) {
		settings.Tiling.GutterMM = mm
	})
}

// SetUnits updates the display unit.
func (s *SettingsService) SetUnits(u domain.Unit) error {
	if !u.IsValid() {
		return fmt.Errorf("%w: unit %q", domain.ErrInvalidInput, u)
	}
	return s.update(func(settings *domain.Settings) {
		settings.Display.Units = u
	})
}

// SetCalibration stores the printer insets for portrait or landscape.
func (s *SettingsService) SetCalibration(o domain.Orientation, c domain.PrintCalibration) error {
	if o != domain.OrientationPortrait && o != domain.OrientationLandscape {
		return fmt.Errorf("%w: calibration orientation must be portrait or landscape, got %q",
			domain.ErrInvalidInput, o)
	}
	if err := c.Validate(); err != nil {
		return err
	}
	return s.update(func(settings *domain.Settings) {
		if o == domain.OrientationLandscape {
			settings.Calibration.Landscape = c
		} else {
			settings.Calibration.Portrait = c
		}
	})
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

func (s *SettingsService) update(apply func(*domain.Settings)) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	apply(settings)
	return s.Save(settings)
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	val := s.configStore.GetInt(key)
	if val < 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getNonNegative(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	val := s.configStore.GetFloat(key)
	if !isFinite(val) || val < 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getPaper(defaultVal string) string {
	val := s.configStore.GetString(keyPaper)
	if val == "" {
		return defaultVal
	}
	paper, err := domain.LookupPaper(val)
	if err != nil {
		return defaultVal
	}
	return paper.Name
}

func (s *SettingsService) getOrientation(defaultVal domain.Orientation) domain.Orientation {
	val := s.configStore.GetString(keyOrientation)
	if val == "" {
		return defaultVal
	}
	o := domain.Orientation(val)
	if !o.IsValid() {
		return defaultVal
	}
	return o
}

func (s *SettingsService) getUnit(defaultVal domain.Unit) domain.Unit {
	val := s.configStore.GetString(keyUnits)
	if val == "" {
		return defaultVal
	}
	u, err := domain.ParseUnit(val)
	if err != nil {
		return defaultVal
	}
	return u
}

func (s *SettingsService) getScale() domain.ScaleFactor {
	scale := domain.ScaleFactor(s.configStore.GetFloat(keyScaleFactor))
	if !scale.IsSet() {
		return 0
	}
	return scale
}
