package driven

// ConfigStore holds settings as flat dot-notation keys such as
// "tiling.paper" or "calibration.portrait.horizontal_mm".
type ConfigStore interface {
	// Get returns the raw value and whether the key is present.
	Get(key string) (any, bool)

	// GetString returns "" for a missing or non-string key.
	GetString(key string) string

	// GetInt returns 0 for a missing or non-numeric key.
	GetInt(key string) int

	// GetFloat returns 0 for a missing or non-numeric key.
	// Integer values are widened.
	GetFloat(key string) float64

	// Set stores a value. Persistent stores write it out immediately.
	Set(key string, value any) error

	// SetMany stores several values as one write. On failure none of
	// them is kept.
	SetMany(values map[string]any) error
}
