package domain

import "time"

// Project is a saved tiling session: a document, its calibration and
// the page layout chosen for it.
type Project struct {
	// ID is the unique identifier for the project.
	ID string `json:"id"`

	// Name is the human-readable name.
	Name string `json:"name"`

	// DocumentPath is the location of the source drawing.
	DocumentPath string `json:"document_path"`

	// DocWidth and DocHeight are the document size in pixels.
	DocWidth  float64 `json:"doc_width"`
	DocHeight float64 `json:"doc_height"`

	// Scale is the calibrated scale factor. Zero means not calibrated.
	Scale ScaleFactor `json:"scale"`

	// Reference is the calibration the scale was derived from, if any.
	Reference *Reference `json:"reference,omitempty"`

	// PaperName, Orientation and GutterMM snapshot the page layout.
	PaperName   string      `json:"paper"`
	Orientation Orientation `json:"orientation"`
	GutterMM    float64     `json:"gutter_mm"`

	// CreatedAt is when the project was first saved.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the project was last saved.
	UpdatedAt time.Time `json:"updated_at"`
}

// IsCalibrated returns true if the project has a usable scale.
func (p Project) IsCalibrated() bool {
	return p.Scale.IsSet()
}
