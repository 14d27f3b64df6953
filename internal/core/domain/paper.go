package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Orientation selects how a paper size is laid out.
type Orientation string

// Available orientations.
const (
	// OrientationAuto uses the paper size as catalogued.
	OrientationAuto Orientation = "auto"

	// OrientationPortrait forces height >= width.
	OrientationPortrait Orientation = "portrait"

	// OrientationLandscape forces width >= height.
	OrientationLandscape Orientation = "landscape"
)

// IsValid returns true if the orientation is recognised.
func (o Orientation) IsValid() bool {
	switch o {
	case OrientationAuto, OrientationPortrait, OrientationLandscape:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (o Orientation) String() string {
	return string(o)
}

// Description returns a human-readable description of the orientation.
func (o Orientation) Description() string {
	switch o {
	case OrientationAuto:
		return "Auto (as catalogued)"
	case OrientationPortrait:
		return "Portrait"
	case OrientationLandscape:
		return "Landscape"
	default:
		return unknownDescription
	}
}

// AllOrientations returns all orientations in display order.
func AllOrientations() []Orientation {
	return []Orientation{OrientationAuto, OrientationPortrait, OrientationLandscape}
}

// PaperSize is a named physical sheet size in millimetres.
type PaperSize struct {
	Name     string  `json:"name"`
	WidthMM  float64 `json:"width_mm"`
	HeightMM float64 `json:"height_mm"`
}

// Standard paper sizes, portrait.
var (
	PaperA5      = PaperSize{"A5", 148.0, 210.0}
	PaperA4      = PaperSize{"A4", 210.0, 297.0}
	PaperA3      = PaperSize{"A3", 297.0, 420.0}
	PaperLetter  = PaperSize{"Letter", 215.9, 279.4}
	PaperLegal   = PaperSize{"Legal", 215.9, 355.6}
	PaperTabloid = PaperSize{"Tabloid", 279.4, 431.8}
)

var paperCatalogue = map[string]PaperSize{
	"a5":      PaperA5,
	"a4":      PaperA4,
	"a3":      PaperA3,
	"letter":  PaperLetter,
	"legal":   PaperLegal,
	"tabloid": PaperTabloid,
}

// LookupPaper returns the catalogued paper size with the given name.
// Matching is case-insensitive.
func LookupPaper(name string) (PaperSize, error) {
	p, ok := paperCatalogue[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return PaperSize{}, fmt.Errorf("%w: %q", ErrUnknownPaper, name)
	}
	return p, nil
}

// AllPapers returns the catalogue sorted by area, smallest first.
func AllPapers() []PaperSize {
	papers := make([]PaperSize, 0, len(paperCatalogue))
	for _, p := range paperCatalogue {
		papers = append(papers, p)
	}
	sort.Slice(papers, func(i, j int) bool {
		ai := papers[i].WidthMM * papers[i].HeightMM
		aj := papers[j].WidthMM * papers[j].HeightMM
		if ai == aj {
			return papers[i].Name < papers[j].Name
		}
		return ai < aj
	})
	return papers
}

// Oriented returns the paper laid out in the requested orientation.
// Auto leaves the catalogued dimensions unchanged.
func (p PaperSize) Oriented(o Orientation) PaperSize {
	switch o {
	case OrientationLandscape:
		if p.WidthMM < p.HeightMM {
			p.WidthMM, p.HeightMM = p.HeightMM, p.WidthMM
		}
	case OrientationPortrait:
		if p.HeightMM < p.WidthMM {
			p.WidthMM, p.HeightMM = p.HeightMM, p.WidthMM
		}
	}
	return p
}

// Orientation returns the physical orientation of the laid-out sheet.
// Square sheets are reported as portrait.
func (p PaperSize) Orientation() Orientation {
	if p.WidthMM > p.HeightMM {
		return OrientationLandscape
	}
	return OrientationPortrait
}

// String returns a description such as "A4 (210 x 297 mm)".
func (p PaperSize) String() string {
	return fmt.Sprintf("%s (%g x %g mm)", p.Name, p.WidthMM, p.HeightMM)
}

// PrintCalibration holds the measured printer insets for one orientation.
// Horizontal shrinks the usable width from the right edge and Vertical
// shrinks the usable height from the bottom edge.
type PrintCalibration struct {
	HorizontalMM float64 `json:"horizontal_mm"`
	VerticalMM   float64 `json:"vertical_mm"`
}

// Inset returns the uniform inset that covers both measured offsets.
func (c PrintCalibration) Inset() float64 {
	if c.HorizontalMM > c.VerticalMM {
		return c.HorizontalMM
	}
	return c.VerticalMM
}

// Validate checks that both offsets are non-negative.
func (c PrintCalibration) Validate() error {
	if c.HorizontalMM < 0 || c.VerticalMM < 0 {
		return fmt.Errorf("%w: calibration offsets must be >= 0", ErrInvalidInput)
	}
	return nil
}
