package domain

import (
	"fmt"
	"math"
)

// landscapeAspect is the page aspect ratio above which a grid prints
// better in landscape.
const landscapeAspect = 1.2

// PageSpec describes one printed page in document pixels.
type PageSpec struct {
	// Width and Height are the full page size in pixels.
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// Gutter is the non-printable inset on each of the four sides.
	Gutter float64 `json:"gutter"`

	// Orientation selects the printer calibration only.
	// It has no effect on the tiling.
	Orientation Orientation `json:"orientation"`
}

// DrawableWidth returns the page width inside the gutters.
func (p PageSpec) DrawableWidth() float64 {
	return p.Width - 2*p.Gutter
}

// DrawableHeight returns the page height inside the gutters.
func (p PageSpec) DrawableHeight() float64 {
	return p.Height - 2*p.Gutter
}

// Validate checks the page against a document of the given size.
// Every failure wraps ErrInvalidTilingConfig.
func (p PageSpec) Validate(docWidth, docHeight float64) error {
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"page width", p.Width},
		{"page height", p.Height},
		{"document width", docWidth},
		{"document height", docHeight},
	} {
		if !isFinite(v.value) || v.value <= 0 {
			return fmt.Errorf("%w: %s must be > 0, got %v", ErrInvalidTilingConfig, v.name, v.value)
		}
	}
	if !isFinite(p.Gutter) || p.Gutter < 0 {
		return fmt.Errorf("%w: gutter must be >= 0, got %v", ErrInvalidTilingConfig, p.Gutter)
	}
	if 2*p.Gutter >= p.Width {
		return fmt.Errorf("%w: gutter %v leaves no drawable width on a %v px page",
			ErrInvalidTilingConfig, p.Gutter, p.Width)
	}
	if 2*p.Gutter >= p.Height {
		return fmt.Errorf("%w: gutter %v leaves no drawable height on a %v px page",
			ErrInvalidTilingConfig, p.Gutter, p.Height)
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Tile is one printed page positioned in document pixel space.
type Tile struct {
	// X and Y are the page origin. They are negative for the first
	// row and column when the gutter is non-zero.
	X float64 `json:"x"`
	Y float64 `json:"y"`

	// Width and Height are the full page size, identical for every tile.
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	// Row and Col are 0-based grid indices.
	Row int `json:"row"`
	Col int `json:"col"`

	// Gutter is the inset on each side of the page.
	Gutter float64 `json:"gutter"`

	// Area is the drawable area. Its edges are the grid lines at
	// index*step, shared exactly with the neighbouring tiles.
	Area Edges `json:"drawable"`
}

// NewTile places a page so that its drawable area is exactly area.
// The page origin sits one gutter outside the area's top-left corner.
func NewTile(row, col int, area Edges, page PageSpec) Tile {
	return Tile{
		X:      area.Left - page.Gutter,
		Y:      area.Top - page.Gutter,
		Width:  page.Width,
		Height: page.Height,
		Row:    row,
		Col:    col,
		Gutter: page.Gutter,
		Area:   area,
	}
}

// DrawableX returns the left edge of the drawable area.
func (t Tile) DrawableX() float64 {
	return t.Area.Left
}

// DrawableY returns the top edge of the drawable area.
func (t Tile) DrawableY() float64 {
	return t.Area.Top
}

// DrawableWidth returns the width of the drawable area.
func (t Tile) DrawableWidth() float64 {
	return t.Area.Right - t.Area.Left
}

// DrawableHeight returns the height of the drawable area.
func (t Tile) DrawableHeight() float64 {
	return t.Area.Bottom - t.Area.Top
}

// Page returns the full page rectangle.
func (t Tile) Page() Rect {
	return Rect{X: t.X, Y: t.Y, Width: t.Width, Height: t.Height}
}

// Drawable returns the drawable rectangle for display. Use Area for
// containment tests, since origin plus width can round past the edge.
func (t Tile) Drawable() Rect {
	return t.Area.Rect()
}

// Label returns a short 1-based label such as "R1C2" for page indicators.
func (t Tile) Label() string {
	return fmt.Sprintf("R%dC%d", t.Row+1, t.Col+1)
}

// TileGrid is the ordered, row-major set of pages covering a document.
type TileGrid struct {
	DocWidth  float64  `json:"doc_width"`
	DocHeight float64  `json:"doc_height"`
	Page      PageSpec `json:"page"`
	Rows      int      `json:"rows"`
	Cols      int      `json:"cols"`
	Tiles     []Tile   `json:"tiles"`
}

// Len returns the number of tiles.
func (g *TileGrid) Len() int {
	return len(g.Tiles)
}

// At returns the tile at the given row and column.
func (g *TileGrid) At(row, col int) (Tile, bool) {
	if row < 0 || col < 0 || row >= g.Rows || col >= g.Cols {
		return Tile{}, false
	}
	i := row*g.Cols + col
	if i >= len(g.Tiles) {
		return Tile{}, false
	}
	return g.Tiles[i], true
}

// Number returns the 1-based print order of the tile at row, col.
func (g *TileGrid) Number(row, col int) int {
	return row*g.Cols + col + 1
}

// Covering returns the tiles whose drawable area contains p.
// For a point inside the document this is always exactly one tile.
func (g *TileGrid) Covering(p Point) []Tile {
	var out []Tile
	for _, t := range g.Tiles {
		if t.Area.Contains(p) {
			out = append(out, t)
		}
	}
	return out
}

// PrintOrientation picks the printer orientation for the grid's pages:
// landscape when pages are clearly wider than tall, portrait otherwise.
func (g *TileGrid) PrintOrientation() Orientation {
	if g.Page.Width <= 0 || g.Page.Height <= 0 {
		return OrientationPortrait
	}
	if g.Page.Width/g.Page.Height > landscapeAspect {
		return OrientationLandscape
	}
	return OrientationPortrait
}
