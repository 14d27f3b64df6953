package domain

import "math"

// Point is a position in document pixel space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance returns the Euclidean distance to another point.
func (p Point) Distance(other Point) float64 {
	dx := other.X - p.X
	dy := other.Y - p.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Rect is an axis-aligned rectangle in document pixel space.
// It is half-open: it contains its left and top edges but not its
// right and bottom edges, so adjacent rectangles never share a pixel.
type Rect struct {
	X      float64 `json:"x"` // Left
	Y      float64 `json:"y"` // Top (image coordinate system, y grows downwards)
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Right returns the right edge X coordinate (exclusive).
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the bottom edge Y coordinate (exclusive).
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Area returns the area of the rectangle.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() &&
		p.Y >= r.Y && p.Y < r.Bottom()
}

// Overlaps reports whether the two rectangles share a positive area.
// Rectangles that only touch along an edge do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Bottom() && other.Y < r.Bottom()
}

// IsValid returns true if the rectangle has positive dimensions.
func (r Rect) IsValid() bool {
	return r.Width > 0 && r.Height > 0
}

// Edges is a half-open box [Left, Right) x [Top, Bottom) stored by its
// edges rather than origin and size. Two boxes built from the same edge
// value meet exactly, with no gap or overlap from float rounding.
type Edges struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// Contains reports whether p lies inside the box.
func (e Edges) Contains(p Point) bool {
	return p.X >= e.Left && p.X < e.Right &&
		p.Y >= e.Top && p.Y < e.Bottom
}

// Overlaps reports whether the two boxes share a positive area.
func (e Edges) Overlaps(other Edges) bool {
	return e.Left < other.Right && other.Left < e.Right &&
		e.Top < other.Bottom && other.Top < e.Bottom
}

// Rect converts the box to origin and size.
func (e Edges) Rect() Rect {
	return Rect{X: e.Left, Y: e.Top, Width: e.Right - e.Left, Height: e.Bottom - e.Top}
}
