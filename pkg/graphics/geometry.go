package graphics

// Offset represents a 2D point or vector in pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// LerpOffset linearly interpolates between two offsets.
func LerpOffset(a, b Offset, t float64) Offset {
	return Offset{
		X: lerp(a.X, b.X, t),
		Y: lerp(a.Y, b.Y, t),
	}
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{
		X: (r.Left + r.Right) * 0.5,
		Y: (r.Top + r.Bottom) * 0.5,
	}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// LerpRect linearly interpolates each edge of two rectangles.
func LerpRect(a, b Rect, t float64) Rect {
	return Rect{
		Left:   lerp(a.Left, b.Left, t),
		Top:    lerp(a.Top, b.Top, t),
		Right:  lerp(a.Right, b.Right, t),
		Bottom: lerp(a.Bottom, b.Bottom, t),
	}
}

// lerp linearly interpolates between two float64 values.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Lerp linearly interpolates between two float64 values.
func Lerp(a, b, t float64) float64 {
	return lerp(a, b, t)
}
