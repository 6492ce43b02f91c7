package graphics

import "math"

// Shape describes the outline of a glass surface: an axis-aligned
// bounding box with a uniform corner radius. A circle is a square
// bounds with radius equal to half its side; a capsule is a bounds
// with radius equal to half its height.
type Shape struct {
	Bounds       Rect
	CornerRadius float64
}

// RoundedRect creates a rounded-rectangle shape.
func RoundedRect(bounds Rect, cornerRadius float64) Shape {
	return Shape{Bounds: bounds, CornerRadius: cornerRadius}
}

// Circle creates a circular shape centered at the given point.
func Circle(center Offset, radius float64) Shape {
	return Shape{
		Bounds:       RectFromLTWH(center.X-radius, center.Y-radius, radius*2, radius*2),
		CornerRadius: radius,
	}
}

// Capsule creates a pill shape whose corner radius is half the bounds height.
func Capsule(bounds Rect) Shape {
	return Shape{Bounds: bounds, CornerRadius: bounds.Height() * 0.5}
}

// InterpolateShape produces an intermediate shape between source and
// target at progress t in [0, 1].
//
// The morph is a bounding-box lerp with a linearly interpolated corner
// radius, not a path-level vertex morph: intermediate outlines are
// rounded rectangles even when neither endpoint is one. The corner
// radius is additionally capped at half the smaller interpolated side
// so intermediate shapes stay well formed.
func InterpolateShape(source, target Shape, t float64) Shape {
	t = clamp01(t)
	bounds := LerpRect(source.Bounds, target.Bounds, t)
	radius := lerp(source.CornerRadius, target.CornerRadius, t)
	maxRadius := math.Min(bounds.Width(), bounds.Height()) * 0.5
	if radius > maxRadius {
		radius = maxRadius
	}
	if radius < 0 {
		radius = 0
	}
	return Shape{Bounds: bounds, CornerRadius: radius}
}
