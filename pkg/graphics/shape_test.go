package graphics

import (
	"math"
	"testing"
)

func TestInterpolateShape_Boundaries(t *testing.T) {
	src := RoundedRect(RectFromLTWH(0, 0, 100, 60), 8)
	dst := Circle(Offset{X: 200, Y: 200}, 40)

	if got := InterpolateShape(src, dst, 0); got != src {
		t.Errorf("t=0: got %+v, want source", got)
	}
	if got := InterpolateShape(src, dst, 1); got != dst {
		t.Errorf("t=1: got %+v, want target", got)
	}
	// Out-of-range progress clamps to the endpoints.
	if got := InterpolateShape(src, dst, -0.5); got != src {
		t.Errorf("t=-0.5: got %+v, want source", got)
	}
	if got := InterpolateShape(src, dst, 1.5); got != dst {
		t.Errorf("t=1.5: got %+v, want target", got)
	}
}

func TestInterpolateShape_Midpoint(t *testing.T) {
	src := RoundedRect(RectFromLTWH(0, 0, 100, 100), 0)
	dst := RoundedRect(RectFromLTWH(100, 100, 200, 200), 40)
	mid := InterpolateShape(src, dst, 0.5)

	wantBounds := RectFromLTWH(50, 50, 150, 150)
	if mid.Bounds != wantBounds {
		t.Errorf("midpoint bounds = %+v, want %+v", mid.Bounds, wantBounds)
	}
	if math.Abs(mid.CornerRadius-20) > 1e-9 {
		t.Errorf("midpoint corner radius = %v, want 20", mid.CornerRadius)
	}
}

func TestInterpolateShape_CornerRadiusCapped(t *testing.T) {
	// A large-radius circle morphing into a thin strip: intermediate
	// radii must never exceed half the smaller side.
	src := Circle(Offset{X: 50, Y: 50}, 50)
	dst := RoundedRect(RectFromLTWH(0, 0, 300, 10), 5)
	for i := 0; i <= 10; i++ {
		s := InterpolateShape(src, dst, float64(i)/10)
		max := math.Min(s.Bounds.Width(), s.Bounds.Height()) * 0.5
		if s.CornerRadius > max+1e-9 {
			t.Fatalf("t=%v: corner radius %v exceeds cap %v", float64(i)/10, s.CornerRadius, max)
		}
	}
}

func TestShapeConstructors(t *testing.T) {
	c := Circle(Offset{X: 10, Y: 20}, 5)
	if c.Bounds != RectFromLTWH(5, 15, 10, 10) || c.CornerRadius != 5 {
		t.Errorf("circle = %+v", c)
	}
	pill := Capsule(RectFromLTWH(0, 0, 100, 40))
	if pill.CornerRadius != 20 {
		t.Errorf("capsule radius = %v, want 20", pill.CornerRadius)
	}
}
