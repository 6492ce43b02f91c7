package animation

import (
	"math"
	"time"
)

// Curve transforms linear progress in [0, 1] into eased progress.
type Curve func(t float64) float64

// TimingCurve pairs a named easing law with its nominal duration.
//
// Every curve satisfies Apply(0) == 0 and Apply(1) == 1; intermediate
// values may overshoot [0, 1] (the spring does). The boundary guarantee
// is what makes chained animations seamless.
type TimingCurve struct {
	// Name identifies the curve ("linear", "spring", ...).
	Name string

	// Duration is the nominal duration animations using this curve
	// default to, before global speed scaling.
	Duration time.Duration

	fn Curve
}

// NewTimingCurve builds a TimingCurve from an easing function.
// A nil function behaves as linear.
func NewTimingCurve(name string, duration time.Duration, fn Curve) TimingCurve {
	return TimingCurve{Name: name, Duration: duration, fn: fn}
}

// Apply returns the eased progress for t. Input is clamped to [0, 1]
// and the boundaries are exact regardless of the underlying function.
func (tc TimingCurve) Apply(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	if tc.fn == nil {
		return t
	}
	return tc.fn(t)
}

// Named timing curves.
var (
	// Linear applies no easing.
	Linear = NewTimingCurve("linear", 300*time.Millisecond, nil)

	// EaseIn starts slowly and accelerates (cubic).
	EaseIn = NewTimingCurve("ease-in", 300*time.Millisecond, func(t float64) float64 {
		return t * t * t
	})

	// EaseOut starts quickly and decelerates (cubic).
	EaseOut = NewTimingCurve("ease-out", 300*time.Millisecond, func(t float64) float64 {
		inv := 1 - t
		return 1 - inv*inv*inv
	})

	// EaseInOut accelerates through the middle (cubic).
	EaseInOut = NewTimingCurve("ease-in-out", 350*time.Millisecond, func(t float64) float64 {
		if t < 0.5 {
			return 4 * t * t * t
		}
		inv := -2*t + 2
		return 1 - inv*inv*inv/2
	})

	// WaterPhysics approximates the heavy, viscous settle of liquid
	// glass with a fixed cubic bezier.
	WaterPhysics = NewTimingCurve("water-physics", 800*time.Millisecond, CubicBezier(0.2, 0.9, 0.3, 1.0))

	// Spring approximates an underdamped spring with a normalized
	// damped sine. It overshoots 1 before settling.
	Spring = NewTimingCurve("spring", 600*time.Millisecond, dampedSpring(6, 12))
)

// namedCurves indexes the built-in curves for lookup by name.
var namedCurves = map[string]TimingCurve{
	Linear.Name:       Linear,
	EaseIn.Name:       EaseIn,
	EaseOut.Name:      EaseOut,
	EaseInOut.Name:    EaseInOut,
	WaterPhysics.Name: WaterPhysics,
	Spring.Name:       Spring,
}

// CurveByName returns the built-in curve with the given name.
func CurveByName(name string) (TimingCurve, bool) {
	tc, ok := namedCurves[name]
	return tc, ok
}

// CubicBezier returns a cubic-bezier easing function matching CSS
// cubic-bezier(). The parameters define the two control points (x1,y1)
// and (x2,y2); the curve runs from (0,0) to (1,1).
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		// Newton-Raphson converges quickly for most values.
		for range 8 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return sampleCurve(y1, y2, clampUnit(u))
			}
			dx := sampleCurveDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Fallback to bisection to guarantee a stable solution in [0,1].
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for range 12 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}

		return sampleCurve(y1, y2, u)
	}
}

// dampedSpring builds a damped-sine easing normalized so that the
// boundaries land exactly on 0 and 1.
func dampedSpring(damping, omega float64) Curve {
	raw := func(t float64) float64 {
		return 1 - math.Exp(-damping*t)*math.Cos(omega*t)
	}
	scale := raw(1)
	return func(t float64) float64 {
		return raw(t) / scale
	}
}

func sampleCurve(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleCurveDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
