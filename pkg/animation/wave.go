package animation

import (
	"fmt"
	"math"
)

// WaveType selects the periodic function used for wave displacement.
type WaveType int

const (
	// WaveSine is a plain sine wave.
	WaveSine WaveType = iota
	// WaveCosine is a plain cosine wave.
	WaveCosine
	// WaveTriangle is a linear zig-zag wave.
	WaveTriangle
	// WaveSquare alternates between the positive and negative amplitude.
	WaveSquare
	// WaveSawtooth ramps up linearly and drops.
	WaveSawtooth
	// WaveDampedSine is a sine wave whose envelope decays as exp(-2x).
	WaveDampedSine
	// WaveOrganic blends three detuned sine harmonics for a natural,
	// non-repeating look.
	WaveOrganic
)

// String returns a human-readable representation of the wave type.
func (w WaveType) String() string {
	switch w {
	case WaveSine:
		return "sine"
	case WaveCosine:
		return "cosine"
	case WaveTriangle:
		return "triangle"
	case WaveSquare:
		return "square"
	case WaveSawtooth:
		return "sawtooth"
	case WaveDampedSine:
		return "damped-sine"
	case WaveOrganic:
		return "organic"
	default:
		return fmt.Sprintf("WaveType(%d)", int(w))
	}
}

// Displacement returns the wave displacement at normalized position x.
//
// x is the position along the wave in wavelength units, frequency the
// number of cycles per unit, phase an offset in radians, amplitude the
// peak displacement. Pure and stateless: animate by advancing phase per
// tick.
func Displacement(wave WaveType, x, frequency, phase, amplitude float64) float64 {
	angle := 2*math.Pi*frequency*x + phase
	switch wave {
	case WaveSine:
		return amplitude * math.Sin(angle)
	case WaveCosine:
		return amplitude * math.Cos(angle)
	case WaveTriangle:
		return amplitude * (2 / math.Pi) * math.Asin(math.Sin(angle))
	case WaveSquare:
		s := math.Sin(angle)
		switch {
		case s > 0:
			return amplitude
		case s < 0:
			return -amplitude
		default:
			return 0
		}
	case WaveSawtooth:
		cycle := frequency*x + phase/(2*math.Pi)
		return amplitude * 2 * (cycle - math.Floor(cycle+0.5))
	case WaveDampedSine:
		return amplitude * math.Sin(angle) * math.Exp(-x*2)
	case WaveOrganic:
		return amplitude * (0.5*math.Sin(angle) +
			0.3*math.Sin(2.17*angle+1.3) +
			0.2*math.Sin(3.71*angle+2.1))
	default:
		return 0
	}
}
