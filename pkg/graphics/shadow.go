package graphics

// BoxShadow defines a shadow to draw around a shape.
//
// BlurRadius controls softness. Sigma for a Gaussian mask is
// BlurRadius * 0.5.
type BoxShadow struct {
	Color      Color
	Offset     Offset
	BlurRadius float64
	Opacity    float64
}

// Sigma returns the blur sigma for a Gaussian mask filter.
// Returns 0 if BlurRadius is not positive.
func (s BoxShadow) Sigma() float64 {
	if s.BlurRadius <= 0 {
		return 0
	}
	return s.BlurRadius * 0.5
}

// NewBoxShadow creates a simple drop shadow with the given color, blur
// radius and opacity. Offset defaults to (0, 2) for a subtle downward
// shadow.
func NewBoxShadow(color Color, blurRadius, opacity float64) BoxShadow {
	return BoxShadow{
		Color:      color,
		Offset:     Offset{X: 0, Y: 2},
		BlurRadius: blurRadius,
		Opacity:    clamp01(opacity),
	}
}
