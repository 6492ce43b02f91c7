// Package material maps glass material descriptors to the derived
// visual parameters a compositor consumes: blur radius, tint color,
// saturation boost and surface opacity.
package material

import (
	"github.com/go-glass/glass/pkg/errors"
	"github.com/go-glass/glass/pkg/graphics"
)

// Variant identifies a glass material family.
type Variant int

const (
	// VariantClear is nearly transparent glass with a light blur.
	VariantClear Variant = iota
	// VariantFrosted is heavily blurred, milky glass.
	VariantFrosted
	// VariantTinted is frosted glass washed with a caller-supplied color.
	VariantTinted
	// VariantDark is glass tuned for dark backdrops.
	VariantDark
	// VariantCustom passes caller-supplied parameters through unchanged.
	VariantCustom
)

// String returns a human-readable representation of the variant.
func (v Variant) String() string {
	switch v {
	case VariantClear:
		return "clear"
	case VariantFrosted:
		return "frosted"
	case VariantTinted:
		return "tinted"
	case VariantDark:
		return "dark"
	case VariantCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Params are the derived visual parameters of a material.
type Params struct {
	// BlurRadius is the backdrop blur radius in pixels.
	BlurRadius float64
	// TintColor is the overlay wash color, including its alpha.
	TintColor graphics.Color
	// Saturation is the backdrop saturation multiplier (1 = unchanged).
	Saturation float64
	// Opacity is the overall surface opacity in [0, 1].
	Opacity float64
}

// Descriptor is an immutable description of a glass material: a variant
// tag plus, for tinted and custom materials, the caller-supplied values.
//
// Descriptor is a comparable value type. Two descriptors are equal when
// their variant and derived numeric fields are equal, so a Descriptor
// can key a render-parameter cache directly.
type Descriptor struct {
	variant    Variant
	tint       graphics.Color
	blurRadius float64
	saturation float64
	opacity    float64
}

// Built-in variant parameter table.
var variantParams = map[Variant]Params{
	VariantClear:   {BlurRadius: 8, TintColor: graphics.ColorWhite.WithAlpha(0.05), Saturation: 1.0, Opacity: 0.15},
	VariantFrosted: {BlurRadius: 20, TintColor: graphics.ColorWhite.WithAlpha(0.25), Saturation: 1.2, Opacity: 0.45},
	VariantDark:    {BlurRadius: 20, TintColor: graphics.ColorBlack.WithAlpha(0.35), Saturation: 0.9, Opacity: 0.55},
}

// tintedParams are the fixed numeric parameters of VariantTinted; the
// tint color itself comes from the descriptor.
var tintedParams = Params{BlurRadius: 16, Saturation: 1.15, Opacity: 0.40}

// Clear returns the clear glass descriptor.
func Clear() Descriptor {
	return fromVariant(VariantClear)
}

// Frosted returns the frosted glass descriptor.
func Frosted() Descriptor {
	return fromVariant(VariantFrosted)
}

// Dark returns the dark glass descriptor.
func Dark() Descriptor {
	return fromVariant(VariantDark)
}

// Tinted returns a frosted descriptor washed with the given color.
// The color's own alpha is preserved in the tint overlay.
func Tinted(tint graphics.Color) Descriptor {
	return Descriptor{
		variant:    VariantTinted,
		tint:       tint,
		blurRadius: tintedParams.BlurRadius,
		saturation: tintedParams.Saturation,
		opacity:    tintedParams.Opacity,
	}
}

// Custom builds a descriptor from caller-supplied parameters.
// Values are passed through Derive unchanged; blurRadius must be
// non-negative and opacity must lie in [0, 1].
func Custom(blurRadius float64, tint graphics.Color, saturation, opacity float64) (Descriptor, error) {
	const op = "material.Custom"
	if blurRadius < 0 {
		return Descriptor{}, errors.Config(op, "blur radius must be non-negative, got %v", blurRadius)
	}
	if saturation < 0 {
		return Descriptor{}, errors.Config(op, "saturation must be non-negative, got %v", saturation)
	}
	if opacity < 0 || opacity > 1 {
		return Descriptor{}, errors.Config(op, "opacity must be in [0, 1], got %v", opacity)
	}
	return Descriptor{
		variant:    VariantCustom,
		tint:       tint,
		blurRadius: blurRadius,
		saturation: saturation,
		opacity:    opacity,
	}, nil
}

func fromVariant(v Variant) Descriptor {
	p := variantParams[v]
	return Descriptor{
		variant:    v,
		tint:       p.TintColor,
		blurRadius: p.BlurRadius,
		saturation: p.Saturation,
		opacity:    p.Opacity,
	}
}

// Variant returns the descriptor's variant tag.
func (d Descriptor) Variant() Variant {
	return d.variant
}

// Derive returns the derived visual parameters of the material.
// Built-in variants use the fixed table above; tinted materials keep
// their caller color; custom materials pass through unchanged.
func (d Descriptor) Derive() Params {
	return Params{
		BlurRadius: d.blurRadius,
		TintColor:  d.tint,
		Saturation: d.saturation,
		Opacity:    d.opacity,
	}
}
