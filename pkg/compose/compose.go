// Package compose combines a resolved rendering strategy with derived
// material parameters into the final render specification a render
// sink consumes.
package compose

import (
	"github.com/go-glass/glass/pkg/capability"
	"github.com/go-glass/glass/pkg/graphics"
	"github.com/go-glass/glass/pkg/material"
)

// LayerKind identifies one fill layer of a glass surface.
type LayerKind int

const (
	// LayerNativeEffect delegates the whole surface to the platform
	// compositor's glass effect.
	LayerNativeEffect LayerKind = iota
	// LayerBlur is a backdrop blur layer.
	LayerBlur
	// LayerTint is a translucent color wash over the blur.
	LayerTint
	// LayerHighlight is an edge-highlight stroke on top of the tint.
	LayerHighlight
	// LayerSolidFill is a flat opaque-ish fill with no blur.
	LayerSolidFill
)

// String returns a human-readable representation of the layer kind.
func (k LayerKind) String() string {
	switch k {
	case LayerNativeEffect:
		return "native-effect"
	case LayerBlur:
		return "blur"
	case LayerTint:
		return "tint"
	case LayerHighlight:
		return "highlight"
	case LayerSolidFill:
		return "solid-fill"
	default:
		return "unknown"
	}
}

// Layer is one entry of a surface's fill stack. Fields are meaningful
// per kind: BlurRadius for blur layers, Color/Opacity for the rest.
type Layer struct {
	Kind       LayerKind
	BlurRadius float64
	Saturation float64
	Color      graphics.Color
	Opacity    float64
}

// RenderSpec is the complete, strategy-resolved description of one
// glass surface. The render sink must treat it as a read-only snapshot.
type RenderSpec struct {
	Strategy capability.RenderingStrategy
	Shape    graphics.Shape

	// FillLayers are drawn bottom-up in slice order. For emulated
	// strategies the order is fixed (blur beneath tint beneath
	// highlight); reordering breaks the translucency illusion.
	FillLayers []Layer

	BorderColor graphics.Color
	BorderWidth float64
	Shadow      graphics.BoxShadow
}

// strategyStyle is the fixed per-strategy border and shadow policy.
// Richer strategies get larger, softer shadows; fallbacks stay cheap.
type strategyStyle struct {
	borderWidth   float64
	borderAlpha   float64
	shadowRadius  float64
	shadowOpacity float64
	shadowOffsetY float64
}

var styleTable = map[capability.RenderingStrategy]strategyStyle{
	capability.StrategyNative:     {borderWidth: 1.0, borderAlpha: 0.35, shadowRadius: 24, shadowOpacity: 0.25, shadowOffsetY: 8},
	capability.StrategyMaterial:   {borderWidth: 1.0, borderAlpha: 0.30, shadowRadius: 18, shadowOpacity: 0.22, shadowOffsetY: 6},
	capability.StrategyBlurEffect: {borderWidth: 0.5, borderAlpha: 0.25, shadowRadius: 10, shadowOpacity: 0.18, shadowOffsetY: 4},
	capability.StrategySolidColor: {borderWidth: 0.5, borderAlpha: 0.20, shadowRadius: 4, shadowOpacity: 0.12, shadowOffsetY: 2},
}

// highlightAlpha is the opacity of the edge-highlight stroke layer.
const highlightAlpha = 0.4

// Compose produces the RenderSpec for one surface. It is deterministic:
// the same strategy, parameters and shape always yield the same spec.
func Compose(strategy capability.RenderingStrategy, params material.Params, shape graphics.Shape) RenderSpec {
	style := styleTable[strategy]
	tuning := capability.TuningFor(strategy)

	spec := RenderSpec{
		Strategy:    strategy,
		Shape:       shape,
		BorderColor: borderColorFor(params, style.borderAlpha),
		BorderWidth: style.borderWidth,
		Shadow: graphics.BoxShadow{
			Color:      graphics.ColorBlack,
			Offset:     graphics.Offset{X: 0, Y: style.shadowOffsetY},
			BlurRadius: style.shadowRadius,
			Opacity:    style.shadowOpacity,
		},
	}

	switch strategy {
	case capability.StrategyNative:
		spec.FillLayers = []Layer{{
			Kind:       LayerNativeEffect,
			BlurRadius: params.BlurRadius,
			Saturation: params.Saturation,
			Color:      params.TintColor,
			Opacity:    params.Opacity,
		}}
	case capability.StrategyMaterial, capability.StrategyBlurEffect:
		blur := params.BlurRadius
		if max := tuning.RecommendedBlurRadius; blur > max {
			blur = max
		}
		layers := []Layer{
			{Kind: LayerBlur, BlurRadius: blur, Saturation: params.Saturation},
			{Kind: LayerTint, Color: params.TintColor, Opacity: params.Opacity},
		}
		if tuning.SupportsHighlight {
			layers = append(layers, Layer{
				Kind:    LayerHighlight,
				Color:   graphics.ColorWhite,
				Opacity: highlightAlpha,
			})
		}
		spec.FillLayers = layers
	case capability.StrategySolidColor:
		spec.FillLayers = []Layer{{
			Kind:    LayerSolidFill,
			Color:   fallbackFill(params),
			Opacity: 1,
		}}
	}
	return spec
}

// borderColorFor picks a hairline color that reads against the tint:
// light tints get a white hairline, dark tints a black one. The alpha
// comes from the per-strategy style policy.
func borderColorFor(params material.Params, alpha float64) graphics.Color {
	if params.TintColor.Luminance() < 0.5 && params.TintColor.Alpha() > 0 {
		return graphics.ColorBlack.WithAlpha(alpha)
	}
	return graphics.ColorWhite.WithAlpha(alpha)
}

// fallbackFill approximates the material as a flat color for the
// solid-color strategy: the tint flattened toward an opaque neutral.
func fallbackFill(params material.Params) graphics.Color {
	base := graphics.RGB(0xF2, 0xF2, 0xF2)
	if params.TintColor.Luminance() < 0.5 && params.TintColor.Alpha() > 0 {
		base = graphics.RGB(0x20, 0x20, 0x24)
	}
	mixed := graphics.LerpColor(base, params.TintColor, params.TintColor.Alpha())
	return mixed.WithAlpha(1)
}
