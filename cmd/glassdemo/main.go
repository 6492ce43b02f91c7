// Command glassdemo renders glass surfaces, ripples and waves with an
// ebiten window acting as the render sink and animation clock.
//
// Click to spawn ripples; press space to run the intro sequence; press
// 1-4 to force a rendering strategy.
package main

import (
	"image/color"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/go-glass/glass/pkg/animation"
	"github.com/go-glass/glass/pkg/capability"
	"github.com/go-glass/glass/pkg/compose"
	"github.com/go-glass/glass/pkg/graphics"
	"github.com/go-glass/glass/pkg/material"
	"github.com/go-glass/glass/pkg/ripple"
)

const (
	screenWidth  = 800
	screenHeight = 600
	frameDelta   = time.Second / 60
)

type card struct {
	preset string
	shape  graphics.Shape
}

type game struct {
	strategy   capability.RenderingStrategy
	presets    map[string]material.Descriptor
	cards      []card
	controller *animation.Controller
	hero       *animation.State
	ripples    *ripple.Manager
	wavePhase  float64
}

func newGame() *game {
	// The demo has no live platform to inspect; emulate a runtime that
	// exposes a layered-material primitive.
	strategy, _ := capability.Resolve(capability.Snapshot{
		OS:              "linux",
		LayeredMaterial: true,
		BlurEffect:      true,
	})

	controller := animation.NewController()
	hero, err := animation.NewState(900 * time.Millisecond)
	if err != nil {
		log.Fatal(err)
	}
	hero.Curve = animation.WaterPhysics
	controller.Register("hero", hero)

	glow, err := animation.NewState(400 * time.Millisecond)
	if err != nil {
		log.Fatal(err)
	}
	glow.Curve = animation.Spring
	controller.Register("glow", glow)

	ripples, err := ripple.NewManager(8, ripple.DefaultConfig())
	if err != nil {
		log.Fatal(err)
	}

	return &game{
		strategy:   strategy,
		presets:    material.DefaultPresets(),
		controller: controller,
		hero:       hero,
		ripples:    ripples,
		cards: []card{
			{preset: "card", shape: graphics.RoundedRect(graphics.RectFromLTWH(60, 60, 220, 140), 24)},
			{preset: "sheet", shape: graphics.RoundedRect(graphics.RectFromLTWH(320, 60, 220, 140), 24)},
			{preset: "accent", shape: graphics.RoundedRect(graphics.RectFromLTWH(580, 60, 160, 140), 24)},
		},
	}
}

func (g *game) Update() error {
	// Ripples completed last frame have had their terminal render pass.
	g.ripples.Cleanup()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.ripples.Trigger(graphics.Offset{X: float64(x), Y: float64(y)})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.controller.PlaySequence(animation.NewSequence(
			animation.Animate("hero"),
			animation.Delay(200*time.Millisecond),
			animation.Parallel("hero", "glow"),
			animation.Reset("hero"),
		), "intro")
	}
	for key, strategy := range map[ebiten.Key]capability.RenderingStrategy{
		ebiten.Key1: capability.StrategyNative,
		ebiten.Key2: capability.StrategyMaterial,
		ebiten.Key3: capability.StrategyBlurEffect,
		ebiten.Key4: capability.StrategySolidColor,
	} {
		if inpututil.IsKeyJustPressed(key) {
			g.strategy = strategy
		}
	}

	g.controller.Tick(frameDelta)
	g.ripples.Tick(frameDelta)
	g.wavePhase += 2 * math.Pi * frameDelta.Seconds() * 0.6
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{R: 0x22, G: 0x2A, B: 0x3A, A: 0xFF})

	for _, c := range g.cards {
		desc := g.presets[c.preset]
		shape := c.shape
		if c.preset == "card" {
			// The hero state morphs the first card toward a capsule.
			target := graphics.Capsule(shape.Bounds)
			shape = graphics.InterpolateShape(shape, target, g.hero.EasedProgress())
		}
		spec := compose.Compose(g.strategy, desc.Derive(), shape)
		drawSpec(screen, spec)
	}

	g.drawWave(screen)
	g.drawRipples(screen)

	ebitenutil.DebugPrint(screen, "strategy: "+g.strategy.String()+
		"  [click] ripple  [space] sequence  [1-4] strategy")
}

// drawSpec paints a RenderSpec bottom-up. Blur layers are approximated
// with a translucent frost fill; a real sink would composite a backdrop
// blur there.
func drawSpec(dst *ebiten.Image, spec compose.RenderSpec) {
	b := spec.Shape.Bounds
	x, y := float32(b.Left), float32(b.Top)
	w, h := float32(b.Width()), float32(b.Height())

	// Shadow behind everything.
	shadow := spec.Shadow
	vector.DrawFilledRect(dst,
		x+float32(shadow.Offset.X), y+float32(shadow.Offset.Y), w, h,
		toNRGBA(shadow.Color, shadow.Opacity*0.5), true)

	for _, layer := range spec.FillLayers {
		switch layer.Kind {
		case compose.LayerNativeEffect, compose.LayerBlur:
			frost := math.Min(layer.BlurRadius/48, 0.5)
			vector.DrawFilledRect(dst, x, y, w, h, toNRGBA(graphics.ColorWhite, frost), true)
		case compose.LayerTint:
			vector.DrawFilledRect(dst, x, y, w, h, toNRGBA(layer.Color, layer.Opacity), true)
		case compose.LayerHighlight:
			vector.StrokeRect(dst, x+1, y+1, w-2, h-2, 1, toNRGBA(layer.Color, layer.Opacity), true)
		case compose.LayerSolidFill:
			vector.DrawFilledRect(dst, x, y, w, h, toNRGBA(layer.Color, layer.Opacity), true)
		}
	}

	if spec.BorderWidth > 0 {
		vector.StrokeRect(dst, x, y, w, h, float32(spec.BorderWidth),
			toNRGBA(spec.BorderColor, spec.BorderColor.Alpha()), true)
	}
}

func (g *game) drawRipples(dst *ebiten.Image) {
	for _, in := range g.ripples.Active() {
		for ring := 0; ring < in.Config.RingCount; ring++ {
			radius := in.CurrentRadius(ring)
			if radius <= 0 {
				continue
			}
			vector.StrokeCircle(dst,
				float32(in.Origin.X), float32(in.Origin.Y), float32(radius),
				2, toNRGBA(in.Config.Color, in.CurrentOpacity(ring)), true)
		}
	}
}

func (g *game) drawWave(dst *ebiten.Image) {
	const baseline = screenHeight - 120
	prevX, prevY := float32(0), float32(baseline)
	for px := 4; px <= screenWidth; px += 4 {
		x := float64(px) / screenWidth
		d := animation.Displacement(animation.WaveOrganic, x, 3, g.wavePhase, 24)
		cx, cy := float32(px), float32(baseline+d)
		vector.StrokeLine(dst, prevX, prevY, cx, cy, 2,
			toNRGBA(graphics.ColorWhite, 0.6), true)
		prevX, prevY = cx, cy
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func toNRGBA(c graphics.Color, opacity float64) color.NRGBA {
	r, g, b, _ := c.RGBAF()
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return color.NRGBA{
		R: uint8(r * 255),
		G: uint8(g * 255),
		B: uint8(b * 255),
		A: uint8(opacity * 255),
	}
}

func main() {
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("glass demo")
	if err := ebiten.RunGame(newGame()); err != nil {
		log.Fatal(err)
	}
}
