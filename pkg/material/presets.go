package material

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/go-glass/glass/pkg/errors"
	"github.com/go-glass/glass/pkg/graphics"
)

// DefaultPresets returns the built-in named material bundles used by
// common surfaces.
func DefaultPresets() map[string]Descriptor {
	accent, _ := Custom(24, graphics.RGBA(90, 160, 255, 0.30), 1.3, 0.5)
	return map[string]Descriptor{
		"card":    Frosted(),
		"toolbar": Clear(),
		"sheet":   Dark(),
		"overlay": Tinted(graphics.ColorBlack.WithAlpha(0.20)),
		"accent":  accent,
	}
}

// presetFile is the YAML schema for a preset bundle.
type presetFile struct {
	Presets []presetEntry `yaml:"presets"`
}

type presetEntry struct {
	Name       string   `yaml:"name"`
	Variant    string   `yaml:"variant"`
	Tint       string   `yaml:"tint"`
	BlurRadius *float64 `yaml:"blur"`
	Saturation *float64 `yaml:"saturation"`
	Opacity    *float64 `yaml:"opacity"`
}

// LoadPresets parses a YAML preset bundle:
//
//	presets:
//	  - name: card
//	    variant: frosted
//	  - name: brand
//	    variant: tinted
//	    tint: "skyblue"
//	  - name: hero
//	    variant: custom
//	    blur: 30
//	    tint: "#4D5AA0FF"
//	    saturation: 1.4
//	    opacity: 0.35
//
// Tint colors are hex ("#RRGGBB" or "#AARRGGBB") or an SVG 1.1 color
// name. Custom entries require blur, saturation and opacity.
func LoadPresets(r io.Reader) (map[string]Descriptor, error) {
	const op = "material.LoadPresets"

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.New(op, errors.KindConfig, err)
	}
	var file presetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.New(op, errors.KindConfig, err)
	}

	presets := make(map[string]Descriptor, len(file.Presets))
	for _, entry := range file.Presets {
		if entry.Name == "" {
			return nil, errors.Config(op, "preset missing name")
		}
		if _, dup := presets[entry.Name]; dup {
			return nil, errors.Config(op, "duplicate preset %q", entry.Name)
		}
		desc, err := entry.descriptor()
		if err != nil {
			return nil, errors.Config(op, "preset %q: %v", entry.Name, err)
		}
		presets[entry.Name] = desc
	}
	return presets, nil
}

func (e presetEntry) descriptor() (Descriptor, error) {
	switch strings.ToLower(e.Variant) {
	case "clear":
		return Clear(), nil
	case "frosted":
		return Frosted(), nil
	case "dark":
		return Dark(), nil
	case "tinted":
		tint, err := ParseColor(e.Tint)
		if err != nil {
			return Descriptor{}, err
		}
		return Tinted(tint), nil
	case "custom":
		if e.BlurRadius == nil || e.Saturation == nil || e.Opacity == nil {
			return Descriptor{}, fmt.Errorf("custom preset requires blur, saturation and opacity")
		}
		tint := graphics.ColorTransparent
		if e.Tint != "" {
			var err error
			if tint, err = ParseColor(e.Tint); err != nil {
				return Descriptor{}, err
			}
		}
		return Custom(*e.BlurRadius, tint, *e.Saturation, *e.Opacity)
	default:
		return Descriptor{}, fmt.Errorf("unknown variant %q", e.Variant)
	}
}

// ParseColor parses "#RRGGBB", "#AARRGGBB" or an SVG 1.1 color name
// (as in golang.org/x/image/colornames) into a Color.
func ParseColor(s string) (graphics.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty color")
	}
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		switch len(hex) {
		case 6:
			hex = "FF" + hex
		case 8:
		default:
			return 0, fmt.Errorf("invalid hex color %q", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid hex color %q", s)
		}
		return graphics.Color(v), nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return graphics.RGBA8(c.R, c.G, c.B, c.A), nil
	}
	return 0, fmt.Errorf("unknown color name %q", s)
}
