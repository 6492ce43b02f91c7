// Package capability resolves the rendering strategy for glass surfaces
// from a platform capability snapshot.
//
// The snapshot is inert data supplied by the embedder; this package
// never queries the platform itself. Resolve is total: every snapshot
// maps to a strategy, falling back to a flat solid fill when nothing
// better is available.
package capability

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// RenderingStrategy identifies how a glass surface is realized.
// Higher values have higher visual fidelity.
type RenderingStrategy int

const (
	// StrategySolidColor renders a flat fill with no blur. The universal fallback.
	StrategySolidColor RenderingStrategy = iota
	// StrategyBlurEffect emulates glass with a classic blur-effect primitive.
	StrategyBlurEffect
	// StrategyMaterial emulates glass with a layered-material drawing primitive.
	StrategyMaterial
	// StrategyNative uses the platform compositor's native glass effect.
	StrategyNative
)

// String returns a human-readable representation of the strategy.
func (s RenderingStrategy) String() string {
	switch s {
	case StrategySolidColor:
		return "solid-color"
	case StrategyBlurEffect:
		return "blur-effect"
	case StrategyMaterial:
		return "material"
	case StrategyNative:
		return "native"
	default:
		return fmt.Sprintf("RenderingStrategy(%d)", int(s))
	}
}

// Snapshot is a point-in-time record of platform rendering capabilities.
// Callers build it once from whatever platform APIs they have and pass
// it to Resolve; the zero value resolves to StrategySolidColor.
type Snapshot struct {
	// OS is the platform name in lower case ("ios", "android", "macos", ...).
	// Optional; used only for version gating.
	OS string

	// OSVersion is the platform version ("26.0", "15.4.1", ...).
	// Optional; when empty, capability flags are trusted as reported.
	OSVersion string

	// NativeCompositor reports whether the compositor exposes a native
	// glass effect.
	NativeCompositor bool

	// LayeredMaterial reports whether the runtime exposes a
	// layered-material drawing primitive.
	LayeredMaterial bool

	// BlurEffect reports whether a classic blur-effect primitive exists.
	BlurEffect bool

	// ReducedMotion mirrors the platform's reduced-motion preference.
	// Consumers read it to decide whether to trigger decorative
	// animations; nothing in this library consults it.
	ReducedMotion bool
}

// TuningParameters are derived rendering hints keyed by strategy.
type TuningParameters struct {
	// RecommendedBlurRadius is the backdrop blur radius, in pixels,
	// that keeps the strategy within its performance envelope.
	RecommendedBlurRadius float64

	// SupportsHighlight reports whether an edge-highlight stroke layer
	// is worth emitting.
	SupportsHighlight bool

	// SupportsMorph reports whether animated shape morphing is supported.
	SupportsMorph bool
}

// minNativeVersion is the first OS release whose compositor glass
// effect behaves correctly, per platform. Earlier releases that still
// report the flag fall back to material emulation.
var minNativeVersion = map[string]string{
	"ios":   "v26.0",
	"macos": "v26.0",
}

// tuningTable maps each strategy to its derived tuning parameters.
var tuningTable = map[RenderingStrategy]TuningParameters{
	StrategyNative:     {RecommendedBlurRadius: 24, SupportsHighlight: true, SupportsMorph: true},
	StrategyMaterial:   {RecommendedBlurRadius: 18, SupportsHighlight: true, SupportsMorph: true},
	StrategyBlurEffect: {RecommendedBlurRadius: 12, SupportsHighlight: false, SupportsMorph: false},
	StrategySolidColor: {RecommendedBlurRadius: 0, SupportsHighlight: false, SupportsMorph: false},
}

// Resolve picks the highest-fidelity strategy the snapshot supports and
// returns it together with the strategy's tuning parameters.
//
// Capability predicates are tested in descending fidelity order; the
// function is total and never fails.
func Resolve(snap Snapshot) (RenderingStrategy, TuningParameters) {
	strategy := StrategySolidColor
	switch {
	case snap.NativeCompositor && nativeVersionOK(snap):
		strategy = StrategyNative
	case snap.LayeredMaterial:
		strategy = StrategyMaterial
	case snap.BlurEffect:
		strategy = StrategyBlurEffect
	}
	return strategy, tuningTable[strategy]
}

// TuningFor returns the tuning parameters for an already-resolved strategy.
func TuningFor(strategy RenderingStrategy) TuningParameters {
	return tuningTable[strategy]
}

// nativeVersionOK reports whether the snapshot's OS version meets the
// minimum for the native compositor effect. Snapshots without OS or
// version information are trusted as reported.
func nativeVersionOK(snap Snapshot) bool {
	min, gated := minNativeVersion[strings.ToLower(snap.OS)]
	if !gated || snap.OSVersion == "" {
		return true
	}
	v := canonicalVersion(snap.OSVersion)
	if !semver.IsValid(v) {
		return false
	}
	return semver.Compare(v, min) >= 0
}

// canonicalVersion converts a platform version string ("26.0") to the
// "v"-prefixed form semver expects.
func canonicalVersion(version string) string {
	version = strings.TrimSpace(version)
	if version == "" {
		return ""
	}
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	return version
}
