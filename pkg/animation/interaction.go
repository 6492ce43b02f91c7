package animation

import "time"

// Interaction identifies a pointer interaction kind with a preset
// motion character.
type Interaction int

const (
	// InteractionHover is the gentle lift while a pointer rests on a surface.
	InteractionHover Interaction = iota
	// InteractionPress is the quick springy push on pointer down.
	InteractionPress
)

// String returns a human-readable representation of the interaction kind.
func (i Interaction) String() string {
	switch i {
	case InteractionHover:
		return "hover"
	case InteractionPress:
		return "press"
	default:
		return "unknown"
	}
}

// interactionPreset fixes the motion character for one interaction kind.
type interactionPreset struct {
	amplitude float64
	frequency float64
	damping   float64
	duration  time.Duration
	curve     TimingCurve
}

var interactionTable = map[Interaction]interactionPreset{
	InteractionHover: {amplitude: 3, frequency: 1.2, damping: 4, duration: 200 * time.Millisecond, curve: EaseOut},
	InteractionPress: {amplitude: 6, frequency: 2.4, damping: 6, duration: 350 * time.Millisecond, curve: Spring},
}

// StateFor creates a [State] preconfigured with the motion character of
// the given interaction kind: amplitude, frequency and damping for the
// driven visual, plus duration and easing. Unknown kinds get the hover
// preset.
//
// The returned state is ready to register:
//
//	controller.Register("fab-press", animation.PressState())
func StateFor(kind Interaction) *State {
	preset, ok := interactionTable[kind]
	if !ok {
		preset = interactionTable[InteractionHover]
	}
	return &State{
		Amplitude:      preset.amplitude,
		Frequency:      preset.frequency,
		Damping:        preset.damping,
		Duration:       preset.duration,
		SettleDuration: preset.duration / 4,
		Curve:          preset.curve,
	}
}

// HoverState creates a State tuned for hover feedback.
func HoverState() *State { return StateFor(InteractionHover) }

// PressState creates a State tuned for press feedback.
func PressState() *State { return StateFor(InteractionPress) }
