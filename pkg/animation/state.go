package animation

import (
	"fmt"
	"time"

	"github.com/go-glass/glass/pkg/errors"
)

// Phase is the lifecycle phase of a registered animation state.
//
// Phases advance strictly forward within one run:
//
//	Idle ──trigger──► Starting ──► Active ──► Settling ──► Completed
//
// Reset returns any phase to Idle without completing the run.
type Phase int

const (
	// PhaseIdle means no animation run is in flight.
	PhaseIdle Phase = iota
	// PhaseStarting means a run was triggered but has not consumed a tick yet.
	PhaseStarting
	// PhaseActive means progress is advancing from 0 to 1.
	PhaseActive
	// PhaseSettling means progress reached 1 and the state is settling out.
	PhaseSettling
	// PhaseCompleted means the run finished and callbacks have fired.
	PhaseCompleted
)

// String returns a human-readable representation of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseStarting:
		return "starting"
	case PhaseActive:
		return "active"
	case PhaseSettling:
		return "settling"
	case PhaseCompleted:
		return "completed"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// State is one named animation's in-flight record: progress, phase and
// motion character. It is registered with a [Controller] under a string
// key and mutated only by that controller's Tick.
//
// External readers use the accessor methods; the motion-character
// fields (Amplitude, Frequency, Damping) are plain data consumed by
// whatever visual the owning component drives, typically as WaveMath
// inputs.
type State struct {
	// Amplitude is the peak displacement of the driven visual.
	Amplitude float64
	// Frequency is the oscillation frequency of the driven visual.
	Frequency float64
	// Damping is the oscillation decay rate of the driven visual.
	Damping float64

	// Duration is the nominal active-phase duration.
	Duration time.Duration
	// SettleDuration is the nominal settling-phase duration.
	// NewState defaults it to Duration/4.
	SettleDuration time.Duration
	// Curve eases the active-phase progress. Defaults to the curve's
	// zero value, which is linear.
	Curve TimingCurve

	progress      float64
	velocity      float64
	phase         Phase
	animating     bool
	runDuration   time.Duration
	elapsed       time.Duration
	settleElapsed time.Duration
	onComplete    []func()
}

// NewState creates a State with the given nominal duration.
// The duration must be strictly positive.
func NewState(duration time.Duration) (*State, error) {
	if duration <= 0 {
		return nil, errors.Config("animation.NewState", "duration must be positive, got %v", duration)
	}
	return &State{
		Duration:       duration,
		SettleDuration: duration / 4,
	}, nil
}

// Progress returns the raw (un-eased) progress in [0, 1]. It is
// monotonically non-decreasing within a single run.
func (s *State) Progress() float64 {
	return s.progress
}

// EasedProgress returns the progress transformed by the state's curve.
func (s *State) EasedProgress() float64 {
	return s.Curve.Apply(s.progress)
}

// Velocity returns the most recent rate of progress change, per second.
func (s *State) Velocity() float64 {
	return s.velocity
}

// Phase returns the current lifecycle phase.
func (s *State) Phase() Phase {
	return s.phase
}

// IsAnimating reports whether a run is in flight.
func (s *State) IsAnimating() bool {
	return s.animating
}

// start begins a new run. An already-animating state restarts; pending
// completion callbacks are kept and fire when the new run completes.
func (s *State) start(durationOverride time.Duration, onComplete func()) {
	s.phase = PhaseStarting
	s.animating = true
	s.progress = 0
	s.velocity = 0
	s.elapsed = 0
	s.settleElapsed = 0
	s.runDuration = s.Duration
	if durationOverride > 0 {
		s.runDuration = durationOverride
	}
	if onComplete != nil {
		s.onComplete = append(s.onComplete, onComplete)
	}
}

// reset forces the state back to Idle without firing callbacks.
func (s *State) reset() {
	s.phase = PhaseIdle
	s.animating = false
	s.progress = 0
	s.velocity = 0
	s.elapsed = 0
	s.settleElapsed = 0
	s.onComplete = nil
}

// advance moves the run forward by dt under the given global speed.
// It returns the completion callbacks to fire, if the run just completed.
func (s *State) advance(dt time.Duration, speed float64) []func() {
	if !s.animating {
		return nil
	}
	if s.phase == PhaseStarting {
		s.phase = PhaseActive
	}

	switch s.phase {
	case PhaseActive:
		s.elapsed += dt
		effective := scaleDuration(s.runDuration, speed)
		prev := s.progress
		p := float64(s.elapsed) / float64(effective)
		if p >= 1 {
			p = 1
		}
		s.progress = p
		if secs := dt.Seconds(); secs > 0 {
			s.velocity = (p - prev) / secs
		}
		if p >= 1 {
			s.phase = PhaseSettling
			// Carry the tick remainder into the settling phase so
			// total run time does not quantize to frame boundaries.
			if over := s.elapsed - effective; over > 0 {
				s.settleElapsed = over
			}
		}
	case PhaseSettling:
		s.settleElapsed += dt
	}

	if s.phase == PhaseSettling && s.settleElapsed >= scaleDuration(s.SettleDuration, speed) {
		s.phase = PhaseCompleted
		s.animating = false
		s.velocity = 0
		done := s.onComplete
		s.onComplete = nil
		return done
	}
	return nil
}

// scaleDuration divides a nominal duration by the global speed factor.
func scaleDuration(d time.Duration, speed float64) time.Duration {
	if speed == 1 || d <= 0 {
		return d
	}
	return time.Duration(float64(d) / speed)
}
