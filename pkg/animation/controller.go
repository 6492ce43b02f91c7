// Package animation provides the timing and orchestration engine for
// glass surface effects: easing curves, wave math, a registry of named
// animation states, and sequence scripting over those states.
//
// # Scheduling model
//
// Nothing in this package owns a thread or timer. An external animation
// clock calls [Controller.Tick] once per display frame with the elapsed
// time since the previous tick; every state advance, delayed
// continuation and completion callback runs inside that call, on the
// caller's goroutine. No method blocks.
//
// # Basic usage
//
//	controller := animation.NewController()
//	state, _ := animation.NewState(300 * time.Millisecond)
//	state.Curve = animation.EaseOut
//	controller.Register("fab", state)
//
//	controller.Trigger("fab", func() { fmt.Println("done") })
//
//	// Per frame, from the render loop:
//	controller.Tick(deltaTime)
//	_ = state.EasedProgress()
package animation

import (
	"time"

	"github.com/go-glass/glass/pkg/errors"
)

// Controller is the process-wide animation orchestrator: a registry of
// named [State]s plus the tick loop that advances them, fires delayed
// continuations and runs sequences.
//
// Construct one explicitly and hand it to the components that need it;
// tests can instantiate isolated controllers. All methods must be
// called from the clock-owning goroutine.
type Controller struct {
	states    map[string]*State
	detached  []*State
	timers    []*timer
	sequences map[string]*sequenceRun
	speed     float64
	enabled   bool
}

// timer is a scheduled continuation, counted down by Tick.
type timer struct {
	remaining time.Duration
	fn        func()
}

// NewController creates a controller with global speed 1 and animations
// enabled.
func NewController() *Controller {
	return &Controller{
		states:    make(map[string]*State),
		sequences: make(map[string]*sequenceRun),
		speed:     1,
		enabled:   true,
	}
}

// Register adds a state under the given key, replacing any previous
// registration. The registry holds the only reference the library
// keeps; unregistering drops it.
func (c *Controller) Register(key string, state *State) {
	if state == nil {
		return
	}
	// A re-registered state must not be advanced twice per tick.
	for i, detached := range c.detached {
		if detached == state {
			c.detached = append(c.detached[:i], c.detached[i+1:]...)
			break
		}
	}
	c.states[key] = state
}

// Unregister removes the state registered under key. Unregistering
// mid-flight is valid: future triggers stop finding the key, while a
// run already in flight keeps advancing until it completes and its
// captured callbacks fire normally.
func (c *Controller) Unregister(key string) {
	state, ok := c.states[key]
	if !ok {
		return
	}
	delete(c.states, key)
	if state.IsAnimating() {
		c.detached = append(c.detached, state)
	}
}

// State returns the state registered under key.
func (c *Controller) State(key string) (*State, bool) {
	s, ok := c.states[key]
	return s, ok
}

// Trigger starts a run of the state registered under key, invoking
// onComplete (which may be nil) after the full phase sequence elapses.
//
// If animations are globally disabled, or no state is registered under
// key, Trigger is a silent no-op; registration races during view
// teardown are expected and must not crash the orchestration loop.
func (c *Controller) Trigger(key string, onComplete func()) {
	c.triggerState(key, 0, onComplete)
}

// triggerState is Trigger with an optional duration override. It
// reports whether a run actually started.
func (c *Controller) triggerState(key string, durationOverride time.Duration, onComplete func()) bool {
	if !c.enabled {
		return false
	}
	state, ok := c.states[key]
	if !ok {
		return false
	}
	state.start(durationOverride, onComplete)
	return true
}

// Reset forces the state under key back to Idle without invoking its
// completion callbacks. Missing keys are a no-op.
func (c *Controller) Reset(key string) {
	if state, ok := c.states[key]; ok {
		state.reset()
	}
}

// ResetAll resets every registered state without invoking callbacks.
func (c *Controller) ResetAll() {
	for _, state := range c.states {
		state.reset()
	}
}

// SetGlobalSpeed sets the factor every duration is divided by
// (effective = nominal / speed). The speed must be strictly positive;
// zero or negative values would make durations unbounded and are
// rejected rather than clamped.
func (c *Controller) SetGlobalSpeed(speed float64) error {
	if speed <= 0 {
		return errors.Config("animation.SetGlobalSpeed", "global speed must be positive, got %v", speed)
	}
	c.speed = speed
	return nil
}

// GlobalSpeed returns the current global speed factor.
func (c *Controller) GlobalSpeed() float64 {
	return c.speed
}

// SetAnimationsEnabled gates all future triggers. Disabling does not
// stop runs already in flight.
func (c *Controller) SetAnimationsEnabled(enabled bool) {
	c.enabled = enabled
}

// AnimationsEnabled reports whether triggers are currently allowed.
func (c *Controller) AnimationsEnabled() bool {
	return c.enabled
}

// Tick advances every in-flight state and scheduled continuation by
// dt. Completion callbacks and due continuations run inside this call,
// after all states have advanced. Continuations scheduled during the
// call start counting down on the next tick.
func (c *Controller) Tick(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}

	var completions []func()
	for _, state := range c.states {
		if done := state.advance(dt, c.speed); done != nil {
			completions = append(completions, done...)
		}
	}

	// Unregistered states finish their in-flight run, then drop out.
	var stillDetached []*State
	for _, state := range c.detached {
		if done := state.advance(dt, c.speed); done != nil {
			completions = append(completions, done...)
		}
		if state.IsAnimating() {
			stillDetached = append(stillDetached, state)
		}
	}
	c.detached = stillDetached

	// Snapshot: timers scheduled by callbacks below must not lose a
	// frame's worth of countdown they never lived through.
	var due, pending []*timer
	for _, t := range c.timers {
		t.remaining -= dt
		if t.remaining <= 0 {
			due = append(due, t)
		} else {
			pending = append(pending, t)
		}
	}
	c.timers = pending

	for _, fn := range completions {
		fn()
	}
	for _, t := range due {
		t.fn()
	}
}

// schedule queues fn to run once at least d has elapsed across future
// ticks. d is an effective (already speed-scaled) duration.
func (c *Controller) schedule(d time.Duration, fn func()) {
	c.timers = append(c.timers, &timer{remaining: d, fn: fn})
}

// effective converts a nominal duration to an effective one under the
// current global speed.
func (c *Controller) effective(d time.Duration) time.Duration {
	return scaleDuration(d, c.speed)
}
