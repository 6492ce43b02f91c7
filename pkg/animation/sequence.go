package animation

import (
	"fmt"
	"time"

	"github.com/go-glass/glass/pkg/errors"
)

// StepKind identifies one kind of sequence step.
type StepKind int

const (
	// StepAnimate triggers one animation key and waits for it to complete.
	StepAnimate StepKind = iota
	// StepDelay waits a speed-scaled duration.
	StepDelay
	// StepParallel triggers several keys and waits for all of them.
	StepParallel
	// StepReset resets one key synchronously.
	StepReset
)

// Step is one entry of a sequence script.
type Step struct {
	Kind StepKind
	// Key is the animation key for Animate and Reset steps.
	Key string
	// Keys are the animation keys for Parallel steps.
	Keys []string
	// Duration is the wait for Delay steps, or an optional nominal
	// duration override for Animate steps (0 keeps the state's own).
	Duration time.Duration
}

// Animate returns a step that triggers key and waits for completion.
func Animate(key string) Step {
	return Step{Kind: StepAnimate, Key: key}
}

// AnimateFor is Animate with a nominal duration override for this run.
func AnimateFor(key string, duration time.Duration) Step {
	return Step{Kind: StepAnimate, Key: key, Duration: duration}
}

// Delay returns a step that waits the given nominal duration.
func Delay(duration time.Duration) Step {
	return Step{Kind: StepDelay, Duration: duration}
}

// Parallel returns a step that triggers all keys concurrently and
// advances only once every one of them has completed.
func Parallel(keys ...string) Step {
	return Step{Kind: StepParallel, Keys: keys}
}

// Reset returns a step that resets key and advances immediately.
func Reset(key string) Step {
	return Step{Kind: StepReset, Key: key}
}

// Sequence is an immutable script of steps. The same Sequence value may
// run concurrently under different running keys.
type Sequence struct {
	Steps []Step
}

// NewSequence builds a sequence from steps.
func NewSequence(steps ...Step) Sequence {
	return Sequence{Steps: steps}
}

// sequenceRun is the per-run execution state of a sequence.
type sequenceRun struct {
	steps  []Step
	index  int
	active bool
}

// PlaySequence starts executing seq under runKey. The call does not
// block: waiting is expressed as continuations re-entered from future
// ticks. A sequence already running under runKey is stopped first.
//
// If animations are globally disabled, PlaySequence is a no-op.
// Animate and Parallel steps whose keys are unregistered complete
// immediately, matching Trigger's missing-key tolerance; unlike direct
// triggers, the miss is reported through the error handler, since a
// script naming an unknown key is an authoring bug, not a teardown race.
func (c *Controller) PlaySequence(seq Sequence, runKey string) {
	if !c.enabled {
		return
	}
	c.StopSequence(runKey)
	run := &sequenceRun{steps: seq.Steps, active: true}
	c.sequences[runKey] = run
	c.advanceSequence(run, runKey)
}

// StopSequence cooperatively cancels the sequence running under
// runKey. A step already dispatched still completes, but its
// continuation observes the stopped flag and aborts the chain.
func (c *Controller) StopSequence(runKey string) {
	if run, ok := c.sequences[runKey]; ok {
		run.active = false
		delete(c.sequences, runKey)
	}
}

// SequenceRunning reports whether a sequence is active under runKey.
func (c *Controller) SequenceRunning(runKey string) bool {
	run, ok := c.sequences[runKey]
	return ok && run.active
}

// reportMissingKey surfaces a sequence step naming an unregistered key.
// Triggers failed by the global disable gate are not reported.
func (c *Controller) reportMissingKey(key string) {
	if !c.enabled {
		return
	}
	if _, ok := c.states[key]; ok {
		return
	}
	errors.Report(errors.New("animation.PlaySequence", errors.KindAnimation,
		fmt.Errorf("no animation state registered under %q", key)))
}

// advanceSequence dispatches the next step of run, or finishes it.
func (c *Controller) advanceSequence(run *sequenceRun, runKey string) {
	if !run.active {
		return
	}
	if run.index >= len(run.steps) {
		run.active = false
		if c.sequences[runKey] == run {
			delete(c.sequences, runKey)
		}
		return
	}

	step := run.steps[run.index]
	run.index++

	cont := func() {
		if run.active {
			c.advanceSequence(run, runKey)
		}
	}

	switch step.Kind {
	case StepAnimate:
		if !c.triggerState(step.Key, step.Duration, cont) {
			c.reportMissingKey(step.Key)
			cont()
		}
	case StepDelay:
		c.schedule(c.effective(step.Duration), cont)
	case StepParallel:
		pending := 0
		join := func() {
			pending--
			if pending == 0 {
				cont()
			}
		}
		for _, key := range step.Keys {
			if c.triggerState(key, 0, join) {
				pending++
			} else {
				c.reportMissingKey(key)
			}
		}
		if pending == 0 {
			cont()
		}
	case StepReset:
		c.Reset(step.Key)
		cont()
	}
}
