package animation

import (
	"testing"
	"time"

	"github.com/go-glass/glass/pkg/errors"
)

// captureHandler collects reported errors for assertions.
type captureHandler struct {
	got []*errors.GlassError
}

func (h *captureHandler) HandleError(err *errors.GlassError) {
	h.got = append(h.got, err)
}

// seqController builds a controller with states a, b, c of the given
// durations (and no settling, to keep tick math simple).
func seqController(t *testing.T, durations map[string]time.Duration) *Controller {
	t.Helper()
	c := NewController()
	for key, d := range durations {
		state := newTestState(t, d)
		state.SettleDuration = 0
		c.Register(key, state)
	}
	return c
}

func TestPlaySequence_SerializesSteps(t *testing.T) {
	c := seqController(t, map[string]time.Duration{
		"a": 30 * time.Millisecond,
		"b": 30 * time.Millisecond,
	})
	seq := NewSequence(
		Animate("a"),
		Delay(20*time.Millisecond),
		Animate("b"),
	)
	c.PlaySequence(seq, "run")

	a, _ := c.State("a")
	b, _ := c.State("b")

	if !a.IsAnimating() {
		t.Fatal("first step should trigger immediately")
	}
	if b.IsAnimating() {
		t.Fatal("second animate must wait for the first")
	}

	// Finish a: 3 ticks. b must still be idle through the delay.
	for i := 0; i < 3; i++ {
		c.Tick(frame)
	}
	if a.IsAnimating() {
		t.Fatal("a should have completed")
	}
	if b.IsAnimating() {
		t.Fatal("b must not start during the delay")
	}

	// The 20ms delay spans two further ticks.
	c.Tick(frame)
	c.Tick(frame)
	if !b.IsAnimating() {
		t.Fatal("b should start after the delay elapses")
	}

	for i := 0; i < 10; i++ {
		c.Tick(frame)
	}
	if c.SequenceRunning("run") {
		t.Error("sequence should be finished")
	}
}

func TestPlaySequence_ParallelJoin(t *testing.T) {
	// a, b, c complete at 20ms, 40ms, 60ms. The step after the
	// parallel join must not run before the slowest branch.
	c := seqController(t, map[string]time.Duration{
		"a": 20 * time.Millisecond,
		"b": 40 * time.Millisecond,
		"c": 60 * time.Millisecond,
		"z": 30 * time.Millisecond,
	})
	seq := NewSequence(
		Parallel("a", "b", "c"),
		Animate("z"),
	)
	c.PlaySequence(seq, "run")

	z, _ := c.State("z")
	for i := 1; i <= 5; i++ {
		c.Tick(frame)
		if z.IsAnimating() {
			t.Fatalf("join advanced after %d ticks, before the slowest branch finished", i)
		}
	}
	c.Tick(frame) // t = 60ms: c completes, join fires
	if !z.IsAnimating() {
		t.Fatal("join did not advance once every branch completed")
	}
}

func TestPlaySequence_ResetStepIsSynchronous(t *testing.T) {
	c := seqController(t, map[string]time.Duration{
		"a": 30 * time.Millisecond,
		"b": 30 * time.Millisecond,
	})
	a, _ := c.State("a")
	c.Trigger("a", nil)
	c.Tick(frame)
	if a.Progress() == 0 {
		t.Fatal("setup: a should have progressed")
	}

	c.PlaySequence(NewSequence(Reset("a"), Animate("b")), "run")
	b, _ := c.State("b")
	if a.Phase() != PhaseIdle {
		t.Error("reset step must apply synchronously")
	}
	if !b.IsAnimating() {
		t.Error("step after reset must dispatch immediately")
	}
}

func TestPlaySequence_AnimateForOverridesDuration(t *testing.T) {
	c := seqController(t, map[string]time.Duration{"a": time.Hour})
	c.PlaySequence(NewSequence(AnimateFor("a", 30*time.Millisecond)), "run")

	for i := 0; i < 3; i++ {
		c.Tick(frame)
	}
	if c.SequenceRunning("run") {
		t.Error("override duration should let the sequence finish in 30ms")
	}
}

func TestStopSequence_CooperativeCancellation(t *testing.T) {
	c := seqController(t, map[string]time.Duration{
		"a": 30 * time.Millisecond,
		"b": 30 * time.Millisecond,
	})
	c.PlaySequence(NewSequence(Animate("a"), Animate("b")), "run")
	a, _ := c.State("a")
	b, _ := c.State("b")

	c.Tick(frame)
	c.StopSequence("run")
	if c.SequenceRunning("run") {
		t.Fatal("stopped sequence still reports running")
	}

	// The dispatched step still completes, but no further step runs.
	for i := 0; i < 10; i++ {
		c.Tick(frame)
	}
	if a.Phase() != PhaseCompleted {
		t.Error("in-flight step should complete after stop")
	}
	if b.IsAnimating() || b.Phase() != PhaseIdle {
		t.Error("no further step may execute after stop")
	}
}

func TestPlaySequence_MissingKeysAdvance(t *testing.T) {
	h := &captureHandler{}
	errors.SetHandler(h)
	defer errors.SetHandler(nil)

	c := seqController(t, map[string]time.Duration{"real": 20 * time.Millisecond})
	seq := NewSequence(
		Animate("ghost"),
		Parallel("phantom", "spectre"),
		Reset("poltergeist"),
		Animate("real"),
	)
	c.PlaySequence(seq, "run")

	real, _ := c.State("real")
	if !real.IsAnimating() {
		t.Fatal("missing keys must not stall the chain")
	}

	// Each unregistered animate key is surfaced through the handler;
	// the reset no-op is not an authoring error.
	if len(h.got) != 3 {
		t.Fatalf("handler received %d reports, want 3 (ghost, phantom, spectre)", len(h.got))
	}
	for _, err := range h.got {
		if err.Kind != errors.KindAnimation {
			t.Errorf("report kind = %v, want animation", err.Kind)
		}
	}
}

func TestPlaySequence_DisabledControllerReportsNothing(t *testing.T) {
	h := &captureHandler{}
	errors.SetHandler(h)
	defer errors.SetHandler(nil)

	c := seqController(t, map[string]time.Duration{"a": 20 * time.Millisecond})
	c.SetAnimationsEnabled(false)
	c.PlaySequence(NewSequence(Animate("ghost")), "run")
	if len(h.got) != 0 {
		t.Errorf("disabled controller reported %d errors, want 0", len(h.got))
	}
}

func TestPlaySequence_SameSequenceUnderTwoKeys(t *testing.T) {
	c := seqController(t, map[string]time.Duration{
		"a": 30 * time.Millisecond,
		"b": 30 * time.Millisecond,
	})
	seq := NewSequence(Animate("a"), Delay(50*time.Millisecond), Animate("b"))

	c.PlaySequence(seq, "run-1")
	c.PlaySequence(seq, "run-2")
	if !c.SequenceRunning("run-1") || !c.SequenceRunning("run-2") {
		t.Fatal("the same sequence value must run concurrently under distinct keys")
	}

	c.StopSequence("run-1")
	if c.SequenceRunning("run-1") || !c.SequenceRunning("run-2") {
		t.Error("stopping one running key must not affect the other")
	}
}

func TestPlaySequence_DisabledIsNoOp(t *testing.T) {
	c := seqController(t, map[string]time.Duration{"a": 20 * time.Millisecond})
	c.SetAnimationsEnabled(false)
	c.PlaySequence(NewSequence(Animate("a")), "run")
	if c.SequenceRunning("run") {
		t.Error("PlaySequence while disabled must be a no-op")
	}
}

func TestPlaySequence_RestartUnderSameKey(t *testing.T) {
	c := seqController(t, map[string]time.Duration{
		"a": 100 * time.Millisecond,
		"b": 20 * time.Millisecond,
	})
	c.PlaySequence(NewSequence(Animate("a")), "run")
	c.PlaySequence(NewSequence(Animate("b")), "run")

	// The first run was replaced; when a's trigger completes, the old
	// run's continuation must observe the stopped flag and do nothing.
	for i := 0; i < 15; i++ {
		c.Tick(frame)
	}
	if c.SequenceRunning("run") {
		t.Error("replacement sequence should have finished")
	}
}
