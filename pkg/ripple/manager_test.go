package ripple

import (
	"math"
	"testing"
	"time"

	"github.com/go-glass/glass/pkg/animation"
	"github.com/go-glass/glass/pkg/graphics"
)

func newTestManager(t *testing.T, capacity int) *Manager {
	t.Helper()
	m, err := NewManager(capacity, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestNewManager_RejectsInvalid(t *testing.T) {
	if _, err := NewManager(0, DefaultConfig()); err == nil {
		t.Error("zero capacity should be rejected")
	}
	if _, err := NewManager(-2, DefaultConfig()); err == nil {
		t.Error("negative capacity should be rejected")
	}
	bad := DefaultConfig()
	bad.Duration = 0
	if _, err := NewManager(4, bad); err == nil {
		t.Error("invalid default config should be rejected")
	}
}

func TestConfig_Validate(t *testing.T) {
	mutate := func(f func(*Config)) Config {
		c := DefaultConfig()
		f(&c)
		return c
	}
	cases := []struct {
		name string
		cfg  Config
	}{
		{"zero duration", mutate(func(c *Config) { c.Duration = 0 })},
		{"negative duration", mutate(func(c *Config) { c.Duration = -time.Second })},
		{"zero radius", mutate(func(c *Config) { c.MaxRadius = 0 })},
		{"zero rings", mutate(func(c *Config) { c.RingCount = 0 })},
		{"negative ring delay", mutate(func(c *Config) { c.RingDelay = -time.Millisecond })},
		{"start opacity out of range", mutate(func(c *Config) { c.StartOpacity = 1.5 })},
		{"end opacity out of range", mutate(func(c *Config) { c.EndOpacity = -0.1 })},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); err == nil {
				t.Error("expected a config error")
			}
		})
	}
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestTrigger_BoundedSet(t *testing.T) {
	m := newTestManager(t, 4)
	for i := 0; i < 20; i++ {
		m.Trigger(graphics.Offset{X: float64(i), Y: 0})
		if m.ActiveCount() > m.MaxConcurrent() {
			t.Fatalf("active count %d exceeded capacity %d after trigger %d",
				m.ActiveCount(), m.MaxConcurrent(), i)
		}
	}
}

func TestTrigger_PrefersEvictingCompleted(t *testing.T) {
	m := newTestManager(t, 3)
	a := m.Trigger(graphics.Offset{X: 1})
	b := m.Trigger(graphics.Offset{X: 2})
	c := m.Trigger(graphics.Offset{X: 3})

	// Complete only b.
	b.progress = 1
	b.complete = true

	d := m.Trigger(graphics.Offset{X: 4})
	ids := map[*Instance]bool{}
	for _, in := range m.Active() {
		ids[in] = true
	}
	if !ids[a] || !ids[c] || !ids[d] {
		t.Error("incomplete instances must survive when a completed one can be evicted")
	}
	if ids[b] {
		t.Error("the completed instance must be the one evicted")
	}
}

func TestTrigger_FIFOEvictionUnderPressure(t *testing.T) {
	m := newTestManager(t, 2)
	a := m.Trigger(graphics.Offset{X: 1})
	b := m.Trigger(graphics.Offset{X: 2})
	c := m.Trigger(graphics.Offset{X: 3}) // none complete: evict a

	active := m.Active()
	if len(active) != 2 || active[0] != b || active[1] != c {
		t.Errorf("expected FIFO eviction of the oldest instance, got %v", active)
	}
	if _, found := m.Find(a.ID); found {
		t.Error("evicted instance still findable")
	}
}

func TestTick_ProgressAndCompletion(t *testing.T) {
	m := newTestManager(t, 4)
	cfg := DefaultConfig()
	cfg.Duration = 100 * time.Millisecond
	in, err := m.TriggerWith(graphics.Offset{}, cfg)
	if err != nil {
		t.Fatal(err)
	}

	prev := in.Progress()
	for i := 0; i < 9; i++ {
		m.Tick(10 * time.Millisecond)
		if p := in.Progress(); p < prev {
			t.Fatalf("progress decreased: %v -> %v", prev, p)
		} else {
			prev = p
		}
	}
	if in.IsComplete() {
		t.Fatal("completed too early")
	}
	m.Tick(10 * time.Millisecond)
	if !in.IsComplete() || in.Progress() != 1 {
		t.Fatalf("after full duration: progress %v complete %v", in.Progress(), in.IsComplete())
	}

	// Complete instances stay readable until cleanup.
	if m.ActiveCount() != 1 {
		t.Error("completed instance removed before cleanup")
	}
	m.Cleanup()
	if m.ActiveCount() != 0 {
		t.Error("cleanup left a completed instance behind")
	}
}

func TestRingProgress_StaggeredDerivation(t *testing.T) {
	m := newTestManager(t, 4)
	cfg := DefaultConfig()
	cfg.Duration = time.Second
	cfg.RingCount = 3
	cfg.RingDelay = 250 * time.Millisecond
	in, err := m.TriggerWith(graphics.Offset{X: 10, Y: 10}, cfg)
	if err != nil {
		t.Fatal(err)
	}

	// 0.5s of elapsed ticks.
	for i := 0; i < 5; i++ {
		m.Tick(100 * time.Millisecond)
	}

	const tolerance = 1e-9
	wants := []float64{0.5, (0.5 - 0.25) / (1 - 0.25), 0}
	for ring, want := range wants {
		if got := in.RingProgress(ring); math.Abs(got-want) > tolerance {
			t.Errorf("ring %d progress = %v, want %v", ring, got, want)
		}
	}

	// Rings never report negative progress, and all reach 1 at the end.
	for i := 0; i < 5; i++ {
		m.Tick(100 * time.Millisecond)
	}
	for ring := 0; ring < cfg.RingCount; ring++ {
		if got := in.RingProgress(ring); got != 1 {
			t.Errorf("ring %d terminal progress = %v, want 1", ring, got)
		}
	}
}

func TestRingProgress_OffsetBeyondDuration(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Duration = 100 * time.Millisecond
	cfg.RingDelay = 100 * time.Millisecond // ring 1 offset == 1
	in := &Instance{Config: cfg, progress: 0.9}
	if got := in.RingProgress(1); got != 0 {
		t.Errorf("ring with full-duration offset = %v, want 0 before completion", got)
	}
	in.progress = 1
	if got := in.RingProgress(1); got != 1 {
		t.Errorf("ring with full-duration offset = %v, want 1 at completion", got)
	}
}

func TestDerivedVisualValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxRadius = 200
	cfg.Easing = animation.Linear
	cfg.StartOpacity = 0.8
	cfg.EndOpacity = 0
	in := &Instance{Config: cfg, progress: 0.5}

	if got := in.CurrentRadius(0); math.Abs(got-100) > 1e-9 {
		t.Errorf("radius at half progress = %v, want 100", got)
	}
	if got := in.CurrentOpacity(0); math.Abs(got-0.4) > 1e-9 {
		t.Errorf("opacity at half progress = %v, want 0.4", got)
	}
}

func TestClear(t *testing.T) {
	m := newTestManager(t, 4)
	m.Trigger(graphics.Offset{})
	m.Trigger(graphics.Offset{})
	m.Clear()
	if m.ActiveCount() != 0 {
		t.Error("clear must remove every instance")
	}
}

func TestTrigger_UniqueIDs(t *testing.T) {
	m := newTestManager(t, 8)
	seen := map[string]bool{}
	for i := 0; i < 8; i++ {
		in := m.Trigger(graphics.Offset{})
		if seen[in.ID.String()] {
			t.Fatal("duplicate instance ID")
		}
		seen[in.ID.String()] = true
	}
}
