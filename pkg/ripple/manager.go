package ripple

import (
	"time"

	"github.com/google/uuid"

	"github.com/go-glass/glass/pkg/errors"
	"github.com/go-glass/glass/pkg/graphics"
)

// Manager owns a bounded set of concurrent ripple instances and
// advances them on an external animation clock. All methods must be
// called from the clock-owning goroutine; instances are mutated only
// here.
type Manager struct {
	maxConcurrent int
	defaults      Config
	active        []*Instance // insertion order
}

// NewManager creates a manager holding at most maxConcurrent ripples,
// using defaults for Trigger. Both are validated up front.
func NewManager(maxConcurrent int, defaults Config) (*Manager, error) {
	if maxConcurrent <= 0 {
		return nil, errors.Config("ripple.NewManager", "max concurrent ripples must be positive, got %d", maxConcurrent)
	}
	if err := defaults.Validate(); err != nil {
		return nil, err
	}
	return &Manager{
		maxConcurrent: maxConcurrent,
		defaults:      defaults,
	}, nil
}

// Trigger creates a ripple at origin with the manager's default
// configuration. It never fails: at capacity it evicts, preferring
// instances that already completed and falling back to the oldest by
// insertion order. There is no unbounded growth path.
func (m *Manager) Trigger(origin graphics.Offset) *Instance {
	return m.insert(origin, m.defaults)
}

// TriggerWith is Trigger with a per-instance configuration, which is
// validated before any eviction happens.
func (m *Manager) TriggerWith(origin graphics.Offset, cfg Config) (*Instance, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return m.insert(origin, cfg), nil
}

func (m *Manager) insert(origin graphics.Offset, cfg Config) *Instance {
	if len(m.active) >= m.maxConcurrent {
		// Completed instances are dead weight; drop those first.
		m.Cleanup()
	}
	// Still full: evict the oldest.
	for len(m.active) >= m.maxConcurrent {
		m.active = m.active[1:]
	}

	in := &Instance{
		ID:     uuid.New(),
		Origin: origin,
		Config: cfg,
	}
	m.active = append(m.active, in)
	return in
}

// Tick advances every active instance by dt, in insertion order.
// Instances reaching progress 1 are marked complete but not removed;
// consumers may still read their terminal visual state for one more
// render pass. Call Cleanup after that pass.
func (m *Manager) Tick(dt time.Duration) {
	if dt < 0 {
		return
	}
	for _, in := range m.active {
		in.advance(dt)
	}
}

// Cleanup removes all completed instances.
func (m *Manager) Cleanup() {
	kept := m.active[:0]
	for _, in := range m.active {
		if !in.complete {
			kept = append(kept, in)
		}
	}
	// Zero the tail so evicted instances are collectable.
	for i := len(kept); i < len(m.active); i++ {
		m.active[i] = nil
	}
	m.active = kept
}

// Clear unconditionally removes all instances. Used on view teardown.
func (m *Manager) Clear() {
	m.active = nil
}

// Active returns the active instances in insertion order. The slice is
// a copy; the instances themselves are shared read-only views.
func (m *Manager) Active() []*Instance {
	out := make([]*Instance, len(m.active))
	copy(out, m.active)
	return out
}

// ActiveCount returns the number of active instances.
func (m *Manager) ActiveCount() int {
	return len(m.active)
}

// MaxConcurrent returns the manager's capacity.
func (m *Manager) MaxConcurrent() int {
	return m.maxConcurrent
}

// Find returns the active instance with the given ID.
func (m *Manager) Find(id uuid.UUID) (*Instance, bool) {
	for _, in := range m.active {
		if in.ID == id {
			return in, true
		}
	}
	return nil, false
}
