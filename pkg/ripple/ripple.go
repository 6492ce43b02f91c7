// Package ripple manages transient radial touch animations on glass
// surfaces: a bounded set of concurrently running ripple instances
// advanced by an external animation clock.
package ripple

import (
	"time"

	"github.com/google/uuid"

	"github.com/go-glass/glass/pkg/animation"
	"github.com/go-glass/glass/pkg/errors"
	"github.com/go-glass/glass/pkg/graphics"
)

// Config describes one ripple's look and timing.
type Config struct {
	// Color is the ripple ring color.
	Color graphics.Color
	// MaxRadius is the radius, in pixels, a ring grows to.
	MaxRadius float64
	// Duration is the time a ring takes to reach MaxRadius.
	Duration time.Duration
	// RingCount is the number of staggered rings (>= 1).
	RingCount int
	// RingDelay is the launch offset between consecutive rings.
	RingDelay time.Duration
	// Easing shapes ring growth and fade.
	Easing animation.TimingCurve
	// StartOpacity and EndOpacity bound the ring opacity over its run.
	StartOpacity float64
	EndOpacity   float64
}

// DefaultConfig returns the stock ripple: three staggered white rings
// easing out over 600ms.
func DefaultConfig() Config {
	return Config{
		Color:        graphics.ColorWhite,
		MaxRadius:    120,
		Duration:     600 * time.Millisecond,
		RingCount:    3,
		RingDelay:    80 * time.Millisecond,
		Easing:       animation.EaseOut,
		StartOpacity: 0.5,
		EndOpacity:   0,
	}
}

// Validate checks the configuration. Invalid values are rejected, not
// clamped; silent clamping would hide caller bugs in timing-sensitive
// code.
func (c Config) Validate() error {
	const op = "ripple.Config.Validate"
	if c.Duration <= 0 {
		return errors.Config(op, "duration must be positive, got %v", c.Duration)
	}
	if c.MaxRadius <= 0 {
		return errors.Config(op, "max radius must be positive, got %v", c.MaxRadius)
	}
	if c.RingCount < 1 {
		return errors.Config(op, "ring count must be at least 1, got %d", c.RingCount)
	}
	if c.RingDelay < 0 {
		return errors.Config(op, "ring delay must be non-negative, got %v", c.RingDelay)
	}
	if c.StartOpacity < 0 || c.StartOpacity > 1 {
		return errors.Config(op, "start opacity must be in [0, 1], got %v", c.StartOpacity)
	}
	if c.EndOpacity < 0 || c.EndOpacity > 1 {
		return errors.Config(op, "end opacity must be in [0, 1], got %v", c.EndOpacity)
	}
	return nil
}

// Instance is one transient ripple. It is created by a Manager and
// mutated only by that manager's Tick; external readers use the
// derived-value methods, which are pure functions of progress and
// configuration.
type Instance struct {
	// ID uniquely identifies the instance.
	ID uuid.UUID
	// Origin is the point the ripple radiates from.
	Origin graphics.Offset
	// Config is the instance's immutable configuration.
	Config Config

	elapsed  time.Duration
	progress float64
	complete bool
}

// Progress returns the base progress in [0, 1], monotonically
// non-decreasing over the instance's life.
func (in *Instance) Progress() float64 {
	return in.progress
}

// IsComplete reports whether the ripple has finished. A completed
// instance stays readable until the manager's next cleanup pass.
func (in *Instance) IsComplete() bool {
	return in.complete
}

// RingProgress returns the derived sub-progress of one ring, in [0, 1].
//
// Ring i starts at offset i*RingDelay/Duration of the base progress and
// is re-normalized over the remaining span, so rings propagate outward
// staggered from a single base value. Ring state is always derived,
// never stored: rings cannot drift apart.
func (in *Instance) RingProgress(ring int) float64 {
	if ring <= 0 {
		return in.progress
	}
	offset := float64(ring) * float64(in.Config.RingDelay) / float64(in.Config.Duration)
	if offset >= 1 {
		if in.progress >= 1 {
			return 1
		}
		return 0
	}
	p := (in.progress - offset) / (1 - offset)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// CurrentRadius returns ring's radius at the instance's progress.
func (in *Instance) CurrentRadius(ring int) float64 {
	return in.Config.MaxRadius * in.Config.Easing.Apply(in.RingProgress(ring))
}

// CurrentOpacity returns ring's opacity at the instance's progress.
func (in *Instance) CurrentOpacity(ring int) float64 {
	eased := in.Config.Easing.Apply(in.RingProgress(ring))
	return in.Config.StartOpacity + (in.Config.EndOpacity-in.Config.StartOpacity)*eased
}

// advance moves the base progress forward by dt. Elapsed time is
// accumulated as a duration so progress lands exactly on 1 when the
// ticks sum to the configured duration.
func (in *Instance) advance(dt time.Duration) {
	if in.complete {
		return
	}
	in.elapsed += dt
	in.progress = float64(in.elapsed) / float64(in.Config.Duration)
	if in.progress >= 1 {
		in.progress = 1
		in.complete = true
	}
}
