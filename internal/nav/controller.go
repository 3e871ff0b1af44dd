// Package nav owns the current slide and serializes transitions between
// slides.
package nav

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/deck/internal/motion"
)

// DefaultDuration is the length of an animated track movement.
const DefaultDuration = 850 * time.Millisecond

// Track moves the visual strip of slides. An animated move must eventually
// be reported back through Controller.Settle with the same generation.
type Track interface {
	Animate(gen uint64, to float64, d time.Duration)
	Jump(to float64)
}

// Phases runs the per-slide enter and exit effects.
type Phases interface {
	Enter(index int)
	Exit(index int)
}

// Broadcaster updates every surface that depends on the current slide.
type Broadcaster interface {
	SyncTo(index int)
}

// Hook is told when a slide becomes or stops being current.
type Hook interface {
	OnSlideActivation(index int, active bool)
}

// HookFunc adapts a function to Hook.
type HookFunc func(index int, active bool)

// OnSlideActivation implements Hook.
func (f HookFunc) OnSlideActivation(index int, active bool) { f(index, active) }

// State is the navigation state owned by a Controller.
type State struct {
	CurrentIndex    int
	IsTransitioning bool
	// PendingEnterToken is the slide whose enter phase the in-flight
	// transition will run.
	PendingEnterToken int
	// Generation increases with every accepted request. A track completion
	// carrying an older generation is stale.
	Generation uint64

	lastEntered int
	initialized bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithDuration sets the animated track duration.
func WithDuration(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.duration = d
		}
	}
}

// WithHook registers a slide activation hook.
func WithHook(h Hook) Option {
	return func(c *Controller) { c.hooks = append(c.hooks, h) }
}

// Controller accepts navigation requests from every input source and lets
// at most one animated transition run at a time. It is not safe for
// concurrent use; all calls are expected from a single event loop.
type Controller struct {
	total    int
	state    State
	track    Track
	phases   Phases
	sync     Broadcaster
	hooks    []Hook
	duration time.Duration
}

// New returns a Controller over total slides.
func New(total int, track Track, phases Phases, sync Broadcaster, opts ...Option) *Controller {
	c := &Controller{
		total:    total,
		track:    track,
		phases:   phases,
		sync:     sync,
		duration: DefaultDuration,
		state:    State{lastEntered: -1},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RequestGoTo asks for slide target and reports whether it was accepted.
func (c *Controller) RequestGoTo(target int, instant bool) bool {
	return c.Try(target, instant) == nil
}

// Try is RequestGoTo with the rejection reason.
func (c *Controller) Try(target int, instant bool) error {
	if err := c.check(target, instant); err != nil {
		logrus.WithFields(logrus.Fields{
			"from":    c.state.CurrentIndex,
			"to":      target,
			"instant": instant,
			"reason":  err,
		}).Debug("navigation rejected")
		return err
	}

	prev := c.state.CurrentIndex
	hadPrev := c.state.initialized && prev != target

	c.state.Generation++
	gen := c.state.Generation
	c.state.PendingEnterToken = target
	c.state.lastEntered = -1
	c.state.initialized = true

	if !instant {
		c.state.IsTransitioning = true
		if hadPrev {
			c.phases.Exit(prev)
		}
	}

	c.state.CurrentIndex = target
	c.sync.SyncTo(target)

	if instant {
		c.track.Jump(motion.Offset(target))
		c.land()
	} else {
		c.track.Animate(gen, motion.Offset(target), c.duration)
	}

	for _, h := range c.hooks {
		if hadPrev {
			h.OnSlideActivation(prev, false)
		}
		h.OnSlideActivation(target, true)
	}

	logrus.WithFields(logrus.Fields{
		"from":    prev,
		"to":      target,
		"instant": instant,
		"gen":     gen,
	}).Debug("navigation accepted")
	return nil
}

func (c *Controller) check(target int, instant bool) error {
	if target < 0 || target >= c.total {
		return ErrInvalidIndex
	}
	if instant {
		return nil
	}
	if c.state.IsTransitioning {
		return ErrTransitionInFlight
	}
	if c.state.initialized && target == c.state.CurrentIndex {
		return ErrSameSlide
	}
	return nil
}

// Settle is the track completion for generation gen. Completions from a
// superseded transition are ignored. It reports whether gen was current.
func (c *Controller) Settle(gen uint64) bool {
	if gen != c.state.Generation {
		logrus.WithFields(logrus.Fields{"gen": gen, "current": c.state.Generation}).Debug("stale track completion ignored")
		return false
	}
	c.land()
	return true
}

// land runs the enter phase once for the pending slide and releases the latch.
func (c *Controller) land() {
	if c.state.lastEntered != c.state.PendingEnterToken {
		c.state.lastEntered = c.state.PendingEnterToken
		c.phases.Enter(c.state.PendingEnterToken)
	}
	c.state.IsTransitioning = false
}

// Current returns the current slide index.
func (c *Controller) Current() int { return c.state.CurrentIndex }

// Count returns the number of slides.
func (c *Controller) Count() int { return c.total }

// IsTransitioning reports whether the latch is held.
func (c *Controller) IsTransitioning() bool { return c.state.IsTransitioning }

// State returns a copy of the navigation state.
func (c *Controller) State() State { return c.state }

// Next requests the following slide.
func (c *Controller) Next() bool { return c.RequestGoTo(c.state.CurrentIndex+1, false) }

// Prev requests the preceding slide.
func (c *Controller) Prev() bool { return c.RequestGoTo(c.state.CurrentIndex-1, false) }
