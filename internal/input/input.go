// Package input turns raw gestures into navigation requests. Adapters never
// touch navigation state; they only call RequestGoTo.
package input

import (
	"math"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ensigniasec/deck/internal/location"
)

// Defaults for the gesture filters.
const (
	DefaultWheelCooldown  = 900 * time.Millisecond
	DefaultSwipeThreshold = 60.0
)

// Navigator is the part of the navigation controller adapters may use.
type Navigator interface {
	RequestGoTo(target int, instant bool) bool
	Current() int
	Count() int
}

// KeyMap lists the navigation key bindings.
type KeyMap struct {
	Next       key.Binding
	Prev       key.Binding
	First      key.Binding
	Last       key.Binding
	Fullscreen key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "down", " ", "l", "j", "pgdown"),
			key.WithHelp("→/↓/space", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "up", "h", "k", "pgup"),
			key.WithHelp("←/↑", "previous"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home", "first"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end", "last"),
		),
		Fullscreen: key.NewBinding(
			key.WithKeys("f", "F"),
			key.WithHelp("f", "full screen"),
		),
	}
}

// Keyboard maps key presses to navigation.
type Keyboard struct {
	nav        Navigator
	keys       KeyMap
	fullscreen func()
}

// NewKeyboard returns a Keyboard. fullscreen is called for the full-screen
// binding and may be nil.
func NewKeyboard(nav Navigator, keys KeyMap, fullscreen func()) *Keyboard {
	return &Keyboard{nav: nav, keys: keys, fullscreen: fullscreen}
}

// Handle reports whether msg matched a navigation binding.
func (k *Keyboard) Handle(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, k.keys.Next):
		k.nav.RequestGoTo(k.nav.Current()+1, false)
	case key.Matches(msg, k.keys.Prev):
		k.nav.RequestGoTo(k.nav.Current()-1, false)
	case key.Matches(msg, k.keys.First):
		k.nav.RequestGoTo(0, false)
	case key.Matches(msg, k.keys.Last):
		k.nav.RequestGoTo(k.nav.Count()-1, false)
	case key.Matches(msg, k.keys.Fullscreen):
		if k.fullscreen != nil {
			k.fullscreen()
		}
	default:
		return false
	}
	return true
}

// Wheel turns continuous scrolling into single-slide steps. After a
// gesture is taken, further wheel events are dropped until the cooldown
// ends.
type Wheel struct {
	nav      Navigator
	cooldown time.Duration
	now      func() time.Time
	until    time.Time
}

// NewWheel returns a Wheel with the given cooldown.
func NewWheel(nav Navigator, cooldown time.Duration, now func() time.Time) *Wheel {
	if cooldown <= 0 {
		cooldown = DefaultWheelCooldown
	}
	if now == nil {
		now = time.Now
	}
	return &Wheel{nav: nav, cooldown: cooldown, now: now}
}

// Scroll handles one wheel event. A positive delta on either axis means
// next, a negative one previous. It reports whether the event was taken.
func (w *Wheel) Scroll(dx, dy float64) bool {
	if dx == 0 && dy == 0 {
		return false
	}
	now := w.now()
	if now.Before(w.until) {
		return false
	}
	w.until = now.Add(w.cooldown)
	if dy > 0 || dx > 0 {
		w.nav.RequestGoTo(w.nav.Current()+1, false)
	} else {
		w.nav.RequestGoTo(w.nav.Current()-1, false)
	}
	return true
}

// HandleMouse feeds wheel buttons of a mouse event into Scroll.
func (w *Wheel) HandleMouse(msg tea.MouseMsg) bool {
	switch msg.Button {
	case tea.MouseButtonWheelDown:
		return w.Scroll(0, 1)
	case tea.MouseButtonWheelUp:
		return w.Scroll(0, -1)
	case tea.MouseButtonWheelRight:
		return w.Scroll(1, 0)
	case tea.MouseButtonWheelLeft:
		return w.Scroll(-1, 0)
	default:
		return false
	}
}

// Swipe recognizes horizontal drags longer than a threshold.
type Swipe struct {
	nav       Navigator
	threshold float64
	startX    float64
	tracking  bool
}

// NewSwipe returns a Swipe with the given threshold in pixels.
func NewSwipe(nav Navigator, threshold float64) *Swipe {
	if threshold <= 0 {
		threshold = DefaultSwipeThreshold
	}
	return &Swipe{nav: nav, threshold: threshold}
}

// Start records where a drag began.
func (s *Swipe) Start(x float64) {
	s.startX = x
	s.tracking = true
}

// End finishes a drag at x and reports whether it counted as a swipe.
// Dragging toward the left goes to the next slide.
func (s *Swipe) End(x float64) bool {
	if !s.tracking {
		return false
	}
	s.tracking = false
	diff := s.startX - x
	if math.Abs(diff) <= s.threshold {
		return false
	}
	if diff > 0 {
		s.nav.RequestGoTo(s.nav.Current()+1, false)
	} else {
		s.nav.RequestGoTo(s.nav.Current()-1, false)
	}
	return true
}

// HashChange follows address changes that did not originate from the deck,
// such as history back and forward.
type HashChange struct {
	nav Navigator
}

// NewHashChange returns a HashChange adapter.
func NewHashChange(nav Navigator) *HashChange { return &HashChange{nav: nav} }

// Handle parses fragment and navigates to it when it names a different
// slide. Invalid fragments are ignored.
func (h *HashChange) Handle(fragment string) bool {
	idx, err := location.Parse(fragment, h.nav.Count())
	if err != nil || idx == h.nav.Current() {
		return false
	}
	return h.nav.RequestGoTo(idx, false)
}
