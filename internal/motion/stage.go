package motion

import (
	"time"

	"github.com/ensigniasec/deck/internal/slides"
)

// Props is the visual state of one slide element. Offsets are in CSS-like
// pixels; renderers scale them to their own units.
type Props struct {
	Opacity float64
	X, Y    float64
	Skew    float64
}

// Visible is the resting state of an element.
//
//nolint:gochecknoglobals // value constant.
var Visible = Props{Opacity: 1}

func lerpProps(a, b Props, t float64) Props {
	return Props{
		Opacity: lerp(a.Opacity, b.Opacity, t),
		X:       lerp(a.X, b.X, t),
		Y:       lerp(a.Y, b.Y, t),
		Skew:    lerp(a.Skew, b.Skew, t),
	}
}

// groupTiming describes one role group of the enter phase.
type groupTiming struct {
	from     Props
	duration time.Duration
	delay    time.Duration
	stagger  time.Duration
}

//nolint:gochecknoglobals // immutable timing table.
var (
	titleTiming   = groupTiming{from: Props{Y: 40, Skew: 2}, duration: 900 * time.Millisecond, stagger: 100 * time.Millisecond}
	fadeTiming    = groupTiming{from: Props{Y: 20}, duration: 700 * time.Millisecond, delay: 250 * time.Millisecond, stagger: 120 * time.Millisecond}
	staggerTiming = groupTiming{from: Props{X: -20}, duration: 600 * time.Millisecond, delay: 350 * time.Millisecond, stagger: 100 * time.Millisecond}
)

// DefaultExitDuration is how long the leaving slide takes to fade out.
const DefaultExitDuration = 300 * time.Millisecond

type elementAnim struct {
	from, to Props
	tween    Tween
}

func (a elementAnim) at(now time.Time) Props {
	return lerpProps(a.from, a.to, a.tween.Progress(now))
}

// Stage tracks the enter and exit animations of slide elements.
type Stage struct {
	reg  *slides.Registry
	now  func() time.Time
	exit time.Duration

	// anims[slide][element] is the latest animation started on the element.
	anims map[int]map[int]elementAnim
}

// NewStage returns a Stage for the slides of reg.
func NewStage(reg *slides.Registry, now func() time.Time, exit time.Duration) *Stage {
	if now == nil {
		now = time.Now
	}
	if exit <= 0 {
		exit = DefaultExitDuration
	}
	return &Stage{reg: reg, now: now, exit: exit, anims: make(map[int]map[int]elementAnim)}
}

// Enter runs the enter phase of slide index. Animations already running on
// its elements are cancelled first.
func (s *Stage) Enter(index int) {
	desc := s.reg.Descriptor(index)
	s.anims[index] = make(map[int]elementAnim, len(desc.Titles)+len(desc.Fades)+len(desc.Staggers))
	now := s.now()
	s.startGroup(index, desc.Titles, titleTiming, now)
	s.startGroup(index, desc.Fades, fadeTiming, now)
	s.startGroup(index, desc.Staggers, staggerTiming, now)
}

func (s *Stage) startGroup(slide int, elements []int, g groupTiming, now time.Time) {
	for i, el := range elements {
		s.anims[slide][el] = elementAnim{
			from: g.from,
			to:   Visible,
			tween: Tween{
				From: 0, To: 1,
				Start:    now,
				Delay:    g.delay + time.Duration(i)*g.stagger,
				Duration: g.duration,
				Ease:     ExpoOut,
			},
		}
	}
}

// Exit fades every animated element of slide index out. It is cosmetic: a
// later Enter on the same slide simply replaces it.
func (s *Stage) Exit(index int) {
	desc := s.reg.Descriptor(index)
	now := s.now()
	current := s.anims[index]
	next := make(map[int]elementAnim, len(current))
	for _, el := range desc.Animated() {
		from := s.props(index, el, now)
		to := from
		to.Opacity = 0
		next[el] = elementAnim{
			from:  from,
			to:    to,
			tween: Tween{From: 0, To: 1, Start: now, Duration: s.exit, Ease: Power2In},
		}
	}
	s.anims[index] = next
}

// Props returns the visual state of an element at the stage clock's now.
func (s *Stage) Props(slide, element int) Props {
	return s.props(slide, element, s.now())
}

func (s *Stage) props(slide, element int, now time.Time) Props {
	if a, ok := s.anims[slide][element]; ok {
		return a.at(now)
	}
	desc := s.reg.Descriptor(slide)
	if desc.Elements[element].Role == slides.RoleStatic {
		return Visible
	}
	// Animated elements start hidden until their slide is entered.
	return Props{}
}

// Active reports whether any element animation is still running at now.
func (s *Stage) Active(now time.Time) bool {
	for _, els := range s.anims {
		for _, a := range els {
			if !a.tween.Done(now) {
				return true
			}
		}
	}
	return false
}
