package motion

import "time"

// Track is the horizontal strip holding every slide side by side. Its
// position is measured in slide widths: slide i sits at -i.
type Track struct {
	now   func() time.Time
	pos   float64
	tween *Tween
	gen   uint64
}

// NewTrack returns a Track at slide 0. now supplies the clock.
func NewTrack(now func() time.Time) *Track {
	if now == nil {
		now = time.Now
	}
	return &Track{now: now}
}

// Offset returns the track position for a slide index.
func Offset(index int) float64 { return -float64(index) }

// Animate starts moving toward to over d, tagged with gen. Any running
// movement is replaced and starts from where it currently is.
func (t *Track) Animate(gen uint64, to float64, d time.Duration) {
	now := t.now()
	from := t.Position(now)
	t.tween = &Tween{From: from, To: to, Start: now, Duration: d, Ease: ExpoOut}
	t.gen = gen
}

// Jump moves the track without animating. A running movement is dropped
// and will never report completion.
func (t *Track) Jump(to float64) {
	t.pos = to
	t.tween = nil
}

// Position samples the track at now.
func (t *Track) Position(now time.Time) float64 {
	if t.tween == nil {
		return t.pos
	}
	return t.tween.At(now)
}

// Moving reports whether a movement is in flight.
func (t *Track) Moving() bool { return t.tween != nil }

// Step advances the track to now. When the running movement finishes, it
// returns that movement's generation and true exactly once.
func (t *Track) Step(now time.Time) (uint64, bool) {
	if t.tween == nil {
		return 0, false
	}
	if !t.tween.Done(now) {
		return 0, false
	}
	t.pos = t.tween.To
	t.tween = nil
	return t.gen, true
}
