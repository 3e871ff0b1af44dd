package motion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ensigniasec/deck/internal/slides"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newClock() *fakeClock { return &fakeClock{t: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)} }

func TestEasings(t *testing.T) {
	t.Parallel()

	assert.Zero(t, ExpoOut(0))
	assert.Equal(t, 1.0, ExpoOut(1))
	assert.Greater(t, ExpoOut(0.5), 0.5, "decelerating curve is ahead of linear")
	assert.Less(t, Power2In(0.5), 0.5, "accelerating curve is behind linear")
	assert.Equal(t, 1.0, Power2In(1))
}

func TestTween_DelayAndZeroDuration(t *testing.T) {
	t.Parallel()

	start := time.Unix(0, 0)
	tw := Tween{From: 10, To: 20, Start: start, Delay: time.Second, Duration: time.Second}
	assert.Equal(t, 10.0, tw.At(start.Add(500*time.Millisecond)))
	assert.InDelta(t, 15.0, tw.At(start.Add(1500*time.Millisecond)), 1e-9)
	assert.Equal(t, 20.0, tw.At(start.Add(3*time.Second)))
	assert.False(t, tw.Done(start.Add(1999*time.Millisecond)))
	assert.True(t, tw.Done(start.Add(2*time.Second)))

	instant := Tween{From: 0, To: 1, Start: start}
	assert.Equal(t, 1.0, instant.At(start))
	assert.True(t, instant.Done(start))
}

func TestTrack_AnimateSettlesOnce(t *testing.T) {
	t.Parallel()

	clk := newClock()
	tr := NewTrack(clk.Now)
	tr.Animate(7, Offset(3), 850*time.Millisecond)
	require.True(t, tr.Moving())

	clk.Advance(400 * time.Millisecond)
	_, done := tr.Step(clk.Now())
	assert.False(t, done)
	pos := tr.Position(clk.Now())
	assert.Less(t, pos, 0.0)
	assert.Greater(t, pos, -3.0)

	clk.Advance(450 * time.Millisecond)
	gen, done := tr.Step(clk.Now())
	require.True(t, done)
	assert.Equal(t, uint64(7), gen)
	assert.Equal(t, -3.0, tr.Position(clk.Now()))

	_, done = tr.Step(clk.Now())
	assert.False(t, done, "completion is reported once")
}

func TestTrack_LinearToAbsoluteTarget(t *testing.T) {
	t.Parallel()

	clk := newClock()
	tr := NewTrack(clk.Now)
	tr.Jump(Offset(5))
	tr.Animate(1, Offset(0), time.Second)

	// Going from the last slide back to the first passes every position in between.
	seen := map[int]bool{}
	for range 100 {
		clk.Advance(10 * time.Millisecond)
		seen[int(-tr.Position(clk.Now()))] = true
	}
	for i := range 5 {
		assert.True(t, seen[i], "position %d visited", i)
	}
	assert.Equal(t, 0.0, tr.Position(clk.Now()))
}

func TestTrack_JumpDropsMovement(t *testing.T) {
	t.Parallel()

	clk := newClock()
	tr := NewTrack(clk.Now)
	tr.Animate(1, Offset(2), time.Second)
	tr.Jump(Offset(4))
	clk.Advance(2 * time.Second)
	_, done := tr.Step(clk.Now())
	assert.False(t, done)
	assert.Equal(t, -4.0, tr.Position(clk.Now()))
}

func testRegistry(t *testing.T) *slides.Registry {
	t.Helper()
	d, err := slides.Parse([]byte(`
slides:
  - elements:
      - {role: title, text: "# one"}
      - {role: title, text: "# two"}
      - {role: fade, text: "f"}
      - {role: stagger, text: "s"}
      - {role: static, text: "x"}
  - elements:
      - {role: fade, text: "g"}
`))
	require.NoError(t, err)
	return slides.NewRegistry(d)
}

func TestStage_EnterStaggersGroups(t *testing.T) {
	t.Parallel()

	clk := newClock()
	st := NewStage(testRegistry(t), clk.Now, 0)

	assert.Zero(t, st.Props(0, 0).Opacity, "animated elements start hidden")
	assert.Equal(t, Visible, st.Props(0, 4), "static elements are always visible")

	st.Enter(0)
	p := st.Props(0, 0)
	assert.Zero(t, p.Opacity)
	assert.Equal(t, 40.0, p.Y)
	assert.Equal(t, 2.0, p.Skew)

	clk.Advance(50 * time.Millisecond)
	assert.Greater(t, st.Props(0, 0).Opacity, 0.0, "first title has started")
	assert.Zero(t, st.Props(0, 1).Opacity, "second title waits for its stagger")
	assert.Zero(t, st.Props(0, 2).Opacity, "fade group waits for its delay")

	clk.Advance(300 * time.Millisecond)
	assert.Greater(t, st.Props(0, 2).Opacity, 0.0)
	s := st.Props(0, 3)
	assert.Less(t, s.X, 0.0, "stagger group slides in horizontally")

	assert.True(t, st.Active(clk.Now()))
	clk.Advance(2 * time.Second)
	assert.False(t, st.Active(clk.Now()))
	for el := range 5 {
		assert.Equal(t, Visible, st.Props(0, el))
	}
}

func TestStage_ExitFadesFromCurrentState(t *testing.T) {
	t.Parallel()

	clk := newClock()
	st := NewStage(testRegistry(t), clk.Now, 300*time.Millisecond)
	st.Enter(0)
	clk.Advance(2 * time.Second)

	st.Exit(0)
	clk.Advance(150 * time.Millisecond)
	mid := st.Props(0, 0).Opacity
	assert.Greater(t, mid, 0.5, "accelerating curve fades slowly at first")
	assert.Less(t, mid, 1.0)

	clk.Advance(150 * time.Millisecond)
	assert.Zero(t, st.Props(0, 0).Opacity)
	assert.Equal(t, Visible, st.Props(0, 4))
}

func TestStage_ReenterCancelsExit(t *testing.T) {
	t.Parallel()

	clk := newClock()
	st := NewStage(testRegistry(t), clk.Now, 0)
	st.Enter(1)
	clk.Advance(2 * time.Second)
	st.Exit(1)
	clk.Advance(100 * time.Millisecond)
	st.Enter(1)

	// The restarted enter phase begins from its own start state.
	p := st.Props(1, 0)
	assert.Zero(t, p.Opacity)
	assert.Equal(t, 20.0, p.Y)
	clk.Advance(2 * time.Second)
	assert.Equal(t, Visible, st.Props(1, 0))
}
