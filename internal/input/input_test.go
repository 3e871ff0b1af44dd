package input

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeNav accepts every in-range request and moves immediately.
type fakeNav struct {
	current  int
	total    int
	requests []int
}

func (f *fakeNav) RequestGoTo(target int, instant bool) bool {
	f.requests = append(f.requests, target)
	if target < 0 || target >= f.total || target == f.current {
		return false
	}
	f.current = target
	return true
}
func (f *fakeNav) Current() int { return f.current }
func (f *fakeNav) Count() int   { return f.total }

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestKeyboard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key   string
		start int
		want  int
	}{
		{key: "right", start: 2, want: 3},
		{key: "down", start: 2, want: 3},
		{key: " ", start: 2, want: 3},
		{key: "left", start: 2, want: 1},
		{key: "up", start: 2, want: 1},
		{key: "home", start: 4, want: 0},
		{key: "end", start: 1, want: 5},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()
			nav := &fakeNav{current: tt.start, total: 6}
			kb := NewKeyboard(nav, DefaultKeyMap(), nil)
			require.True(t, kb.Handle(keyMsg(tt.key)))
			assert.Equal(t, tt.want, nav.Current())
		})
	}
}

func TestKeyboard_FullscreenAndUnbound(t *testing.T) {
	t.Parallel()

	nav := &fakeNav{total: 3}
	toggles := 0
	kb := NewKeyboard(nav, DefaultKeyMap(), func() { toggles++ })

	assert.True(t, kb.Handle(keyMsg("f")))
	assert.Equal(t, 1, toggles)
	assert.Empty(t, nav.requests, "full screen is not a navigation")

	assert.False(t, kb.Handle(keyMsg("z")))
}

func TestKeyboard_EdgesAreRejectedByController(t *testing.T) {
	t.Parallel()

	nav := &fakeNav{current: 0, total: 3}
	kb := NewKeyboard(nav, DefaultKeyMap(), nil)
	kb.Handle(keyMsg("left"))
	assert.Equal(t, []int{-1}, nav.requests, "the adapter forwards, the controller rejects")
	assert.Equal(t, 0, nav.Current())
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func TestWheel_Cooldown(t *testing.T) {
	t.Parallel()

	clk := &fakeClock{t: time.Unix(0, 0)}
	nav := &fakeNav{total: 6}
	w := NewWheel(nav, DefaultWheelCooldown, clk.Now)

	assert.True(t, w.Scroll(0, 3))
	clk.Advance(899 * time.Millisecond)
	assert.False(t, w.Scroll(0, 3))
	assert.Equal(t, []int{1}, nav.requests, "two events inside the window give one navigation")

	clk.Advance(time.Millisecond)
	assert.True(t, w.Scroll(0, -1))
	assert.Equal(t, 0, nav.Current())
}

func TestWheel_Directions(t *testing.T) {
	t.Parallel()

	clk := &fakeClock{t: time.Unix(0, 0)}
	nav := &fakeNav{current: 2, total: 6}
	w := NewWheel(nav, time.Second, clk.Now)

	require.True(t, w.HandleMouse(tea.MouseMsg{Button: tea.MouseButtonWheelRight}))
	assert.Equal(t, 3, nav.Current())
	clk.Advance(time.Second)
	require.True(t, w.HandleMouse(tea.MouseMsg{Button: tea.MouseButtonWheelUp}))
	assert.Equal(t, 2, nav.Current())
	clk.Advance(time.Second)
	require.True(t, w.HandleMouse(tea.MouseMsg{Button: tea.MouseButtonWheelLeft}))
	assert.Equal(t, 1, nav.Current())
	clk.Advance(time.Second)
	require.True(t, w.HandleMouse(tea.MouseMsg{Button: tea.MouseButtonWheelDown}))
	assert.Equal(t, 2, nav.Current())

	assert.False(t, w.HandleMouse(tea.MouseMsg{Button: tea.MouseButtonLeft}))
	assert.False(t, w.Scroll(0, 0), "zero deltas do not start a cooldown")
}

func TestSwipe(t *testing.T) {
	t.Parallel()

	nav := &fakeNav{current: 2, total: 6}
	s := NewSwipe(nav, DefaultSwipeThreshold)

	s.Start(300)
	assert.False(t, s.End(250), "50px is jitter")
	assert.Equal(t, 2, nav.Current())

	s.Start(300)
	assert.False(t, s.End(240), "exactly the threshold is not enough")

	s.Start(300)
	assert.True(t, s.End(200))
	assert.Equal(t, 3, nav.Current())

	s.Start(100)
	assert.True(t, s.End(200))
	assert.Equal(t, 2, nav.Current())

	assert.False(t, s.End(0), "an end without a start is ignored")
}

func TestHashChange(t *testing.T) {
	t.Parallel()

	nav := &fakeNav{current: 1, total: 6}
	h := NewHashChange(nav)

	assert.True(t, h.Handle("#slide-4"))
	assert.Equal(t, 3, nav.Current())

	assert.False(t, h.Handle("#slide-4"), "same slide is not re-requested")
	assert.False(t, h.Handle("#slide-9"))
	assert.False(t, h.Handle("#nope"))
	assert.Equal(t, []int{3}, nav.requests)
}
