package backdrop

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ensigniasec/deck/internal/theme"
)

func TestRender_Dimensions(t *testing.T) {
	t.Parallel()

	now := time.Unix(0, 0)
	f := New(now, true, 30)
	f.Step(now.Add(2 * time.Second))

	out := f.Render(40, 6)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 6)
	for _, l := range lines {
		assert.Equal(t, 40, ansi.StringWidth(l))
	}
	assert.Empty(t, f.Render(0, 3))
}

func TestRender_DisabledIsBlank(t *testing.T) {
	t.Parallel()

	f := New(time.Unix(0, 0), false, 30)
	out := f.Render(5, 2)
	assert.Equal(t, "     \n     ", out)
}

func TestStep_PausedWhenDisabled(t *testing.T) {
	t.Parallel()

	now := time.Unix(0, 0)
	f := New(now, false, 30)
	f.Point(1, 1)
	for i := range 30 {
		f.Step(now.Add(time.Duration(i) * time.Second / 30))
	}
	x, y := f.Offset()
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestParallax_SpringApproachesTarget(t *testing.T) {
	t.Parallel()

	now := time.Unix(0, 0)
	f := New(now, true, 30)
	f.Point(1, -1)
	for i := range 300 {
		f.Step(now.Add(time.Duration(i) * time.Second / 30))
	}
	x, y := f.Offset()
	assert.InDelta(t, parallax, x, 0.05)
	assert.InDelta(t, -parallax/2, y, 0.05)
}

func TestThemeAndAccent(t *testing.T) {
	t.Parallel()

	f := New(time.Unix(0, 0), true, 30)
	f.SetTheme(theme.Light)
	assert.Equal(t, theme.PaletteFor(theme.Light).Backdrop, f.Color())

	f.SetAccent("#2dd4bf")
	assert.Equal(t, lipgloss.Color("#2dd4bf"), f.Color())

	f.SetAccent("")
	assert.Equal(t, lipgloss.Color("#2dd4bf"), f.Color())

	f.ClearAccent()
	assert.Equal(t, theme.PaletteFor(theme.Light).Backdrop, f.Color())
}

func TestNoise_Range(t *testing.T) {
	t.Parallel()
	for i := range 100 {
		v := noise(float64(i)*0.37, float64(i)*0.11)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}
