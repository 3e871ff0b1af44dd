// Package backdrop renders the decorative field behind the slides: a noise
// deformed grid that slowly breathes and leans toward the pointer.
package backdrop

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	"github.com/ensigniasec/deck/internal/theme"
)

// ramp goes from empty to dense.
const ramp = " ..::-=+*"

const (
	breathPeriod = 8 * time.Second
	driftSpeed   = 0.05 // field units per second
	parallax     = 3.0  // max pointer shift in cells
)

// Field is the animated background. It is not safe for concurrent use; the
// program drives it from its update loop.
type Field struct {
	enabled bool
	start   time.Time
	t       float64

	base  lipgloss.Color
	color lipgloss.Color

	spring    harmonica.Spring
	px, pxVel float64
	py, pyVel float64
	targetX   float64
	targetY   float64
}

// New returns a field started at now.
func New(now time.Time, enabled bool, fps int) *Field {
	if fps <= 0 {
		fps = 30
	}
	base := theme.PaletteFor(theme.Dark).Backdrop
	return &Field{
		enabled: enabled,
		start:   now,
		base:    base,
		color:   base,
		spring:  harmonica.NewSpring(harmonica.FPS(fps), 4.0, 0.8),
	}
}

// Enabled reports whether the field animates and renders.
func (f *Field) Enabled() bool { return f.enabled }

// SetEnabled pauses or resumes the field.
func (f *Field) SetEnabled(on bool) { f.enabled = on }

// SetTheme recolors the field. An accent set earlier is dropped.
func (f *Field) SetTheme(t theme.Theme) {
	f.base = theme.PaletteFor(t).Backdrop
	f.color = f.base
}

// SetAccent overrides the field color until the next SetTheme or
// ClearAccent. An empty value is ignored. Navigation never calls it.
func (f *Field) SetAccent(hex string) {
	if hex == "" {
		return
	}
	f.color = lipgloss.Color(hex)
}

// ClearAccent returns to the theme color.
func (f *Field) ClearAccent() { f.color = f.base }

// Color returns the current field color.
func (f *Field) Color() lipgloss.Color { return f.color }

// Point sets the parallax target from a pointer position normalized to
// [-1, 1] on both axes.
func (f *Field) Point(nx, ny float64) {
	f.targetX = clamp(nx, -1, 1) * parallax
	f.targetY = clamp(ny, -1, 1) * parallax / 2
}

// Offset returns the smoothed parallax offset in cells.
func (f *Field) Offset() (float64, float64) { return f.px, f.py }

// Step advances the breathing clock and the parallax spring by one frame.
func (f *Field) Step(now time.Time) {
	if !f.enabled {
		return
	}
	f.t = now.Sub(f.start).Seconds()
	f.px, f.pxVel = f.spring.Update(f.px, f.pxVel, f.targetX)
	f.py, f.pyVel = f.spring.Update(f.py, f.pyVel, f.targetY)
}

// Render draws a w by h block of the field, or blank space when disabled.
func (f *Field) Render(w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	if !f.enabled {
		return blank(w, h)
	}

	breath := 0.5 + 0.5*math.Sin(2*math.Pi*f.t/breathPeriod.Seconds())
	scale := 0.12 - 0.02*breath
	drift := f.t * driftSpeed

	var b strings.Builder
	for y := range h {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := range w {
			fx := (float64(x)+f.px)*scale*0.5 + drift
			fy := (float64(y)+f.py)*scale + drift*0.7
			v := noise(fx, fy)
			// sparse grid lines deformed by the noise
			line := math.Abs(math.Sin((fx+v*0.6)*math.Pi*2)) * math.Abs(math.Sin((fy+v*0.6)*math.Pi*2))
			level := (1 - line) * (0.35 + 0.25*breath)
			if level < 0.55 {
				b.WriteByte(' ')
				continue
			}
			idx := int((level - 0.55) / 0.45 * float64(len(ramp)-1))
			b.WriteByte(ramp[min(max(idx, 0), len(ramp)-1)])
		}
	}
	return lipgloss.NewStyle().Foreground(f.color).Faint(true).Render(b.String())
}

func blank(w, h int) string {
	row := strings.Repeat(" ", w)
	rows := make([]string, h)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

// noise is a smooth value noise in [0, 1).
func noise(x, y float64) float64 {
	x0, y0 := math.Floor(x), math.Floor(y)
	sx, sy := smooth(x-x0), smooth(y-y0)
	n00 := hash(x0, y0)
	n10 := hash(x0+1, y0)
	n01 := hash(x0, y0+1)
	n11 := hash(x0+1, y0+1)
	top := n00 + (n10-n00)*sx
	bot := n01 + (n11-n01)*sx
	return top + (bot-top)*sy
}

func smooth(t float64) float64 { return t * t * (3 - 2*t) }

func hash(x, y float64) float64 {
	s := math.Sin(x*127.1+y*311.7) * 43758.5453
	return s - math.Floor(s)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
